package cfol_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alethic/tableaux/internal/application/parser/polish"
	"github.com/alethic/tableaux/internal/application/proof"
	"github.com/alethic/tableaux/internal/domain"
)

func parseArg(t *testing.T, preds *domain.PredicateStore, premises []string, conclusion string) domain.Argument {
	t.Helper()
	var ps []domain.Sentence
	for _, p := range premises {
		s, err := polish.Parse(p, preds)
		require.NoError(t, err)
		ps = append(ps, s)
	}
	c, err := polish.Parse(conclusion, preds)
	require.NoError(t, err)
	return domain.NewArgument(ps, c, "")
}

// Universal Instantiation: premise "VxFx" (everything is F), conclusion
// "Fm" (m is F). Valid in CFOL: the universal rule instantiates the
// branch's sole constant m and closes the branch it conflicts with.
func TestUniversalInstantiationIsValid(t *testing.T) {
	preds := domain.NewPredicateStore()
	_, err := preds.Declare(0, 0, "F", 1)
	require.NoError(t, err)

	arg := parseArg(t, preds, []string{"VxFx"}, "Fm")

	logic, err := proof.Lookup("CFOL")
	require.NoError(t, err)

	tab, err := proof.Open(logic, arg, proof.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tab.Build())

	require.Equal(t, "valid", tab.Stats().Result)
}

// Identity substitution: premises {"Imn", "Fm"} (m is n, m is F),
// conclusion "Fn". Valid: indiscernibility substitutes n for m into the
// designated "Fm", producing "Fn" designated, which closes the branch
// against the undesignated conclusion "Fn".
func TestIdentitySubstitutionIsValid(t *testing.T) {
	preds := domain.NewPredicateStore()
	_, err := preds.Declare(0, 0, "F", 1)
	require.NoError(t, err)

	arg := parseArg(t, preds, []string{"Imn", "Fm"}, "Fn")

	logic, err := proof.Lookup("CFOL")
	require.NoError(t, err)

	tab, err := proof.Open(logic, arg, proof.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tab.Build())

	require.Equal(t, "valid", tab.Stats().Result)
}
