package s5_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alethic/tableaux/internal/application/parser/polish"
	"github.com/alethic/tableaux/internal/application/proof"
	"github.com/alethic/tableaux/internal/domain"

	_ "github.com/alethic/tableaux/internal/application/logics/modal/s4"
	_ "github.com/alethic/tableaux/internal/application/logics/modal/s5"
)

func parseArg(t *testing.T, premises []string, conclusion string) domain.Argument {
	t.Helper()
	preds := domain.NewPredicateStore()
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

// S5 collapses modal iteration: "MLa" (possibly necessarily a) entails
// "La" (necessarily a), since accessibility is an equivalence relation.
func TestPossiblyNecessaryIsNecessaryInS5(t *testing.T) {
	arg := parseArg(t, []string{"MLa"}, "La")

	logic, err := proof.Lookup("S5")
	require.NoError(t, err)

	tab, err := proof.Open(logic, arg, proof.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tab.Build())

	require.Equal(t, "valid", tab.Stats().Result)
}

// The same inference is not valid in S4 (transitive + reflexive but not
// symmetric): possibly-necessary does not collapse to necessary.
func TestPossiblyNecessaryNotNecessaryInS4(t *testing.T) {
	arg := parseArg(t, []string{"MLa"}, "La")

	logic, err := proof.Lookup("S4")
	require.NoError(t, err)

	tab, err := proof.Open(logic, arg, proof.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tab.Build())

	require.Equal(t, "invalid", tab.Stats().Result)
}
