package t_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alethic/tableaux/internal/application/parser/polish"
	"github.com/alethic/tableaux/internal/application/proof"
	"github.com/alethic/tableaux/internal/domain"

	_ "github.com/alethic/tableaux/internal/application/logics/modal/k"
	_ "github.com/alethic/tableaux/internal/application/logics/modal/t"
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

// Necessity Elimination: premise "La" (necessarily a), conclusion "a".
// Valid in T: the reflexive access rule puts world 0 in reach of itself,
// so the Necessity rule instantiates "a" at world 0 directly.
func TestNecessityEliminationIsValid(t *testing.T) {
	arg := parseArg(t, []string{"La"}, "a")

	logic, err := proof.Lookup("T")
	require.NoError(t, err)

	tab, err := proof.Open(logic, arg, proof.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tab.Build())

	require.Equal(t, "valid", tab.Stats().Result)
}

// Necessity Elimination is not valid in K: without reflexivity, there is
// no guarantee world 0 can see itself, so "La" does not entail "a".
func TestNecessityEliminationInvalidInK(t *testing.T) {
	arg := parseArg(t, []string{"La"}, "a")

	logic, err := proof.Lookup("K")
	require.NoError(t, err)

	tab, err := proof.Open(logic, arg, proof.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tab.Build())

	require.Equal(t, "invalid", tab.Stats().Result)
}
