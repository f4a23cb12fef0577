package cpl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alethic/tableaux/internal/application/logics/cpl"
	"github.com/alethic/tableaux/internal/application/parser/polish"
	"github.com/alethic/tableaux/internal/application/proof"
	"github.com/alethic/tableaux/internal/domain"
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

// Disjunctive Syllogism, logic=CPL: premises {"Aab", "Nb"}, conclusion
// "a". Result: valid. Open branches: 0. Closed branches: 2 (section 8).
func TestDisjunctiveSyllogismIsValid(t *testing.T) {
	arg := parseArg(t, []string{"Aab", "Nb"}, "a")

	logic, err := proof.Lookup("CPL")
	require.NoError(t, err)

	tab, err := proof.Open(logic, arg, proof.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tab.Build())

	stats := tab.Stats()
	require.Equal(t, "valid", stats.Result)
	require.Equal(t, 0, stats.OpenBranches)
	require.Equal(t, 2, stats.ClosedBranches)
}

// Affirming a Disjunct, logic=CPL: premises {"Aab","a"}, conclusion "b".
// Result: invalid; counter-model assigns a=T, b=F (section 8).
func TestAffirmingADisjunctIsInvalid(t *testing.T) {
	arg := parseArg(t, []string{"Aab", "a"}, "b")

	logic, err := proof.Lookup("CPL")
	require.NoError(t, err)

	tab, err := proof.Open(logic, arg, proof.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tab.Build())

	stats := tab.Stats()
	require.Equal(t, "invalid", stats.Result)
	require.NotZero(t, stats.OpenBranches)

	found := false
	for _, m := range tab.Models() {
		model := m.(*cpl.Model)
		va, _ := model.ValueOf(domain.NewAtomic(0, 0))
		vb, _ := model.ValueOf(domain.NewAtomic(1, 0))
		if va == "T" && vb == "F" {
			found = true
		}
		require.True(t, model.IsCountermodelTo(arg))
	}
	require.True(t, found)
}
