package lp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alethic/tableaux/internal/application/logics/lp"
	"github.com/alethic/tableaux/internal/application/parser/polish"
	"github.com/alethic/tableaux/internal/application/proof"
	"github.com/alethic/tableaux/internal/domain"
)

// Explosion fails in LP: premises {"a", "Na"}, conclusion "b" is invalid,
// witnessed by a countermodel with a = "Both".
func TestExplosionIsInvalidWithBothModel(t *testing.T) {
	preds := domain.NewPredicateStore()
	p1, err := polish.Parse("a", preds)
	require.NoError(t, err)
	p2, err := polish.Parse("Na", preds)
	require.NoError(t, err)
	conclusion, err := polish.Parse("b", preds)
	require.NoError(t, err)
	arg := domain.NewArgument([]domain.Sentence{p1, p2}, conclusion, "Explosion")

	logic, err := proof.Lookup("LP")
	require.NoError(t, err)

	tab, err := proof.Open(logic, arg, proof.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tab.Build())

	require.Equal(t, "invalid", tab.Stats().Result)

	foundBoth := false
	for _, m := range tab.Models() {
		model := m.(*lp.Model)
		require.True(t, model.IsCountermodelTo(arg))
		v, err := model.ValueOf(domain.NewAtomic(0, 0))
		require.NoError(t, err)
		if v == "B" {
			foundBoth = true
		}
	}
	require.True(t, foundBoth)
}
