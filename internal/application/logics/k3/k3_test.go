package k3_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alethic/tableaux/internal/application/logics/k3"
	"github.com/alethic/tableaux/internal/application/parser/polish"
	"github.com/alethic/tableaux/internal/application/proof"
	"github.com/alethic/tableaux/internal/domain"
)

// Law of Excluded Middle, logic=K3: premises {}, conclusion "AaNa".
// Result: invalid. At least one counter-model m with value_of("a") = N
// (section 8).
func TestLawOfExcludedMiddleIsInvalidWithNeitherModel(t *testing.T) {
	preds := domain.NewPredicateStore()
	conclusion, err := polish.Parse("AaNa", preds)
	require.NoError(t, err)
	arg := domain.NewArgument(nil, conclusion, "Law of Excluded Middle")

	logic, err := proof.Lookup("K3")
	require.NoError(t, err)

	tab, err := proof.Open(logic, arg, proof.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tab.Build())

	require.Equal(t, "invalid", tab.Stats().Result)

	foundNeither := false
	for _, m := range tab.Models() {
		model := m.(*k3.Model)
		require.True(t, model.IsCountermodelTo(arg))
		v, err := model.ValueOf(domain.NewAtomic(0, 0))
		require.NoError(t, err)
		if v == "N" {
			foundNeither = true
		}
	}
	require.True(t, foundNeither)
}
