package fde_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/alethic/tableaux/internal/application/logics/fde"
	"github.com/alethic/tableaux/internal/application/parser/polish"
	"github.com/alethic/tableaux/internal/application/proof"
	"github.com/alethic/tableaux/internal/domain"
)

// Addition, logic=FDE: premises {"a"}, conclusion "Aab". Result: valid
// (section 8).
func TestAdditionIsValid(t *testing.T) {
	preds := domain.NewPredicateStore()
	p, err := polish.Parse("a", preds)
	require.NoError(t, err)
	c, err := polish.Parse("Aab", preds)
	require.NoError(t, err)
	arg := domain.NewArgument([]domain.Sentence{p}, c, "Addition")

	logic, err := proof.Lookup("FDE")
	require.NoError(t, err)

	tab, err := proof.Open(logic, arg, proof.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tab.Build())

	require.Equal(t, "valid", tab.Stats().Result)
	require.Zero(t, tab.Stats().OpenBranches)
}
