package d_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alethic/tableaux/internal/application/parser/polish"
	"github.com/alethic/tableaux/internal/application/proof"
	"github.com/alethic/tableaux/internal/domain"

	_ "github.com/alethic/tableaux/internal/application/logics/modal/d"
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

// Serial Inference: no premises, conclusion "CLaMa" (La > Ma, i.e.
// necessarily-a implies possibly-a). Valid in D: seriality guarantees
// every world has an accessible world, so if a holds at every accessible
// world it holds at at least one.
func TestSerialInferenceIsValid(t *testing.T) {
	arg := parseArg(t, nil, "CLaMa")

	logic, err := proof.Lookup("D")
	require.NoError(t, err)

	tab, err := proof.Open(logic, arg, proof.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tab.Build())

	require.Equal(t, "valid", tab.Stats().Result)
}
