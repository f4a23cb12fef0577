package argument_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alethic/tableaux/pkg/argument"
)

func TestBuilderBuildsDisjunctiveSyllogism(t *testing.T) {
	b := argument.New(argument.Polish, nil).
		Title("Disjunctive Syllogism").
		Premise("Aab").
		Premise("Nb").
		Conclusion("a")

	arg, err := b.Build()
	require.NoError(t, err)
	require.Len(t, arg.Premises, 2)
	require.Equal(t, "Disjunctive Syllogism", arg.Title)
}

func TestBuilderPropagatesParseError(t *testing.T) {
	b := argument.New(argument.Polish, nil).Premise("?")
	_, err := b.Build()
	require.Error(t, err)
}

func TestBuilderDeclaresPredicatesForReuse(t *testing.T) {
	b := argument.New(argument.Polish, nil).
		DeclarePredicate(0, 0, "F", 1).
		Premise("VxFx").
		Conclusion("Fm")

	arg, err := b.Build()
	require.NoError(t, err)
	require.NotNil(t, arg.Conclusion)
}
