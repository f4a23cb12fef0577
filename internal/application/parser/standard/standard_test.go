package standard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alethic/tableaux/internal/application/parser/standard"
	"github.com/alethic/tableaux/internal/domain"
)

func TestParseAtomic(t *testing.T) {
	preds := domain.NewPredicateStore()
	s, err := standard.Parse("A", preds)
	require.NoError(t, err)
	a, ok := domain.AsAtomic(s)
	require.True(t, ok)
	require.Equal(t, uint(0), a.Index)
}

func TestParseOuterParensOptional(t *testing.T) {
	preds := domain.NewPredicateStore()
	wrapped, err := standard.Parse("(A & B)", preds)
	require.NoError(t, err)
	bare, err := standard.Parse("A & B", preds)
	require.NoError(t, err)
	require.True(t, domain.Equal(wrapped, bare))
}

func TestTwoDepthOneBinaryOperatorsError(t *testing.T) {
	preds := domain.NewPredicateStore()
	_, err := standard.Parse("(A & B & C)", preds)
	require.Error(t, err)
}

func TestInfixPredication(t *testing.T) {
	preds := domain.NewPredicateStore()
	_, err := preds.Declare(0, 0, "F", 2)
	require.NoError(t, err)

	s, err := standard.Parse("aFb", preds)
	require.NoError(t, err)
	p, ok := domain.AsPredicated(s)
	require.True(t, ok)
	require.Equal(t, 2, p.Predicate.Arity)
	require.True(t, p.Parameters[0].IsConstant())
	require.True(t, p.Parameters[1].IsConstant())
}

func TestPrefixPredicationArityOne(t *testing.T) {
	preds := domain.NewPredicateStore()
	_, err := preds.Declare(0, 0, "F", 1)
	require.NoError(t, err)

	s, err := standard.Parse("Fa", preds)
	require.NoError(t, err)
	p, ok := domain.AsPredicated(s)
	require.True(t, ok)
	require.Equal(t, 1, p.Predicate.Arity)
}

func TestIdentityPrefixForm(t *testing.T) {
	preds := domain.NewPredicateStore()
	s, err := standard.Parse("=xy", preds)
	require.Error(t, err) // x, y unbound at top level
	require.Nil(t, s)
}

func TestIdentityInfixForm(t *testing.T) {
	preds := domain.NewPredicateStore()
	s, err := standard.Parse("a = b", preds)
	require.NoError(t, err)
	p, ok := domain.AsPredicated(s)
	require.True(t, ok)
	require.Equal(t, domain.IdentityPredicateIndex, p.Predicate.Index)
}

func TestExistence(t *testing.T) {
	preds := domain.NewPredicateStore()
	s, err := standard.Parse("!a", preds)
	require.NoError(t, err)
	p, ok := domain.AsPredicated(s)
	require.True(t, ok)
	require.Equal(t, domain.ExistencePredicateIndex, p.Predicate.Index)
}

// Section 8's worked Standard-notation scenario: the input parses into
// a Disjunction whose right operand is a Universal whose body is a
// Material Conditional whose left operand is Identity(x, y).
func TestStandardNotationWorkedExample(t *testing.T) {
	preds := domain.NewPredicateStore()
	s, err := standard.Parse("((A & B) V LxLy(=xy > !a))", preds)
	require.NoError(t, err)

	disj, ok := domain.AsOperated(s)
	require.True(t, ok)
	require.Equal(t, domain.Disjunction, disj.Operator)
	require.Len(t, disj.Operands, 2)

	left, ok := domain.AsOperated(disj.Operands[0])
	require.True(t, ok)
	require.Equal(t, domain.Conjunction, left.Operator)

	outerQ, ok := domain.AsQuantified(disj.Operands[1])
	require.True(t, ok)
	require.Equal(t, domain.Universal, outerQ.Quantifier)

	innerQ, ok := domain.AsQuantified(outerQ.Body)
	require.True(t, ok)
	require.Equal(t, domain.Universal, innerQ.Quantifier)

	cond, ok := domain.AsOperated(innerQ.Body)
	require.True(t, ok)
	require.Equal(t, domain.MaterialConditional, cond.Operator)

	ident, ok := domain.AsPredicated(cond.Operands[0])
	require.True(t, ok)
	require.Equal(t, domain.IdentityPredicateIndex, ident.Predicate.Index)
	require.True(t, ident.Parameters[0].IsVariable())
	require.True(t, ident.Parameters[1].IsVariable())

	existence, ok := domain.AsPredicated(cond.Operands[1])
	require.True(t, ok)
	require.Equal(t, domain.ExistencePredicateIndex, existence.Predicate.Index)
}

func TestRoundTrip(t *testing.T) {
	preds := domain.NewPredicateStore()
	for _, src := range []string{"A", "~B", "(A & B)", "(A V ~A)", "((A & B) > C)"} {
		s, err := standard.Parse(src, preds)
		require.NoError(t, err, src)
		out, err := standard.Write(s, preds)
		require.NoError(t, err, src)
		s2, err := standard.Parse(out, preds)
		require.NoError(t, err, out)
		require.True(t, domain.Equal(s, s2), "%s -> %s", src, out)
	}
}

func TestBoundVariableError(t *testing.T) {
	preds := domain.NewPredicateStore()
	_, err := preds.Declare(0, 0, "F", 1)
	require.NoError(t, err)
	_, err = standard.Parse("LxLx(Fx)", preds)
	require.Error(t, err)
	require.True(t, domain.IsCode(err, domain.CodeBoundVariable))
}
