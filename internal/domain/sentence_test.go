package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alethic/tableaux/internal/domain"
)

func TestNegateAllocatesNewSentence(t *testing.T) {
	a := domain.NewAtomic(0, 0)
	n := domain.Negate(a)

	op, ok := domain.AsOperated(n)
	require.True(t, ok)
	require.Equal(t, domain.Negation, op.Operator)
	require.Len(t, op.Operands, 1)
	require.True(t, domain.Equal(op.Operands[0], a))
}

func TestSentenceEqualityIsStructural(t *testing.T) {
	s1 := domain.NewAtomic(2, 1)
	s2 := domain.NewAtomic(2, 1)
	s3 := domain.NewAtomic(2, 2)

	require.True(t, domain.Equal(s1, s2))
	require.False(t, domain.Equal(s1, s3))
}

func TestTotalOrderIsStableAcrossConstruction(t *testing.T) {
	a := domain.NewAtomic(0, 0)
	b := domain.NewAtomic(1, 0)
	conj, err := domain.NewOperated(domain.Conjunction, []domain.Sentence{a, b})
	require.NoError(t, err)

	ss := []domain.Sentence{conj, b, a}
	domain.SortSentences(ss)

	require.True(t, domain.Equal(ss[0], a))
	require.True(t, domain.Equal(ss[1], b))
	require.True(t, domain.Equal(ss[2], conj))
}

func TestOperatorArityMismatchErrors(t *testing.T) {
	a := domain.NewAtomic(0, 0)
	_, err := domain.NewOperated(domain.Negation, []domain.Sentence{a, a})
	require.Error(t, err)
}

func TestPredicatedArityMismatchErrors(t *testing.T) {
	_, err := domain.NewPredicated(domain.IdentityPredicate, []domain.Term{domain.NewConstant(0, 0)})
	require.Error(t, err)
}

func TestIsLiteral(t *testing.T) {
	a := domain.NewAtomic(0, 0)
	require.True(t, domain.IsLiteral(a))
	require.True(t, domain.IsLiteral(domain.Negate(a)))

	conj, _ := domain.NewOperated(domain.Conjunction, []domain.Sentence{a, a})
	require.False(t, domain.IsLiteral(conj))
}

func TestPredicateStoreDeclareIsIdempotentButDetectsConflict(t *testing.T) {
	store := domain.NewPredicateStore()

	p1, err := store.Declare(0, 0, "F", 1)
	require.NoError(t, err)

	p2, err := store.Declare(0, 0, "F", 1)
	require.NoError(t, err)
	require.Equal(t, p1, p2)

	_, err = store.Declare(0, 0, "F", 2)
	require.Error(t, err)
	require.True(t, domain.IsCode(err, domain.CodeDuplicateKey))
}

func TestSystemPredicatesAlwaysPresent(t *testing.T) {
	store := domain.NewPredicateStore()
	id, ok := store.Get(domain.IdentityPredicateIndex, 0)
	require.True(t, ok)
	require.Equal(t, 2, id.Arity)

	ex, ok := store.Get(domain.ExistencePredicateIndex, 0)
	require.True(t, ok)
	require.Equal(t, 1, ex.Arity)
}

func TestNodeIsModal(t *testing.T) {
	n := domain.NewNode(domain.NodeProps{Sentence: domain.NewAtomic(0, 0)})
	require.False(t, n.IsModal())

	n2 := domain.NewNode(domain.NodeProps{Sentence: domain.NewAtomic(0, 0), World: domain.WorldP(0)})
	require.True(t, n2.IsModal())
}

func TestNodeIdentityIsNotContentEquality(t *testing.T) {
	n1 := domain.NewNode(domain.NodeProps{Sentence: domain.NewAtomic(0, 0)})
	n2 := domain.NewNode(domain.NodeProps{Sentence: domain.NewAtomic(0, 0)})
	require.NotEqual(t, n1.ID(), n2.ID())
}
