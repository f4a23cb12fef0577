package manyvalued

// Value is one of the four points of Belnap's bilattice {T, B, N, F}: a
// designation-based logic's model lattice (section 4.6). Two-valued and
// three-valued logics never read some of these points off an open branch
// (CPL reads no literal as B or N; K3 none as B; LP none as N), though
// BaseModel.Lookup still gives N for a sentence never asserted on the
// branch.
type Value string

const (
	T Value = "T" // true (only)
	B Value = "B" // both true and false (glut)
	N Value = "N" // neither true nor false (gap)
	F Value = "F" // false (only)
)

func (v Value) String() string { return string(v) }

// NegateValue flips T and F and leaves B, N fixed, matching De Morgan
// negation on the bilattice.
func NegateValue(v Value) Value {
	switch v {
	case T:
		return F
	case F:
		return T
	default:
		return v
	}
}

// conjoinTable and disjoinTable are the meet and join of the bilattice's
// truth order F < {N,B} < T (N and B incomparable). Conjunction is the
// meet, disjunction the join.
var conjoinTable = map[Value]map[Value]Value{
	T: {T: T, B: B, N: N, F: F},
	B: {T: B, B: B, N: F, F: F},
	N: {T: N, B: F, N: N, F: F},
	F: {T: F, B: F, N: F, F: F},
}

var disjoinTable = map[Value]map[Value]Value{
	T: {T: T, B: T, N: T, F: T},
	B: {T: T, B: B, N: T, F: B},
	N: {T: T, B: T, N: N, F: N},
	F: {T: T, B: B, N: N, F: F},
}

// Conjoin returns the bilattice meet of a and b (Conjunction's truth
// function).
func Conjoin(a, b Value) Value { return conjoinTable[a][b] }

// Disjoin returns the bilattice join of a and b (Disjunction's truth
// function).
func Disjoin(a, b Value) Value { return disjoinTable[a][b] }

// MaterialCond computes A > B as ¬A ∨ B.
func MaterialCond(a, b Value) Value { return Disjoin(NegateValue(a), b) }

// MaterialBicond computes A < B as (A > B) & (B > A).
func MaterialBicond(a, b Value) Value { return Conjoin(MaterialCond(a, b), MaterialCond(b, a)) }

// WeakConjoin and WeakDisjoin give K3W's (weak/Bochvar-internal Kleene)
// truth functions, where N is contagious: any N operand forces an N
// result regardless of the other operand, unlike the bilattice tables
// above, where N absorbs only T under conjunction and only F under
// disjunction (N with B gives F and T respectively).
func WeakConjoin(a, b Value) Value {
	if a == N || b == N {
		return N
	}
	return Conjoin(a, b)
}

func WeakDisjoin(a, b Value) Value {
	if a == N || b == N {
		return N
	}
	return Disjoin(a, b)
}
