package domain

import (
	"fmt"
	"strings"
)

// SentenceKind tags which of the four free-algebra variants a Sentence is.
// The numeric order below is also the primary key of the total sentence
// order described in section 4.1.
type SentenceKind int

const (
	KindAtomic SentenceKind = iota
	KindPredicated
	KindQuantified
	KindOperated
)

func (k SentenceKind) String() string {
	switch k {
	case KindAtomic:
		return "Atomic"
	case KindPredicated:
		return "Predicated"
	case KindQuantified:
		return "Quantified"
	case KindOperated:
		return "Operated"
	default:
		return "Unknown"
	}
}

// Operator identifies one of the ten fixed-arity connectives.
type Operator int

const (
	Assertion Operator = iota
	Negation
	Possibility
	Necessity
	Conjunction
	Disjunction
	MaterialConditional
	MaterialBiconditional
	Conditional
	Biconditional
)

var operatorArity = map[Operator]int{
	Assertion:              1,
	Negation:               1,
	Possibility:            1,
	Necessity:              1,
	Conjunction:            2,
	Disjunction:            2,
	MaterialConditional:    2,
	MaterialBiconditional:  2,
	Conditional:            2,
	Biconditional:          2,
}

var operatorNames = map[Operator]string{
	Assertion:             "Assertion",
	Negation:              "Negation",
	Possibility:           "Possibility",
	Necessity:             "Necessity",
	Conjunction:           "Conjunction",
	Disjunction:           "Disjunction",
	MaterialConditional:   "Material Conditional",
	MaterialBiconditional: "Material Biconditional",
	Conditional:           "Conditional",
	Biconditional:         "Biconditional",
}

// Arity returns the fixed operand count for o.
func (o Operator) Arity() int { return operatorArity[o] }

// String returns the operator's display name.
func (o Operator) String() string { return operatorNames[o] }

// Quantifier identifies a binder.
type Quantifier int

const (
	Universal Quantifier = iota
	Existential
)

func (q Quantifier) String() string {
	if q == Universal {
		return "Universal"
	}
	return "Existential"
}

// Sentence is the common interface of the free algebra described in
// section 3: Atomic, Predicated, Quantified, Operated. All variants are
// immutable, value-hashable (via ID), and totally ordered (via Compare).
// The unexported method seals the interface to this package's variants.
type Sentence interface {
	Kind() SentenceKind
	// ID is a canonical, collision-free string encoding used as a map
	// key wherever sentence identity is needed (subformula indexes,
	// applied-rule tracking). Two structurally equal sentences have the
	// same ID regardless of how they were constructed.
	ID() string
	// Compare gives the total order of section 4.1, used to normalize
	// rule output and to make branch construction deterministic.
	Compare(other Sentence) int
	// Operands/quantified-body access is only meaningful for some
	// variants; helpers below (IsOperated, AsOperated, ...) provide safe
	// narrowing instead of type assertions scattered through rule code.
	sealed()
}

// Equal reports structural equality between two sentences.
func Equal(a, b Sentence) bool {
	return a.ID() == b.ID()
}

// --- Atomic ---

// AtomicSentence is one of a finite alphabet of 5 atomic roots, extended
// by subscript.
type AtomicSentence struct {
	Index     uint
	Subscript uint
}

func NewAtomic(index, subscript uint) AtomicSentence {
	return AtomicSentence{Index: index, Subscript: subscript}
}

func (s AtomicSentence) Kind() SentenceKind { return KindAtomic }
func (s AtomicSentence) sealed()            {}

func (s AtomicSentence) ID() string {
	return fmt.Sprintf("A%d.%d", s.Index, s.Subscript)
}

func (s AtomicSentence) Compare(o Sentence) int {
	if c := compareKind(s, o); c != 0 {
		return c
	}
	os := o.(AtomicSentence)
	if s.Index != os.Index {
		return cmpUint(s.Index, os.Index)
	}
	return cmpUint(s.Subscript, os.Subscript)
}

// --- Predicated ---

// PredicatedSentence applies a predicate to a sequence of terms whose
// length must equal the predicate's declared arity.
type PredicatedSentence struct {
	Predicate  Predicate
	Parameters []Term
}

func NewPredicated(p Predicate, params []Term) (PredicatedSentence, error) {
	if len(params) != p.Arity {
		return PredicatedSentence{}, NewError(ErrKindConfig, CodeValueConflict,
			fmt.Sprintf("predicate %s has arity %d, got %d parameters", p.Name, p.Arity, len(params)), nil)
	}
	cp := make([]Term, len(params))
	copy(cp, params)
	return PredicatedSentence{Predicate: p, Parameters: cp}, nil
}

func (s PredicatedSentence) Kind() SentenceKind { return KindPredicated }
func (s PredicatedSentence) sealed()            {}

func (s PredicatedSentence) ID() string {
	var b strings.Builder
	fmt.Fprintf(&b, "P%d.%d(", s.Predicate.Index, s.Predicate.Subscript)
	for i, t := range s.Parameters {
		if i > 0 {
			b.WriteByte(',')
		}
		if t.IsConstant() {
			fmt.Fprintf(&b, "c%d.%d", t.Index, t.Subscript)
		} else {
			fmt.Fprintf(&b, "v%d.%d", t.Index, t.Subscript)
		}
	}
	b.WriteByte(')')
	return b.String()
}

func (s PredicatedSentence) Compare(o Sentence) int {
	if c := compareKind(s, o); c != 0 {
		return c
	}
	os := o.(PredicatedSentence)
	if s.Predicate.Index != os.Predicate.Index {
		return s.Predicate.Index - os.Predicate.Index
	}
	if s.Predicate.Subscript != os.Predicate.Subscript {
		return cmpUint(s.Predicate.Subscript, os.Predicate.Subscript)
	}
	for i := 0; i < len(s.Parameters) && i < len(os.Parameters); i++ {
		if c := s.Parameters[i].Compare(os.Parameters[i]); c != 0 {
			return c
		}
	}
	return len(s.Parameters) - len(os.Parameters)
}

// --- Quantified ---

// QuantifiedSentence binds a variable in a body sentence. The bound
// variable must not already be bound by an ancestor quantifier (strict
// scoping is enforced by the parser, not by this constructor, since only
// the parser tracks ancestor scope).
type QuantifiedSentence struct {
	Quantifier Quantifier
	Variable   Term
	Body       Sentence
}

func NewQuantified(q Quantifier, v Term, body Sentence) QuantifiedSentence {
	return QuantifiedSentence{Quantifier: q, Variable: v, Body: body}
}

func (s QuantifiedSentence) Kind() SentenceKind { return KindQuantified }
func (s QuantifiedSentence) sealed()            {}

func (s QuantifiedSentence) ID() string {
	return fmt.Sprintf("Q%d[v%d.%d](%s)", s.Quantifier, s.Variable.Index, s.Variable.Subscript, s.Body.ID())
}

func (s QuantifiedSentence) Compare(o Sentence) int {
	if c := compareKind(s, o); c != 0 {
		return c
	}
	os := o.(QuantifiedSentence)
	if s.Quantifier != os.Quantifier {
		return int(s.Quantifier) - int(os.Quantifier)
	}
	if c := s.Variable.Compare(os.Variable); c != 0 {
		return c
	}
	return s.Body.Compare(os.Body)
}

// --- Operated ---

// OperatedSentence applies an operator to its fixed-arity operands.
type OperatedSentence struct {
	Operator Operator
	Operands []Sentence
}

func NewOperated(op Operator, operands []Sentence) (OperatedSentence, error) {
	if len(operands) != op.Arity() {
		return OperatedSentence{}, NewError(ErrKindConfig, CodeValueConflict,
			fmt.Sprintf("operator %s has arity %d, got %d operands", op, op.Arity(), len(operands)), nil)
	}
	cp := make([]Sentence, len(operands))
	copy(cp, operands)
	return OperatedSentence{Operator: op, Operands: cp}, nil
}

func (s OperatedSentence) Kind() SentenceKind { return KindOperated }
func (s OperatedSentence) sealed()            {}

func (s OperatedSentence) ID() string {
	var b strings.Builder
	fmt.Fprintf(&b, "O%d(", s.Operator)
	for i, o := range s.Operands {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(o.ID())
	}
	b.WriteByte(')')
	return b.String()
}

func (s OperatedSentence) Compare(o Sentence) int {
	if c := compareKind(s, o); c != 0 {
		return c
	}
	os := o.(OperatedSentence)
	if s.Operator != os.Operator {
		return int(s.Operator) - int(os.Operator)
	}
	for i := 0; i < len(s.Operands) && i < len(os.Operands); i++ {
		if c := s.Operands[i].Compare(os.Operands[i]); c != 0 {
			return c
		}
	}
	return len(s.Operands) - len(os.Operands)
}

// Negate returns a new OperatedSentence wrapping s in Negation. Sentences
// never mutate; this always allocates a new value.
func Negate(s Sentence) Sentence {
	n, _ := NewOperated(Negation, []Sentence{s})
	return n
}

// --- predicates over Sentence ---

func IsAtomic(s Sentence) bool     { return s.Kind() == KindAtomic }
func IsPredicated(s Sentence) bool { return s.Kind() == KindPredicated }
func IsQuantified(s Sentence) bool { return s.Kind() == KindQuantified }
func IsOperated(s Sentence) bool   { return s.Kind() == KindOperated }

// IsLiteral reports whether s is atomic, predicated, or a negation of one
// of those (the usual tableau notion of a literal).
func IsLiteral(s Sentence) bool {
	if IsAtomic(s) || IsPredicated(s) {
		return true
	}
	if op, ok := s.(OperatedSentence); ok && op.Operator == Negation {
		return IsAtomic(op.Operands[0]) || IsPredicated(op.Operands[0])
	}
	return false
}

// AsOperated narrows s to an OperatedSentence.
func AsOperated(s Sentence) (OperatedSentence, bool) {
	o, ok := s.(OperatedSentence)
	return o, ok
}

// AsQuantified narrows s to a QuantifiedSentence.
func AsQuantified(s Sentence) (QuantifiedSentence, bool) {
	q, ok := s.(QuantifiedSentence)
	return q, ok
}

// AsPredicated narrows s to a PredicatedSentence.
func AsPredicated(s Sentence) (PredicatedSentence, bool) {
	p, ok := s.(PredicatedSentence)
	return p, ok
}

// AsAtomic narrows s to an AtomicSentence.
func AsAtomic(s Sentence) (AtomicSentence, bool) {
	a, ok := s.(AtomicSentence)
	return a, ok
}

// First returns a canonical minimal example sentence built around
// operator op, used by rule classes to generate documentation/test
// fixtures (section 4.1 "first(operator)").
func First(op Operator) Sentence {
	a := AtomicSentence{Index: 0, Subscript: 0}
	b := AtomicSentence{Index: 1, Subscript: 0}
	var operands []Sentence
	if op.Arity() == 1 {
		operands = []Sentence{a}
	} else {
		operands = []Sentence{a, b}
	}
	s, _ := NewOperated(op, operands)
	return s
}

// FirstQuantified returns a canonical minimal example sentence for
// quantifier q (section 4.1 "first(quantifier)").
func FirstQuantified(q Quantifier) Sentence {
	v := NewVariable(0, 0)
	body, _ := NewPredicated(Predicate{Index: 0, Subscript: 0, Name: "F", Arity: 1}, []Term{v})
	return NewQuantified(q, v, body)
}

func compareKind(a, b Sentence) int {
	return int(a.Kind()) - int(b.Kind())
}

func cmpUint(a, b uint) int {
	if a == b {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}
