package manyvalued

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/proof"
)

// literalBits accumulates, for one literal's base sentence, which of its
// positive/negative designated/undesignated forms were asserted on an
// open branch.
type literalBits struct {
	posD, posU, negD, negU bool
}

// BaseModel reads an open branch into a per-literal Value assignment
// (section 4.6) and recursively evaluates any sentence's value from that
// assignment via a logic-supplied Conjoin/Disjoin pair — CPL, FDE, K3 and
// LP all share this reader and differ only in which truth functions they
// pass in and which values they designate.
type BaseModel struct {
	Literals map[string]Value
	bases    map[string]domain.Sentence
	Conjoin  func(a, b Value) Value
	Disjoin  func(a, b Value) Value
}

// NewBaseModel returns an empty model using the bilattice's strong
// (Belnap) truth functions; K3W overrides Conjoin/Disjoin with the weak
// variants after construction.
func NewBaseModel() *BaseModel {
	return &BaseModel{
		Literals: make(map[string]Value),
		bases:    make(map[string]domain.Sentence),
		Conjoin:  Conjoin,
		Disjoin:  Disjoin,
	}
}

// ReadBranch populates the model from every designated/undesignated
// literal assertion on branch (section 4.6).
func (m *BaseModel) ReadBranch(branch *proof.Branch) {
	acc := make(map[string]*literalBits)
	for _, n := range branch.Nodes() {
		if !n.HasSentence() || n.Designated == nil {
			continue
		}
		base, negated, ok := literalBase(n.Sentence)
		if !ok {
			continue
		}
		key := base.ID()
		bits := acc[key]
		if bits == nil {
			bits = &literalBits{}
			acc[key] = bits
		}
		m.bases[key] = base
		d := *n.Designated
		switch {
		case !negated && d:
			bits.posD = true
		case !negated && !d:
			bits.posU = true
		case negated && d:
			bits.negD = true
		case negated && !d:
			bits.negU = true
		}
	}
	for key, bits := range acc {
		switch {
		case bits.posD && bits.negD:
			m.Literals[key] = B
		case bits.posD && !bits.negD:
			m.Literals[key] = T
		case !bits.posD && bits.negD:
			m.Literals[key] = F
		case bits.posU && bits.negU:
			m.Literals[key] = N
		case bits.posU:
			m.Literals[key] = F
		case bits.negU:
			m.Literals[key] = T
		default:
			m.Literals[key] = N
		}
	}
}

// literalBase reports whether s is a literal (Atomic/Predicated, or a
// Negation of one), returning the non-negated base and whether s itself
// was the negated form.
func literalBase(s domain.Sentence) (domain.Sentence, bool, bool) {
	if domain.IsAtomic(s) || domain.IsPredicated(s) {
		return s, false, true
	}
	if op, ok := domain.AsOperated(s); ok && op.Operator == domain.Negation {
		inner := op.Operands[0]
		if domain.IsAtomic(inner) || domain.IsPredicated(inner) {
			return inner, true, true
		}
	}
	return nil, false, false
}

// Lookup returns a literal's value, defaulting to N (no information) for
// a base sentence never asserted on the branch — the open-world default
// consistent with FDE's "neither" reading. Exported so logics with a
// richer sentence algebra (e.g. cfol's quantifiers) can reimplement
// ValueOf's recursion themselves while still reading literals from this
// shared accumulator.
func (m *BaseModel) Lookup(s domain.Sentence) Value {
	if v, ok := m.Literals[s.ID()]; ok {
		return v
	}
	return N
}

// ValueOf recursively computes s's value from the literal assignment
// (section 4.6).
func (m *BaseModel) ValueOf(s domain.Sentence) (Value, error) {
	switch v := s.(type) {
	case domain.AtomicSentence:
		return m.Lookup(s), nil
	case domain.PredicatedSentence:
		return m.Lookup(s), nil
	case domain.OperatedSentence:
		switch v.Operator {
		case domain.Negation:
			inner, err := m.ValueOf(v.Operands[0])
			if err != nil {
				return "", err
			}
			return NegateValue(inner), nil
		case domain.Assertion:
			return m.ValueOf(v.Operands[0])
		case domain.Conjunction:
			return m.combine(v.Operands[0], v.Operands[1], m.Conjoin)
		case domain.Disjunction:
			return m.combine(v.Operands[0], v.Operands[1], m.Disjoin)
		case domain.MaterialConditional:
			a, err := m.ValueOf(v.Operands[0])
			if err != nil {
				return "", err
			}
			b, err := m.ValueOf(v.Operands[1])
			if err != nil {
				return "", err
			}
			return m.Disjoin(NegateValue(a), b), nil
		case domain.MaterialBiconditional:
			ab, err := m.ValueOf(mustOperated(domain.MaterialConditional, v.Operands))
			if err != nil {
				return "", err
			}
			ba, err := m.ValueOf(mustOperated(domain.MaterialConditional, []domain.Sentence{v.Operands[1], v.Operands[0]}))
			if err != nil {
				return "", err
			}
			return m.Conjoin(ab, ba), nil
		case domain.Conditional:
			return m.ValueOf(mustOperated(domain.MaterialConditional, v.Operands))
		case domain.Biconditional:
			return m.ValueOf(mustOperated(domain.MaterialBiconditional, v.Operands))
		default:
			return "", domain.NewModelError(domain.CodeModelValueError, "modal operator has no value in a non-modal logic")
		}
	default:
		return "", domain.NewModelError(domain.CodeModelValueError, "quantified sentences require a domain-carrying model")
	}
}

func (m *BaseModel) combine(a, b domain.Sentence, fn func(a, b Value) Value) (Value, error) {
	va, err := m.ValueOf(a)
	if err != nil {
		return "", err
	}
	vb, err := m.ValueOf(b)
	if err != nil {
		return "", err
	}
	return fn(va, vb), nil
}

func mustOperated(op domain.Operator, operands []domain.Sentence) domain.Sentence {
	s, _ := domain.NewOperated(op, operands)
	return s
}

// IsCountermodelTo reports whether every premise evaluates to a
// designated value and the conclusion to a non-designated one, per
// designated's predicate (section 4.6).
func (m *BaseModel) IsCountermodelTo(arg domain.Argument, designated func(Value) bool) bool {
	for _, p := range arg.Premises {
		v, err := m.ValueOf(p)
		if err != nil || !designated(v) {
			return false
		}
	}
	v, err := m.ValueOf(arg.Conclusion)
	if err != nil || designated(v) {
		return false
	}
	return true
}
