package cfol

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/logics/manyvalued"
	"github.com/alethic/tableaux/internal/application/proof"
)

// Model is CFOL's branch reader: classical {T, F} valuation over atomics
// and predicated sentences, extended with a constant domain read from
// the branch (section 4.6: "Quantified logics carry a constant domain
// read from the branch's constants"). Universal/Existential sentences
// are evaluated by conjoining/disjoining the body's value over every
// domain element, which BaseModel alone cannot do since it has no notion
// of a domain; this type reimplements ValueOf's recursion instead of
// inheriting it; it reuses BaseModel only for literal storage/lookup and
// the shared propositional truth functions.
type Model struct {
	*manyvalued.BaseModel
	Domain []domain.Term
}

func NewModel() *Model {
	return &Model{BaseModel: manyvalued.NewBaseModel()}
}

// Designated is CPL's designated set, reused here: CFOL is classical
// first-order logic, not a many-valued extension.
func Designated(v manyvalued.Value) bool { return v == manyvalued.T }

func (m *Model) ReadBranch(branch *proof.Branch) {
	m.BaseModel.ReadBranch(branch)
	m.Domain = branch.Constants()
	if len(m.Domain) == 0 {
		m.Domain = []domain.Term{domain.NewConstant(0, 0)}
	}
}

// ValueOf recurses over the full sentence algebra including Quantified
// sentences, unlike BaseModel.ValueOf.
func (m *Model) ValueOf(s domain.Sentence) (manyvalued.Value, error) {
	switch v := s.(type) {
	case domain.AtomicSentence:
		return m.Lookup(s), nil
	case domain.PredicatedSentence:
		return m.Lookup(s), nil
	case domain.QuantifiedSentence:
		var acc manyvalued.Value
		combine := manyvalued.Conjoin
		if v.Quantifier == domain.Existential {
			combine = manyvalued.Disjoin
		}
		for i, c := range m.Domain {
			inst := domain.Substitute(v.Body, v.Variable, c)
			val, err := m.ValueOf(inst)
			if err != nil {
				return "", err
			}
			if i == 0 {
				acc = val
				continue
			}
			acc = combine(acc, val)
		}
		return acc, nil
	case domain.OperatedSentence:
		switch v.Operator {
		case domain.Negation:
			inner, err := m.ValueOf(v.Operands[0])
			if err != nil {
				return "", err
			}
			return manyvalued.NegateValue(inner), nil
		case domain.Assertion:
			return m.ValueOf(v.Operands[0])
		case domain.Conjunction:
			return m.combine(v.Operands[0], v.Operands[1], manyvalued.Conjoin)
		case domain.Disjunction:
			return m.combine(v.Operands[0], v.Operands[1], manyvalued.Disjoin)
		case domain.MaterialConditional:
			a, err := m.ValueOf(v.Operands[0])
			if err != nil {
				return "", err
			}
			b, err := m.ValueOf(v.Operands[1])
			if err != nil {
				return "", err
			}
			return manyvalued.Disjoin(manyvalued.NegateValue(a), b), nil
		case domain.MaterialBiconditional:
			ab, err := m.materialCond(v.Operands[0], v.Operands[1])
			if err != nil {
				return "", err
			}
			ba, err := m.materialCond(v.Operands[1], v.Operands[0])
			if err != nil {
				return "", err
			}
			return manyvalued.Conjoin(ab, ba), nil
		case domain.Conditional:
			return m.materialCond(v.Operands[0], v.Operands[1])
		case domain.Biconditional:
			ab, err := m.materialCond(v.Operands[0], v.Operands[1])
			if err != nil {
				return "", err
			}
			ba, err := m.materialCond(v.Operands[1], v.Operands[0])
			if err != nil {
				return "", err
			}
			return manyvalued.Conjoin(ab, ba), nil
		default:
			return "", domain.NewModelError(domain.CodeModelValueError, "modal operator has no value in a non-modal logic")
		}
	default:
		return "", domain.NewModelError(domain.CodeModelValueError, "unrecognized sentence kind")
	}
}

func (m *Model) combine(a, b domain.Sentence, fn func(a, b manyvalued.Value) manyvalued.Value) (manyvalued.Value, error) {
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

func (m *Model) materialCond(a, b domain.Sentence) (manyvalued.Value, error) {
	va, err := m.ValueOf(a)
	if err != nil {
		return "", err
	}
	vb, err := m.ValueOf(b)
	if err != nil {
		return "", err
	}
	return manyvalued.Disjoin(manyvalued.NegateValue(va), vb), nil
}

func mustOperated(op domain.Operator, operands []domain.Sentence) domain.Sentence {
	s, _ := domain.NewOperated(op, operands)
	return s
}

func (m *Model) IsCountermodelTo(arg domain.Argument) bool {
	for _, p := range arg.Premises {
		v, err := m.ValueOf(p)
		if err != nil || !Designated(v) {
			return false
		}
	}
	v, err := m.ValueOf(arg.Conclusion)
	if err != nil || Designated(v) {
		return false
	}
	return true
}
