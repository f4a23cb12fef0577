package modal

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/proof"
)

// Value is modal logic's bivalent truth value, read at world 0 (the
// argument's reference world).
type Value string

const (
	T Value = "T"
	F Value = "F"
)

// Model is a frame (worlds plus an accessibility relation) together with
// the per-world assertions read from an open branch (section 4.6:
// "modal logics carry a frame: a set of worlds and an accessibility
// relation read from world1/world2 nodes").
type Model struct {
	access     map[[2]int]bool
	assertions map[worldSentenceKey]bool
}

func NewModel() *Model {
	return &Model{access: make(map[[2]int]bool), assertions: make(map[worldSentenceKey]bool)}
}

func (m *Model) ReadBranch(branch *proof.Branch) {
	for _, pair := range branch.AccessPairs() {
		m.access[[2]int{pair[0], pair[1]}] = true
	}
	for _, n := range branch.Nodes() {
		if !n.HasSentence() {
			continue
		}
		m.assertions[worldSentenceKey{n.Sentence.ID(), n.WorldOr(0)}] = true
	}
}

func (m *Model) accessibleFrom(w int) []int {
	var out []int
	for k := range m.access {
		if k[0] == w {
			out = append(out, k[1])
		}
	}
	return out
}

// ValueOf reports whether s holds at world 0, the world the argument's
// premises and conclusion are evaluated at.
func (m *Model) ValueOf(s domain.Sentence) (Value, error) {
	v, err := m.valueAt(s, 0)
	if err != nil {
		return "", err
	}
	if v {
		return T, nil
	}
	return F, nil
}

func (m *Model) valueAt(s domain.Sentence, w int) (bool, error) {
	switch v := s.(type) {
	case domain.AtomicSentence:
		return m.assertions[worldSentenceKey{s.ID(), w}], nil
	case domain.PredicatedSentence:
		return m.assertions[worldSentenceKey{s.ID(), w}], nil
	case domain.OperatedSentence:
		switch v.Operator {
		case domain.Negation:
			inner, err := m.valueAt(v.Operands[0], w)
			if err != nil {
				return false, err
			}
			return !inner, nil
		case domain.Assertion:
			return m.valueAt(v.Operands[0], w)
		case domain.Conjunction:
			a, b, err := m.pairAt(v.Operands, w)
			if err != nil {
				return false, err
			}
			return a && b, nil
		case domain.Disjunction:
			a, b, err := m.pairAt(v.Operands, w)
			if err != nil {
				return false, err
			}
			return a || b, nil
		case domain.MaterialConditional, domain.Conditional:
			a, b, err := m.pairAt(v.Operands, w)
			if err != nil {
				return false, err
			}
			return !a || b, nil
		case domain.MaterialBiconditional, domain.Biconditional:
			a, b, err := m.pairAt(v.Operands, w)
			if err != nil {
				return false, err
			}
			return a == b, nil
		case domain.Possibility:
			for _, w2 := range m.accessibleFrom(w) {
				val, err := m.valueAt(v.Operands[0], w2)
				if err != nil {
					return false, err
				}
				if val {
					return true, nil
				}
			}
			return false, nil
		case domain.Necessity:
			for _, w2 := range m.accessibleFrom(w) {
				val, err := m.valueAt(v.Operands[0], w2)
				if err != nil {
					return false, err
				}
				if !val {
					return false, nil
				}
			}
			return true, nil
		default:
			return false, domain.NewModelError(domain.CodeModelValueError, "unrecognized operator in a modal logic")
		}
	default:
		return false, domain.NewModelError(domain.CodeModelValueError, "quantified sentences require a domain-carrying model")
	}
}

func (m *Model) pairAt(operands []domain.Sentence, w int) (bool, bool, error) {
	a, err := m.valueAt(operands[0], w)
	if err != nil {
		return false, false, err
	}
	b, err := m.valueAt(operands[1], w)
	if err != nil {
		return false, false, err
	}
	return a, b, nil
}

// IsCountermodelTo reports whether every premise holds and the
// conclusion fails to hold at world 0.
func (m *Model) IsCountermodelTo(arg domain.Argument) bool {
	for _, p := range arg.Premises {
		v, err := m.valueAt(p, 0)
		if err != nil || !v {
			return false
		}
	}
	v, err := m.valueAt(arg.Conclusion, 0)
	if err != nil || v {
		return false
	}
	return true
}
