package manyvalued

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/proof"
)

// BinaryRule handles one (operator, negated, designated) combination for
// a two-operand connective. Build receives the connective's two operands
// and returns the adds description for that combination; the matching
// and ticking machinery is shared.
type BinaryRule struct {
	RuleName    string
	Op          domain.Operator
	Negated     bool
	Designated  bool
	IsBranching bool
	Build       func(lhs, rhs domain.Sentence) proof.Adds
}

func (r *BinaryRule) Name() string    { return r.RuleName }
func (r *BinaryRule) Branching() bool { return r.IsBranching }
func (r *BinaryRule) Ticks() bool     { return true }

func (r *BinaryRule) Applies(branch *proof.Branch) []proof.Target {
	var targets []proof.Target
	for _, n := range branch.Unticked() {
		if !n.HasSentence() || !designatedMatches(n, r.Designated) {
			continue
		}
		if _, ok := matchBinary(n.Sentence, r.Op, r.Negated); !ok {
			continue
		}
		targets = append(targets, proof.Target{
			Branch: branch, Node: n, Sentence: n.Sentence, Designated: n.Designated, Rule: r.RuleName,
		})
	}
	return targets
}

func (r *BinaryRule) Apply(target proof.Target) (proof.Adds, error) {
	inner, ok := matchBinary(target.Sentence, r.Op, r.Negated)
	if !ok {
		return nil, domain.NewEngineError(domain.CodeRuleApplicationFailed, r.RuleName+": target sentence no longer matches", nil)
	}
	return r.Build(inner.Operands[0], inner.Operands[1]), nil
}

func (r *BinaryRule) ExampleNodes() []domain.NodeProps {
	s := domain.First(r.Op)
	if r.Negated {
		s = domain.Negate(s)
	}
	d := r.Designated
	return []domain.NodeProps{{Sentence: s, Designated: &d}}
}

func node(s domain.Sentence, designated bool) domain.NodeProps {
	d := designated
	return domain.NodeProps{Sentence: s, Designated: &d}
}

// The four truth-functional conditions below follow Belnap's bilattice:
// designated = {T, B}. Conjunction is the meet, disjunction the join;
// De Morgan's laws (valid in this bilattice) push negation through to
// the operands for the Negated variants.

var ConjunctionDesignated = &BinaryRule{
	RuleName: "ConjunctionDesignated", Op: domain.Conjunction, Designated: true,
	Build: func(lhs, rhs domain.Sentence) proof.Adds {
		return proof.Adds{{node(lhs, true), node(rhs, true)}}
	},
}

var ConjunctionUndesignated = &BinaryRule{
	RuleName: "ConjunctionUndesignated", Op: domain.Conjunction, Designated: false, IsBranching: true,
	Build: func(lhs, rhs domain.Sentence) proof.Adds {
		return proof.Adds{{node(lhs, false)}, {node(rhs, false)}}
	},
}

var ConjunctionNegatedDesignated = &BinaryRule{
	RuleName: "ConjunctionNegatedDesignated", Op: domain.Conjunction, Negated: true, Designated: true, IsBranching: true,
	Build: func(lhs, rhs domain.Sentence) proof.Adds {
		return proof.Adds{{node(domain.Negate(lhs), true)}, {node(domain.Negate(rhs), true)}}
	},
}

var ConjunctionNegatedUndesignated = &BinaryRule{
	RuleName: "ConjunctionNegatedUndesignated", Op: domain.Conjunction, Negated: true, Designated: false,
	Build: func(lhs, rhs domain.Sentence) proof.Adds {
		return proof.Adds{{node(domain.Negate(lhs), false), node(domain.Negate(rhs), false)}}
	},
}

var DisjunctionDesignated = &BinaryRule{
	RuleName: "DisjunctionDesignated", Op: domain.Disjunction, Designated: true, IsBranching: true,
	Build: func(lhs, rhs domain.Sentence) proof.Adds {
		return proof.Adds{{node(lhs, true)}, {node(rhs, true)}}
	},
}

var DisjunctionUndesignated = &BinaryRule{
	RuleName: "DisjunctionUndesignated", Op: domain.Disjunction, Designated: false,
	Build: func(lhs, rhs domain.Sentence) proof.Adds {
		return proof.Adds{{node(lhs, false), node(rhs, false)}}
	},
}

var DisjunctionNegatedDesignated = &BinaryRule{
	RuleName: "DisjunctionNegatedDesignated", Op: domain.Disjunction, Negated: true, Designated: true,
	Build: func(lhs, rhs domain.Sentence) proof.Adds {
		return proof.Adds{{node(domain.Negate(lhs), true), node(domain.Negate(rhs), true)}}
	},
}

var DisjunctionNegatedUndesignated = &BinaryRule{
	RuleName: "DisjunctionNegatedUndesignated", Op: domain.Disjunction, Negated: true, Designated: false, IsBranching: true,
	Build: func(lhs, rhs domain.Sentence) proof.Adds {
		return proof.Adds{{node(domain.Negate(lhs), false)}, {node(domain.Negate(rhs), false)}}
	},
}

// Material conditional A > B is defined as ¬A ∨ B, so its rule bodies
// mirror Disjunction's with the antecedent negated.

var MaterialConditionalDesignated = &BinaryRule{
	RuleName: "MaterialConditionalDesignated", Op: domain.MaterialConditional, Designated: true, IsBranching: true,
	Build: func(lhs, rhs domain.Sentence) proof.Adds {
		return proof.Adds{{node(domain.Negate(lhs), true)}, {node(rhs, true)}}
	},
}

var MaterialConditionalUndesignated = &BinaryRule{
	RuleName: "MaterialConditionalUndesignated", Op: domain.MaterialConditional, Designated: false,
	Build: func(lhs, rhs domain.Sentence) proof.Adds {
		return proof.Adds{{node(domain.Negate(lhs), false), node(rhs, false)}}
	},
}

var MaterialConditionalNegatedDesignated = &BinaryRule{
	RuleName: "MaterialConditionalNegatedDesignated", Op: domain.MaterialConditional, Negated: true, Designated: true,
	Build: func(lhs, rhs domain.Sentence) proof.Adds {
		return proof.Adds{{node(lhs, true), node(domain.Negate(rhs), true)}}
	},
}

var MaterialConditionalNegatedUndesignated = &BinaryRule{
	RuleName: "MaterialConditionalNegatedUndesignated", Op: domain.MaterialConditional, Negated: true, Designated: false, IsBranching: true,
	Build: func(lhs, rhs domain.Sentence) proof.Adds {
		return proof.Adds{{node(lhs, false)}, {node(domain.Negate(rhs), false)}}
	},
}

// BinaryRules lists every BinaryRule instance, for convenient inclusion
// in a logic's rule groups.
var BinaryRules = []*BinaryRule{
	ConjunctionDesignated, ConjunctionUndesignated, ConjunctionNegatedDesignated, ConjunctionNegatedUndesignated,
	DisjunctionDesignated, DisjunctionUndesignated, DisjunctionNegatedDesignated, DisjunctionNegatedUndesignated,
	MaterialConditionalDesignated, MaterialConditionalUndesignated, MaterialConditionalNegatedDesignated, MaterialConditionalNegatedUndesignated,
}
