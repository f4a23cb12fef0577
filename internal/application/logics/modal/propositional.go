package modal

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/proof"
)

// BinaryRule handles one (operator, negated) combination for a
// two-operand connective at a fixed world, mirroring original K's
// Conjunction/Disjunction/MaterialConditional rule family but indexed by
// world instead of by designation.
type BinaryRule struct {
	RuleName    string
	Op          domain.Operator
	Negated     bool
	IsBranching bool
	Build       func(lhs, rhs domain.Sentence, world int) proof.Adds
}

func (r *BinaryRule) Name() string    { return r.RuleName }
func (r *BinaryRule) Branching() bool { return r.IsBranching }
func (r *BinaryRule) Ticks() bool     { return true }

func (r *BinaryRule) Applies(branch *proof.Branch) []proof.Target {
	var targets []proof.Target
	for _, n := range branch.Unticked() {
		if !n.HasSentence() {
			continue
		}
		if _, ok := matchOp(n.Sentence, r.Op, r.Negated); !ok {
			continue
		}
		targets = append(targets, proof.Target{
			Branch: branch, Node: n, Sentence: n.Sentence, World: n.WorldOr(0), HasWorld: true, Rule: r.RuleName,
		})
	}
	return targets
}

func (r *BinaryRule) Apply(target proof.Target) (proof.Adds, error) {
	inner, ok := matchOp(target.Sentence, r.Op, r.Negated)
	if !ok {
		return nil, domain.NewEngineError(domain.CodeRuleApplicationFailed, r.RuleName+": target sentence no longer matches", nil)
	}
	return r.Build(inner.Operands[0], inner.Operands[1], target.World), nil
}

func (r *BinaryRule) ExampleNodes() []domain.NodeProps {
	s := domain.First(r.Op)
	if r.Negated {
		s = domain.Negate(s)
	}
	return []domain.NodeProps{atWorld(s, 0)}
}

// Conjunction/Disjunction/MaterialConditional rule bodies below assert a
// single truth value per sentence (no designated/undesignated split), so
// each has exactly the branching shape classical two-sided tableaux give
// the *designated* case; the "undesignated" half of manyvalued's table
// is unnecessary here since modal sentences carry their own negation.

var Conjunction = &BinaryRule{
	RuleName: "Conjunction", Op: domain.Conjunction,
	Build: func(lhs, rhs domain.Sentence, w int) proof.Adds {
		return proof.Adds{{atWorld(lhs, w), atWorld(rhs, w)}}
	},
}

var NegatedConjunction = &BinaryRule{
	RuleName: "NegatedConjunction", Op: domain.Conjunction, Negated: true, IsBranching: true,
	Build: func(lhs, rhs domain.Sentence, w int) proof.Adds {
		return proof.Adds{{atWorld(domain.Negate(lhs), w)}, {atWorld(domain.Negate(rhs), w)}}
	},
}

var Disjunction = &BinaryRule{
	RuleName: "Disjunction", Op: domain.Disjunction, IsBranching: true,
	Build: func(lhs, rhs domain.Sentence, w int) proof.Adds {
		return proof.Adds{{atWorld(lhs, w)}, {atWorld(rhs, w)}}
	},
}

var NegatedDisjunction = &BinaryRule{
	RuleName: "NegatedDisjunction", Op: domain.Disjunction, Negated: true,
	Build: func(lhs, rhs domain.Sentence, w int) proof.Adds {
		return proof.Adds{{atWorld(domain.Negate(lhs), w), atWorld(domain.Negate(rhs), w)}}
	},
}

var MaterialConditional = &BinaryRule{
	RuleName: "MaterialConditional", Op: domain.MaterialConditional, IsBranching: true,
	Build: func(lhs, rhs domain.Sentence, w int) proof.Adds {
		return proof.Adds{{atWorld(domain.Negate(lhs), w)}, {atWorld(rhs, w)}}
	},
}

var NegatedMaterialConditional = &BinaryRule{
	RuleName: "NegatedMaterialConditional", Op: domain.MaterialConditional, Negated: true,
	Build: func(lhs, rhs domain.Sentence, w int) proof.Adds {
		return proof.Adds{{atWorld(lhs, w), atWorld(domain.Negate(rhs), w)}}
	},
}

// BinaryRules lists every propositional BinaryRule instance.
var BinaryRules = []*BinaryRule{
	Conjunction, NegatedConjunction,
	Disjunction, NegatedDisjunction,
	MaterialConditional, NegatedMaterialConditional,
}

// WorldPassthroughRule rewrites a node's sentence into an equivalent one
// at the same world, preserving any wrapping negation, the world-aware
// counterpart of manyvalued.PassthroughRule (which only preserves
// designation, not world).
type WorldPassthroughRule struct {
	RuleName string
	FromOp   domain.Operator
	Rewrite  func(operands []domain.Sentence) domain.Sentence
}

func (r *WorldPassthroughRule) Name() string    { return r.RuleName }
func (r *WorldPassthroughRule) Branching() bool { return false }
func (r *WorldPassthroughRule) Ticks() bool     { return true }

func (r *WorldPassthroughRule) match(s domain.Sentence) (domain.OperatedSentence, bool, bool) {
	if inner, ok := matchOp(s, r.FromOp, false); ok {
		return inner, false, true
	}
	if inner, ok := matchOp(s, r.FromOp, true); ok {
		return inner, true, true
	}
	return domain.OperatedSentence{}, false, false
}

func (r *WorldPassthroughRule) Applies(branch *proof.Branch) []proof.Target {
	var targets []proof.Target
	for _, n := range branch.Unticked() {
		if !n.HasSentence() {
			continue
		}
		if _, _, ok := r.match(n.Sentence); !ok {
			continue
		}
		targets = append(targets, proof.Target{Branch: branch, Node: n, Sentence: n.Sentence, World: n.WorldOr(0), HasWorld: true, Rule: r.RuleName})
	}
	return targets
}

func (r *WorldPassthroughRule) Apply(target proof.Target) (proof.Adds, error) {
	inner, negated, ok := r.match(target.Sentence)
	if !ok {
		return nil, domain.NewEngineError(domain.CodeRuleApplicationFailed, r.RuleName+": target sentence no longer matches", nil)
	}
	result := r.Rewrite(inner.Operands)
	if negated {
		result = domain.Negate(result)
	}
	return proof.Adds{{atWorld(result, target.World)}}, nil
}

func (r *WorldPassthroughRule) ExampleNodes() []domain.NodeProps {
	return []domain.NodeProps{atWorld(domain.First(r.FromOp), 0)}
}

func materialConditional(a, b domain.Sentence) domain.Sentence {
	s, _ := domain.NewOperated(domain.MaterialConditional, []domain.Sentence{a, b})
	return s
}

func conjunctionOf(a, b domain.Sentence) domain.Sentence {
	s, _ := domain.NewOperated(domain.Conjunction, []domain.Sentence{a, b})
	return s
}

// AssertionReduction, ConditionalReduction and BiconditionalReduction
// collapse the Assertion/Conditional/Biconditional operators down to
// Negation/Conjunction/MaterialConditional, which already have rule
// bodies above; MaterialBiconditionalReduction expands A <> B into
// (A > B) & (B > A), same strategy as manyvalued's reduction rules.

var AssertionReduction = &WorldPassthroughRule{
	RuleName: "AssertionReduction", FromOp: domain.Assertion,
	Rewrite: func(operands []domain.Sentence) domain.Sentence { return operands[0] },
}

var ConditionalReduction = &WorldPassthroughRule{
	RuleName: "ConditionalReduction", FromOp: domain.Conditional,
	Rewrite: func(operands []domain.Sentence) domain.Sentence { return materialConditional(operands[0], operands[1]) },
}

var BiconditionalReduction = &WorldPassthroughRule{
	RuleName: "BiconditionalReduction", FromOp: domain.Biconditional,
	Rewrite: func(operands []domain.Sentence) domain.Sentence {
		return conjunctionOf(materialConditional(operands[0], operands[1]), materialConditional(operands[1], operands[0]))
	},
}

var MaterialBiconditionalReduction = &WorldPassthroughRule{
	RuleName: "MaterialBiconditionalReduction", FromOp: domain.MaterialBiconditional,
	Rewrite: func(operands []domain.Sentence) domain.Sentence {
		return conjunctionOf(materialConditional(operands[0], operands[1]), materialConditional(operands[1], operands[0]))
	},
}

// DoubleNegationRule cancels two leading negations at a fixed world.
type DoubleNegationRule struct{}

func (DoubleNegationRule) Name() string    { return "DoubleNegation" }
func (DoubleNegationRule) Branching() bool { return false }
func (DoubleNegationRule) Ticks() bool     { return true }

func doubleNegationInner(s domain.Sentence) (domain.Sentence, bool) {
	outer, ok := domain.AsOperated(s)
	if !ok || outer.Operator != domain.Negation {
		return nil, false
	}
	inner, ok := domain.AsOperated(outer.Operands[0])
	if !ok || inner.Operator != domain.Negation {
		return nil, false
	}
	return inner.Operands[0], true
}

func (r DoubleNegationRule) Applies(branch *proof.Branch) []proof.Target {
	var targets []proof.Target
	for _, n := range branch.Unticked() {
		if !n.HasSentence() {
			continue
		}
		if _, ok := doubleNegationInner(n.Sentence); !ok {
			continue
		}
		targets = append(targets, proof.Target{Branch: branch, Node: n, Sentence: n.Sentence, World: n.WorldOr(0), HasWorld: true, Rule: r.Name()})
	}
	return targets
}

func (r DoubleNegationRule) Apply(target proof.Target) (proof.Adds, error) {
	inner, ok := doubleNegationInner(target.Sentence)
	if !ok {
		return nil, domain.NewEngineError(domain.CodeRuleApplicationFailed, "DoubleNegation: target sentence no longer matches", nil)
	}
	return proof.Adds{{atWorld(inner, target.World)}}, nil
}

func (DoubleNegationRule) ExampleNodes() []domain.NodeProps {
	return []domain.NodeProps{atWorld(domain.Negate(domain.Negate(domain.NewAtomic(0, 0))), 0)}
}

// ReductionRules lists every non-branching reduction/cancellation rule.
var ReductionRules = []proof.Rule{
	DoubleNegationRule{},
	AssertionReduction,
	ConditionalReduction,
	BiconditionalReduction,
	MaterialBiconditionalReduction,
}
