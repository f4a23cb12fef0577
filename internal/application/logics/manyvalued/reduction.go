package manyvalued

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/proof"
)

// PassthroughRule rewrites a node's sentence into an equivalent one built
// from other operators, preserving designation and any wrapping
// negation, then lets the rest of the rule set continue from there. Used
// for operators defined in terms of others (Assertion, Conditional,
// Biconditional, Material Biconditional) rather than given independent
// truth-functional rule bodies.
type PassthroughRule struct {
	RuleName string
	FromOp   domain.Operator
	Rewrite  func(operands []domain.Sentence) domain.Sentence
}

func (r *PassthroughRule) Name() string    { return r.RuleName }
func (r *PassthroughRule) Branching() bool { return false }
func (r *PassthroughRule) Ticks() bool     { return true }

func (r *PassthroughRule) match(s domain.Sentence) (domain.OperatedSentence, bool, bool) {
	if inner, ok := matchBinary(s, r.FromOp, false); ok {
		return inner, false, true
	}
	if inner, ok := matchBinary(s, r.FromOp, true); ok {
		return inner, true, true
	}
	return domain.OperatedSentence{}, false, false
}

func (r *PassthroughRule) Applies(branch *proof.Branch) []proof.Target {
	var targets []proof.Target
	for _, n := range branch.Unticked() {
		if !n.HasSentence() {
			continue
		}
		if _, _, ok := r.match(n.Sentence); !ok {
			continue
		}
		targets = append(targets, proof.Target{Branch: branch, Node: n, Sentence: n.Sentence, Designated: n.Designated, Rule: r.RuleName})
	}
	return targets
}

func (r *PassthroughRule) Apply(target proof.Target) (proof.Adds, error) {
	inner, negated, ok := r.match(target.Sentence)
	if !ok {
		return nil, domain.NewEngineError(domain.CodeRuleApplicationFailed, r.RuleName+": target sentence no longer matches", nil)
	}
	result := r.Rewrite(inner.Operands)
	if negated {
		result = domain.Negate(result)
	}
	out := domain.NodeProps{Sentence: result}
	if target.Designated != nil {
		d := *target.Designated
		out.Designated = &d
	}
	return proof.Adds{{out}}, nil
}

func (r *PassthroughRule) ExampleNodes() []domain.NodeProps {
	return []domain.NodeProps{{Sentence: domain.First(r.FromOp)}}
}

func materialConditional(a, b domain.Sentence) domain.Sentence {
	s, _ := domain.NewOperated(domain.MaterialConditional, []domain.Sentence{a, b})
	return s
}

func materialBiconditional(a, b domain.Sentence) domain.Sentence {
	s, _ := domain.NewOperated(domain.MaterialBiconditional, []domain.Sentence{a, b})
	return s
}

func conjunction(a, b domain.Sentence) domain.Sentence {
	s, _ := domain.NewOperated(domain.Conjunction, []domain.Sentence{a, b})
	return s
}

// AssertionReduction discharges the Assertion operator: *A carries the
// same value as A (section 4.1's native-op list includes Assertion for
// every logic, but only B3E-style logics give it independent truth
// conditions; the rest treat it as transparent).
var AssertionReduction = &PassthroughRule{
	RuleName: "AssertionReduction", FromOp: domain.Assertion,
	Rewrite: func(operands []domain.Sentence) domain.Sentence { return operands[0] },
}

// ConditionalReduction and BiconditionalReduction collapse the "strict"
// Conditional/Biconditional operators to their material counterparts.
// Sound for every non-modal logic bundle here since none of CPL/K3/FDE/LP
// give the strict operators a distinct (world-relative) truth condition;
// modal bundles (see logics/modal) use their own world-preserving
// reductions to the material operators instead of this one.
var ConditionalReduction = &PassthroughRule{
	RuleName: "ConditionalReduction", FromOp: domain.Conditional,
	Rewrite: func(operands []domain.Sentence) domain.Sentence { return materialConditional(operands[0], operands[1]) },
}

var BiconditionalReduction = &PassthroughRule{
	RuleName: "BiconditionalReduction", FromOp: domain.Biconditional,
	Rewrite: func(operands []domain.Sentence) domain.Sentence { return materialBiconditional(operands[0], operands[1]) },
}

// MaterialBiconditionalReduction expands A <> B into (A > B) & (B > A),
// letting the already-correct MaterialConditional and Conjunction rules
// take over instead of hand-deriving a four-way branch disjunctive
// normal form for the negated/undesignated case.
var MaterialBiconditionalReduction = &PassthroughRule{
	RuleName: "MaterialBiconditionalReduction", FromOp: domain.MaterialBiconditional,
	Rewrite: func(operands []domain.Sentence) domain.Sentence {
		return conjunction(materialConditional(operands[0], operands[1]), materialConditional(operands[1], operands[0]))
	},
}

// DoubleNegationRule cancels two leading negations, at any designation.
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
		targets = append(targets, proof.Target{Branch: branch, Node: n, Sentence: n.Sentence, Designated: n.Designated, Rule: r.Name()})
	}
	return targets
}

func (r DoubleNegationRule) Apply(target proof.Target) (proof.Adds, error) {
	inner, ok := doubleNegationInner(target.Sentence)
	if !ok {
		return nil, domain.NewEngineError(domain.CodeRuleApplicationFailed, "DoubleNegation: target sentence no longer matches", nil)
	}
	out := domain.NodeProps{Sentence: inner}
	if target.Designated != nil {
		d := *target.Designated
		out.Designated = &d
	}
	return proof.Adds{{out}}, nil
}

func (DoubleNegationRule) ExampleNodes() []domain.NodeProps {
	return []domain.NodeProps{{Sentence: domain.Negate(domain.Negate(domain.NewAtomic(0, 0)))}}
}

// ReductionRules lists every non-branching reduction/cancellation rule.
var ReductionRules = []proof.Rule{
	DoubleNegationRule{},
	AssertionReduction,
	ConditionalReduction,
	BiconditionalReduction,
	MaterialBiconditionalReduction,
}
