package modal

import (
	"fmt"

	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/proof"
)

// NecessityRule: a □A node at world w propagates A to every world w'
// accessible from w (one instance per access pair, like the universal
// quantifier's non-fresh instantiation rule: new access pairs discovered
// later must still be covered, so this rule never ticks its source
// node).
type NecessityRule struct{}

func (NecessityRule) Name() string    { return "Necessity" }
func (NecessityRule) Branching() bool { return false }
func (NecessityRule) Ticks() bool     { return false }

func (r NecessityRule) Applies(branch *proof.Branch) []proof.Target {
	var targets []proof.Target
	for _, n := range branch.Nodes() {
		if !n.HasSentence() {
			continue
		}
		if _, ok := matchOp(n.Sentence, domain.Necessity, false); !ok {
			continue
		}
		w := n.WorldOr(0)
		for _, pair := range branch.AccessPairs() {
			if pair[0] != w {
				continue
			}
			key := fmt.Sprintf("Necessity:%s:%d", n.ID(), pair[1])
			if branch.HasAppliedPair(key) {
				continue
			}
			targets = append(targets, proof.Target{
				Branch: branch, Node: n, Sentence: n.Sentence,
				World: pair[1], HasWorld: true, World1: w, World2: pair[1], HasAccess: true, Rule: r.Name(),
			})
		}
	}
	return targets
}

func (r NecessityRule) Apply(target proof.Target) (proof.Adds, error) {
	inner, ok := matchOp(target.Sentence, domain.Necessity, false)
	if !ok {
		return nil, domain.NewEngineError(domain.CodeRuleApplicationFailed, "Necessity: target sentence no longer matches", nil)
	}
	key := fmt.Sprintf("Necessity:%s:%d", target.Node.ID(), target.World2)
	target.Branch.MarkAppliedPair(key)
	return proof.Adds{{atWorld(inner.Operands[0], target.World2)}}, nil
}

func (NecessityRule) ExampleNodes() []domain.NodeProps {
	s, _ := domain.NewOperated(domain.Necessity, []domain.Sentence{domain.NewAtomic(0, 0)})
	return []domain.NodeProps{atWorld(s, 0)}
}

// PossibilityRule: a ◇A node at world w introduces a fresh world w' with
// access w -> w' and asserts A at w' ("there exists an accessible world
// where A holds" reading; ticks its source node, one witness suffices,
// mirroring the existential quantifier's fresh-constant rule).
type PossibilityRule struct{}

func (PossibilityRule) Name() string    { return "Possibility" }
func (PossibilityRule) Branching() bool { return false }
func (PossibilityRule) Ticks() bool     { return true }

func (r PossibilityRule) Applies(branch *proof.Branch) []proof.Target {
	var targets []proof.Target
	for _, n := range branch.Unticked() {
		if !n.HasSentence() {
			continue
		}
		if _, ok := matchOp(n.Sentence, domain.Possibility, false); !ok {
			continue
		}
		targets = append(targets, proof.Target{Branch: branch, Node: n, Sentence: n.Sentence, World: n.WorldOr(0), HasWorld: true, Rule: r.Name()})
	}
	return targets
}

func (r PossibilityRule) Apply(target proof.Target) (proof.Adds, error) {
	inner, ok := matchOp(target.Sentence, domain.Possibility, false)
	if !ok {
		return nil, domain.NewEngineError(domain.CodeRuleApplicationFailed, "Possibility: target sentence no longer matches", nil)
	}
	w2 := target.Branch.NextWorld()
	return proof.Adds{{
		{World1: domain.WorldP(target.World), World2: domain.WorldP(w2)},
		atWorld(inner.Operands[0], w2),
	}}, nil
}

func (PossibilityRule) ExampleNodes() []domain.NodeProps {
	s, _ := domain.NewOperated(domain.Possibility, []domain.Sentence{domain.NewAtomic(0, 0)})
	return []domain.NodeProps{atWorld(s, 0)}
}

// dualRule rewrites ¬(FromOp A) directly into ToOp(¬A) (the modal De
// Morgan duals ¬□A ≡ ◇¬A and ¬◇A ≡ □¬A), at the same world, letting
// Possibility/Necessity take over from there. Unlike WorldPassthroughRule
// it only ever matches the negated shape: FromOp's positive form already
// has its own independent rule (NecessityRule/PossibilityRule) and must
// not be rewritten here too.
type dualRule struct {
	RuleName string
	FromOp   domain.Operator
	ToOp     domain.Operator
}

func (r *dualRule) Name() string    { return r.RuleName }
func (r *dualRule) Branching() bool { return false }
func (r *dualRule) Ticks() bool     { return true }

func (r *dualRule) Applies(branch *proof.Branch) []proof.Target {
	var targets []proof.Target
	for _, n := range branch.Unticked() {
		if !n.HasSentence() {
			continue
		}
		if _, ok := matchOp(n.Sentence, r.FromOp, true); !ok {
			continue
		}
		targets = append(targets, proof.Target{Branch: branch, Node: n, Sentence: n.Sentence, World: n.WorldOr(0), HasWorld: true, Rule: r.RuleName})
	}
	return targets
}

func (r *dualRule) Apply(target proof.Target) (proof.Adds, error) {
	inner, ok := matchOp(target.Sentence, r.FromOp, true)
	if !ok {
		return nil, domain.NewEngineError(domain.CodeRuleApplicationFailed, r.RuleName+": target sentence no longer matches", nil)
	}
	result, err := domain.NewOperated(r.ToOp, []domain.Sentence{domain.Negate(inner.Operands[0])})
	if err != nil {
		return nil, err
	}
	return proof.Adds{{atWorld(result, target.World)}}, nil
}

func (r *dualRule) ExampleNodes() []domain.NodeProps {
	inner, _ := domain.NewOperated(r.FromOp, []domain.Sentence{domain.NewAtomic(0, 0)})
	return []domain.NodeProps{atWorld(domain.Negate(inner), 0)}
}

var NegatedNecessity = &dualRule{RuleName: "NegatedNecessity", FromOp: domain.Necessity, ToOp: domain.Possibility}
var NegatedPossibility = &dualRule{RuleName: "NegatedPossibility", FromOp: domain.Possibility, ToOp: domain.Necessity}
