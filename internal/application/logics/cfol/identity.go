package cfol

import (
	"fmt"

	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/proof"
)

// ReflexivityRule asserts Identity(c, c) designated for every constant c
// referenced on the branch, so that the indiscernibility rule always has
// a reflexive starting point to chain substitutions from. Grounded on
// the usual first-order tableau treatment of identity as a logical
// (non-eliminable) predicate rather than an ordinary one.
type ReflexivityRule struct{}

func (ReflexivityRule) Name() string    { return "Reflexivity" }
func (ReflexivityRule) Branching() bool { return false }
func (ReflexivityRule) Ticks() bool     { return false }

func identitySentence(c1, c2 domain.Term) domain.Sentence {
	s, _ := domain.NewPredicated(domain.IdentityPredicate, []domain.Term{c1, c2})
	return s
}

func (r ReflexivityRule) Applies(branch *proof.Branch) []proof.Target {
	var targets []proof.Target
	d := true
	for _, c := range branch.Constants() {
		s := identitySentence(c, c)
		key := "Reflexivity:" + s.ID()
		if branch.HasAppliedPair(key) {
			continue
		}
		targets = append(targets, proof.Target{Branch: branch, Sentence: s, Designated: &d, Rule: r.Name()})
	}
	return targets
}

func (r ReflexivityRule) Apply(target proof.Target) (proof.Adds, error) {
	key := "Reflexivity:" + target.Sentence.ID()
	target.Branch.MarkAppliedPair(key)
	d := true
	return proof.Adds{{{Sentence: target.Sentence, Designated: &d}}}, nil
}

func (ReflexivityRule) ExampleNodes() []domain.NodeProps {
	d := true
	c := domain.NewConstant(0, 0)
	return []domain.NodeProps{{Sentence: identitySentence(c, c), Designated: &d}}
}

// IndiscernibilityRule implements the indiscernibility of identicals:
// given a designated Identity(a, b) node and any other literal node
// mentioning a (or b) as a parameter, it adds the node with a and b
// swapped, so the branch can derive a contradiction when the swapped
// literal conflicts with one already present.
type IndiscernibilityRule struct{}

func (IndiscernibilityRule) Name() string    { return "Indiscernibility" }
func (IndiscernibilityRule) Branching() bool { return false }
func (IndiscernibilityRule) Ticks() bool     { return false }

func asIdentity(s domain.Sentence) (domain.Term, domain.Term, bool) {
	p, ok := domain.AsPredicated(s)
	if !ok || p.Predicate.Index != domain.IdentityPredicateIndex {
		return domain.Term{}, domain.Term{}, false
	}
	return p.Parameters[0], p.Parameters[1], true
}

func isEligibleLiteral(s domain.Sentence) (domain.PredicatedSentence, bool, bool) {
	if p, ok := domain.AsPredicated(s); ok {
		return p, false, p.Predicate.Index != domain.IdentityPredicateIndex
	}
	if op, ok := domain.AsOperated(s); ok && op.Operator == domain.Negation {
		if p, ok := domain.AsPredicated(op.Operands[0]); ok {
			return p, true, p.Predicate.Index != domain.IdentityPredicateIndex
		}
	}
	return domain.PredicatedSentence{}, false, false
}

func substituteTerm(params []domain.Term, from, to domain.Term) ([]domain.Term, bool) {
	out := make([]domain.Term, len(params))
	changed := false
	for i, t := range params {
		if t.Equal(from) {
			out[i] = to
			changed = true
		} else {
			out[i] = t
		}
	}
	return out, changed
}

func (r IndiscernibilityRule) Applies(branch *proof.Branch) []proof.Target {
	var targets []proof.Target
	for _, idNode := range branch.Nodes() {
		if !idNode.HasSentence() || idNode.Designated == nil || !*idNode.Designated {
			continue
		}
		a, b, ok := asIdentity(idNode.Sentence)
		if !ok || a.Equal(b) {
			continue
		}
		for _, litNode := range branch.Nodes() {
			if litNode == idNode || !litNode.HasSentence() {
				continue
			}
			p, negated, ok := isEligibleLiteral(litNode.Sentence)
			if !ok {
				continue
			}
			for _, pair := range [][2]domain.Term{{a, b}, {b, a}} {
				params, changed := substituteTerm(p.Parameters, pair[0], pair[1])
				if !changed {
					continue
				}
				result := rebuildLiteral(p, params, negated)
				key := fmt.Sprintf("Indiscernibility:%s|%s|%s", idNode.ID(), litNode.ID(), result.ID())
				if branch.HasAppliedPair(key) {
					continue
				}
				targets = append(targets, proof.Target{
					Branch: branch, Nodes: []*domain.Node{idNode, litNode}, Rule: r.Name(),
					Sentence: result, Designated: litNode.Designated,
				})
			}
		}
	}
	return targets
}

func rebuildLiteral(p domain.PredicatedSentence, params []domain.Term, negated bool) domain.Sentence {
	out, _ := domain.NewPredicated(p.Predicate, params)
	if negated {
		return domain.Negate(out)
	}
	return out
}

func (r IndiscernibilityRule) Apply(target proof.Target) (proof.Adds, error) {
	idNode, litNode := target.Nodes[0], target.Nodes[1]
	key := fmt.Sprintf("Indiscernibility:%s|%s|%s", idNode.ID(), litNode.ID(), target.Sentence.ID())
	target.Branch.MarkAppliedPair(key)
	out := domain.NodeProps{Sentence: target.Sentence}
	if target.Designated != nil {
		d := *target.Designated
		out.Designated = &d
	}
	return proof.Adds{{out}}, nil
}

func (IndiscernibilityRule) ExampleNodes() []domain.NodeProps {
	d := true
	a, b := domain.NewConstant(0, 0), domain.NewConstant(1, 0)
	return []domain.NodeProps{{Sentence: identitySentence(a, b), Designated: &d}}
}
