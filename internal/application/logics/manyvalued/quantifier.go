package manyvalued

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/proof"
)

// QuantifierRule handles one (quantifier, negated, designated) combination.
// Fresh rules introduce one new witness constant and tick their source
// node ("there exists a witness" reading); non-fresh rules instantiate
// every constant currently on the branch (and at least one fresh one if
// the branch has none yet) without ticking, since a later-introduced
// constant must also be covered ("holds for every constant" reading).
type QuantifierRule struct {
	RuleName   string
	Quantifier domain.Quantifier
	Negated    bool
	Designated bool
	Fresh      bool
}

func (r *QuantifierRule) Name() string    { return r.RuleName }
func (r *QuantifierRule) Branching() bool { return false }
func (r *QuantifierRule) Ticks() bool     { return r.Fresh }

func (r *QuantifierRule) Applies(branch *proof.Branch) []proof.Target {
	var targets []proof.Target
	for _, n := range branch.Nodes() {
		if !n.HasSentence() || !designatedMatches(n, r.Designated) {
			continue
		}
		if _, ok := matchQuant(n.Sentence, r.Quantifier, r.Negated); !ok {
			continue
		}
		if r.Fresh {
			if branch.IsTicked(n) {
				continue
			}
			targets = append(targets, proof.Target{Branch: branch, Node: n, Sentence: n.Sentence, Designated: n.Designated, Rule: r.RuleName})
			continue
		}
		consts := branch.Constants()
		if len(consts) == 0 {
			consts = []domain.Term{branch.NewConstant()}
		}
		for _, c := range consts {
			if branch.QuantifierInstantiated(r.RuleName, n.ID(), c) {
				continue
			}
			targets = append(targets, proof.Target{
				Branch: branch, Node: n, Sentence: n.Sentence, Designated: n.Designated,
				Constant: c, HasConstant: true, Rule: r.RuleName,
			})
		}
	}
	return targets
}

func (r *QuantifierRule) Apply(target proof.Target) (proof.Adds, error) {
	q, ok := matchQuant(target.Sentence, r.Quantifier, r.Negated)
	if !ok {
		return nil, domain.NewEngineError(domain.CodeRuleApplicationFailed, r.RuleName+": target sentence no longer matches", nil)
	}
	var c domain.Term
	if r.Fresh {
		c = target.Branch.NewConstant()
	} else {
		c = target.Constant
		target.Branch.MarkQuantifierInstantiated(r.RuleName, target.Node.ID(), c)
	}
	body := domain.Substitute(q.Body, q.Variable, c)
	if r.Negated {
		body = domain.Negate(body)
	}
	return proof.Adds{{node(body, r.Designated)}}, nil
}

func (r *QuantifierRule) ExampleNodes() []domain.NodeProps {
	s := domain.FirstQuantified(r.Quantifier)
	if r.Negated {
		s = domain.Negate(s)
	}
	d := r.Designated
	return []domain.NodeProps{{Sentence: s, Designated: &d}}
}

// designated(∀xA) iff every instance is designated (non-fresh: must
// cover every constant, present and future). undesignated(∀xA) iff some
// instance is undesignated (fresh: one witness suffices). Negated
// variants push the negation onto the body via ¬∀xA ≡ ∃x¬A and
// ¬∃xA ≡ ∀x¬A, keeping the same fresh/non-fresh split as the quantifier
// their De Morgan dual corresponds to.

var UniversalDesignated = &QuantifierRule{
	RuleName: "UniversalDesignated", Quantifier: domain.Universal, Designated: true, Fresh: false,
}
var UniversalUndesignated = &QuantifierRule{
	RuleName: "UniversalUndesignated", Quantifier: domain.Universal, Designated: false, Fresh: true,
}
var UniversalNegatedDesignated = &QuantifierRule{
	RuleName: "UniversalNegatedDesignated", Quantifier: domain.Universal, Negated: true, Designated: true, Fresh: true,
}
var UniversalNegatedUndesignated = &QuantifierRule{
	RuleName: "UniversalNegatedUndesignated", Quantifier: domain.Universal, Negated: true, Designated: false, Fresh: false,
}
var ExistentialDesignated = &QuantifierRule{
	RuleName: "ExistentialDesignated", Quantifier: domain.Existential, Designated: true, Fresh: true,
}
var ExistentialUndesignated = &QuantifierRule{
	RuleName: "ExistentialUndesignated", Quantifier: domain.Existential, Designated: false, Fresh: false,
}
var ExistentialNegatedDesignated = &QuantifierRule{
	RuleName: "ExistentialNegatedDesignated", Quantifier: domain.Existential, Negated: true, Designated: true, Fresh: false,
}
var ExistentialNegatedUndesignated = &QuantifierRule{
	RuleName: "ExistentialNegatedUndesignated", Quantifier: domain.Existential, Negated: true, Designated: false, Fresh: true,
}

// QuantifierRules lists every quantifier rule, fresh-witness rules first
// (they terminate on their own via ticking; the "for every constant"
// rules are listed last since they may keep producing new targets as
// fresh constants appear).
var QuantifierRules = []*QuantifierRule{
	ExistentialDesignated, UniversalNegatedDesignated, ExistentialNegatedUndesignated, UniversalUndesignated,
	UniversalDesignated, ExistentialUndesignated, ExistentialNegatedDesignated, UniversalNegatedUndesignated,
}
