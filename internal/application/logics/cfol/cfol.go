// Package cfol implements Classical First-Order Logic: CPL's {T, F}
// bilattice restriction extended with quantifiers and the Identity
// predicate, per the usual analytic-tableaux treatment of first-order
// classical logic.
package cfol

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/logics/manyvalued"
	"github.com/alethic/tableaux/internal/application/proof"
)

func init() {
	proof.Register(Logic{})
}

// Logic is the CFOL bundle.
type Logic struct{}

func (Logic) Name() string { return "CFOL" }

func (Logic) Meta() proof.Meta {
	return proof.Meta{
		Category:      "Bivalent",
		Description:   "Classical First-Order Logic",
		CategoryOrder: 1,
		Tags:          []string{"bivalent", "classical", "first-order"},
		NativeOps: []domain.Operator{
			domain.Assertion, domain.Negation, domain.Conjunction, domain.Disjunction,
			domain.MaterialConditional, domain.MaterialBiconditional,
		},
	}
}

func (Logic) ClosureRules() []proof.ClosureRule {
	return []proof.ClosureRule{manyvalued.DesignationClosure{}, manyvalued.GlutClosure{}, manyvalued.GapClosure{}}
}

// RuleGroups runs the shared propositional/quantifier decomposition rules
// first, then the identity rules, so that reflexivity/indiscernibility
// only ever operate on literals that decomposition has already exposed.
func (Logic) RuleGroups() [][]proof.Rule {
	var decomposition []proof.Rule
	decomposition = append(decomposition, manyvalued.ReductionRules...)
	for _, r := range manyvalued.BinaryRules {
		decomposition = append(decomposition, r)
	}
	for _, r := range manyvalued.QuantifierRules {
		decomposition = append(decomposition, r)
	}

	identity := []proof.Rule{ReflexivityRule{}, IndiscernibilityRule{}}

	return [][]proof.Rule{decomposition, identity}
}

func (Logic) BuildTrunk(t *proof.Tableau, argument domain.Argument) error {
	return manyvalued.BuildTrunk(t, argument)
}

func (Logic) NewModel() proof.Model { return NewModel() }
