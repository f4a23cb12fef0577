// Package k implements the base normal modal logic K: no constraint on
// the accessibility relation at all.
package k

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/logics/modal"
	"github.com/alethic/tableaux/internal/application/proof"
)

func init() {
	proof.Register(Logic{})
}

func decomposition() []proof.Rule {
	var group []proof.Rule
	group = append(group, modal.ReductionRules...)
	for _, r := range modal.BinaryRules {
		group = append(group, r)
	}
	group = append(group, modal.PossibilityRule{}, modal.NecessityRule{}, modal.NegatedNecessity, modal.NegatedPossibility)
	return group
}

// Logic is the K bundle.
type Logic struct{}

func (Logic) Name() string { return "K" }

func (Logic) Meta() proof.Meta {
	return proof.Meta{
		Category:      "Modal",
		Description:   "Normal Modal Logic",
		CategoryOrder: 40,
		Tags:          []string{"modal"},
		NativeOps: []domain.Operator{
			domain.Assertion, domain.Negation, domain.Conjunction, domain.Disjunction,
			domain.MaterialConditional, domain.MaterialBiconditional, domain.Possibility, domain.Necessity,
		},
	}
}

func (Logic) ClosureRules() []proof.ClosureRule {
	return []proof.ClosureRule{modal.ContradictionClosure{}}
}

func (Logic) RuleGroups() [][]proof.Rule {
	return [][]proof.Rule{decomposition()}
}

func (Logic) BuildTrunk(t *proof.Tableau, argument domain.Argument) error {
	return modal.BuildTrunk(t, argument)
}

func (Logic) NewModel() proof.Model { return modal.NewModel() }
