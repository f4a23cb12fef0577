// Package fde implements First Degree Entailment: the paraconsistent,
// paracomplete four-valued logic whose designation rules and model are
// shared (section 4.6) with K3, LP and CPL through the manyvalued
// package, differing only in the one closure rule that makes this logic
// permit both gluts and gaps.
package fde

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/logics/manyvalued"
	"github.com/alethic/tableaux/internal/application/proof"
)

func init() {
	proof.Register(Logic{})
}

// Model is FDE's branch reader: the full bilattice {T, B, N, F}, with
// designated = {T, B} ("at least true").
type Model struct {
	*manyvalued.BaseModel
}

func NewModel() *Model {
	return &Model{BaseModel: manyvalued.NewBaseModel()}
}

func Designated(v manyvalued.Value) bool { return v == manyvalued.T || v == manyvalued.B }

func (m *Model) IsCountermodelTo(arg domain.Argument) bool {
	return m.BaseModel.IsCountermodelTo(arg, Designated)
}

// Logic is the FDE bundle.
type Logic struct{}

func (Logic) Name() string { return "FDE" }

func (Logic) Meta() proof.Meta {
	return proof.Meta{
		Category:      "Many-valued",
		Description:   "First Degree Entailment",
		CategoryOrder: 10,
		Tags:          []string{"many-valued", "gappy", "glutty", "paraconsistent", "paracomplete"},
		NativeOps: []domain.Operator{
			domain.Assertion, domain.Negation, domain.Conjunction, domain.Disjunction,
			domain.MaterialConditional, domain.MaterialBiconditional,
		},
	}
}

func (Logic) ClosureRules() []proof.ClosureRule {
	return []proof.ClosureRule{manyvalued.DesignationClosure{}}
}

func (Logic) RuleGroups() [][]proof.Rule {
	var group []proof.Rule
	group = append(group, manyvalued.ReductionRules...)
	for _, r := range manyvalued.BinaryRules {
		group = append(group, r)
	}
	for _, r := range manyvalued.QuantifierRules {
		group = append(group, r)
	}
	return [][]proof.Rule{group}
}

func (Logic) BuildTrunk(t *proof.Tableau, argument domain.Argument) error {
	return manyvalued.BuildTrunk(t, argument)
}

func (Logic) NewModel() proof.Model { return NewModel() }
