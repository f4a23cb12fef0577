// Package lp implements the Logic of Paradox: FDE plus the restriction
// that no sentence is both undesignated and its negation undesignated
// (no gaps), giving the three-valued truth set {T, B, F} with designated
// = {T, B}.
package lp

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/logics/manyvalued"
	"github.com/alethic/tableaux/internal/application/proof"
)

func init() {
	proof.Register(Logic{})
}

// Model is LP's branch reader: {T, B, F}, designated = {T, B}.
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

// Logic is the LP bundle.
type Logic struct{}

func (Logic) Name() string { return "LP" }

func (Logic) Meta() proof.Meta {
	return proof.Meta{
		Category:      "Many-valued",
		Description:   "Logic of Paradox",
		CategoryOrder: 30,
		Tags:          []string{"many-valued", "glutty", "paraconsistent"},
		NativeOps: []domain.Operator{
			domain.Assertion, domain.Negation, domain.Conjunction, domain.Disjunction,
			domain.MaterialConditional, domain.MaterialBiconditional,
		},
	}
}

func (Logic) ClosureRules() []proof.ClosureRule {
	return []proof.ClosureRule{manyvalued.DesignationClosure{}, manyvalued.GapClosure{}}
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
