// Package cpl implements Classical Propositional Logic as the
// two-valued restriction of the shared FDE rule set: both gluts and gaps
// are forbidden, collapsing the bilattice down to {T, F} with designated
// = {T}.
package cpl

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/logics/manyvalued"
	"github.com/alethic/tableaux/internal/application/proof"
)

func init() {
	proof.Register(Logic{})
}

// Model is CPL's branch reader: {T, F}, designated = {T}.
type Model struct {
	*manyvalued.BaseModel
}

func NewModel() *Model {
	return &Model{BaseModel: manyvalued.NewBaseModel()}
}

func Designated(v manyvalued.Value) bool { return v == manyvalued.T }

func (m *Model) IsCountermodelTo(arg domain.Argument) bool {
	return m.BaseModel.IsCountermodelTo(arg, Designated)
}

// Logic is the CPL bundle.
type Logic struct{}

func (Logic) Name() string { return "CPL" }

func (Logic) Meta() proof.Meta {
	return proof.Meta{
		Category:      "Bivalent",
		Description:   "Classical Predicate Logic (propositional fragment)",
		CategoryOrder: 1,
		Tags:          []string{"bivalent", "classical"},
		NativeOps: []domain.Operator{
			domain.Assertion, domain.Negation, domain.Conjunction, domain.Disjunction,
			domain.MaterialConditional, domain.MaterialBiconditional,
		},
	}
}

func (Logic) ClosureRules() []proof.ClosureRule {
	return []proof.ClosureRule{manyvalued.DesignationClosure{}, manyvalued.GlutClosure{}, manyvalued.GapClosure{}}
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
