// Package k3 implements Strong Kleene logic: FDE plus the restriction
// that no sentence is both designated and its negation designated (no
// gluts), giving the three-valued truth set {T, N, F} with designated =
// {T}.
package k3

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/logics/manyvalued"
	"github.com/alethic/tableaux/internal/application/proof"
)

func init() {
	proof.Register(Logic{})
}

// Model is K3's branch reader: {T, N, F}, designated = {T}.
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

// Logic is the K3 bundle.
type Logic struct{}

func (Logic) Name() string { return "K3" }

func (Logic) Meta() proof.Meta {
	return proof.Meta{
		Category:      "Many-valued",
		Description:   "Strong Kleene Logic",
		CategoryOrder: 20,
		Tags:          []string{"many-valued", "gappy", "paracomplete"},
		NativeOps: []domain.Operator{
			domain.Assertion, domain.Negation, domain.Conjunction, domain.Disjunction,
			domain.MaterialConditional, domain.MaterialBiconditional,
		},
	}
}

func (Logic) ClosureRules() []proof.ClosureRule {
	return []proof.ClosureRule{manyvalued.DesignationClosure{}, manyvalued.GlutClosure{}}
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
