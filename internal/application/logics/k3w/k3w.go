// Package k3w implements Weak (Bochvar Internal) Kleene logic. Its rule
// engine and closure rules are identical to K3's: a tableau rule only
// ever decomposes a "designated"/"undesignated" node into literal
// assertions, and "undesignated" already covers both the F and N
// weak-Kleene cases at the literal level, so the branch-construction
// rules don't need to distinguish strong from weak conjunction/
// disjunction (the distinction only shows up when recursively computing
// a compound sentence's *value* from its literals, not when deciding
// whether to add or split a branch). Only the Model differs: N is
// contagious through conjunction and disjunction here, where K3 treats N
// the same as B's absence in the bilattice tables.
package k3w

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/logics/k3"
	"github.com/alethic/tableaux/internal/application/logics/manyvalued"
	"github.com/alethic/tableaux/internal/application/proof"
)

func init() {
	proof.Register(Logic{})
}

// Model is K3W's branch reader: {T, N, F}, designated = {T}, with weak
// (contagious-N) conjunction and disjunction.
type Model struct {
	*manyvalued.BaseModel
}

func NewModel() *Model {
	m := &Model{BaseModel: manyvalued.NewBaseModel()}
	m.Conjoin = manyvalued.WeakConjoin
	m.Disjoin = manyvalued.WeakDisjoin
	return m
}

func (m *Model) IsCountermodelTo(arg domain.Argument) bool {
	return m.BaseModel.IsCountermodelTo(arg, k3.Designated)
}

// Logic is the K3W bundle: K3's closure and rule groups verbatim, this
// package's weak Model.
type Logic struct{}

func (Logic) Name() string { return "K3W" }

func (Logic) Meta() proof.Meta {
	meta := k3.Logic{}.Meta()
	meta.Description = "Weak Kleene Logic"
	meta.CategoryOrder = 21
	meta.Tags = []string{"many-valued", "gappy", "paracomplete", "weak"}
	return meta
}

func (Logic) ClosureRules() []proof.ClosureRule { return k3.Logic{}.ClosureRules() }
func (Logic) RuleGroups() [][]proof.Rule        { return k3.Logic{}.RuleGroups() }

func (Logic) BuildTrunk(t *proof.Tableau, argument domain.Argument) error {
	return manyvalued.BuildTrunk(t, argument)
}

func (Logic) NewModel() proof.Model { return NewModel() }
