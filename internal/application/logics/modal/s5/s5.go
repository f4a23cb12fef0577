// Package s5 implements modal logic S5: K plus reflexivity, symmetry and
// transitivity (accessibility is an equivalence relation).
package s5

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/logics/modal"
	"github.com/alethic/tableaux/internal/application/logics/modal/k"
	"github.com/alethic/tableaux/internal/application/proof"
)

func init() {
	proof.Register(Logic{})
}

// Logic is the S5 bundle.
type Logic struct{}

func (Logic) Name() string { return "S5" }

func (Logic) Meta() proof.Meta {
	m := k.Logic{}.Meta()
	m.Description = "Equivalence Modal Logic"
	return m
}

func (Logic) ClosureRules() []proof.ClosureRule {
	return k.Logic{}.ClosureRules()
}

func (Logic) RuleGroups() [][]proof.Rule {
	groups := k.Logic{}.RuleGroups()
	return append(groups, []proof.Rule{modal.ReflexiveRule{}, modal.SymmetricRule{}, modal.TransitiveRule{}})
}

func (Logic) BuildTrunk(t *proof.Tableau, argument domain.Argument) error {
	return k.Logic{}.BuildTrunk(t, argument)
}

func (Logic) NewModel() proof.Model { return k.Logic{}.NewModel() }
