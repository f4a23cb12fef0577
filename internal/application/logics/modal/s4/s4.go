// Package s4 implements modal logic S4: K plus reflexivity and
// transitivity.
package s4

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/logics/modal"
	"github.com/alethic/tableaux/internal/application/logics/modal/k"
	"github.com/alethic/tableaux/internal/application/proof"
)

func init() {
	proof.Register(Logic{})
}

// Logic is the S4 bundle.
type Logic struct{}

func (Logic) Name() string { return "S4" }

func (Logic) Meta() proof.Meta {
	m := k.Logic{}.Meta()
	m.Description = "Reflexive Transitive Modal Logic"
	return m
}

func (Logic) ClosureRules() []proof.ClosureRule {
	return k.Logic{}.ClosureRules()
}

func (Logic) RuleGroups() [][]proof.Rule {
	groups := k.Logic{}.RuleGroups()
	return append(groups, []proof.Rule{modal.ReflexiveRule{}, modal.TransitiveRule{}})
}

func (Logic) BuildTrunk(t *proof.Tableau, argument domain.Argument) error {
	return k.Logic{}.BuildTrunk(t, argument)
}

func (Logic) NewModel() proof.Model { return k.Logic{}.NewModel() }
