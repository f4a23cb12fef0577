// Package d implements modal logic D: K plus seriality (every world has
// at least one accessible world).
package d

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/logics/modal"
	"github.com/alethic/tableaux/internal/application/logics/modal/k"
	"github.com/alethic/tableaux/internal/application/proof"
)

func init() {
	proof.Register(Logic{})
}

// Logic is the D bundle.
type Logic struct{}

func (Logic) Name() string { return "D" }

func (Logic) Meta() proof.Meta {
	m := k.Logic{}.Meta()
	m.Description = "Deontic Modal Logic"
	return m
}

func (Logic) ClosureRules() []proof.ClosureRule {
	return k.Logic{}.ClosureRules()
}

func (Logic) RuleGroups() [][]proof.Rule {
	groups := k.Logic{}.RuleGroups()
	return append(groups, []proof.Rule{modal.SerialRule{}})
}

func (Logic) BuildTrunk(t *proof.Tableau, argument domain.Argument) error {
	return k.Logic{}.BuildTrunk(t, argument)
}

func (Logic) NewModel() proof.Model { return k.Logic{}.NewModel() }
