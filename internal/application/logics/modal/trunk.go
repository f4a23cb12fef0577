package modal

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/proof"
)

// BuildTrunk seeds world 0 with every premise asserted true and the
// conclusion's negation asserted true (section 4.3: "for modal logics
// [build_trunk] additionally seeds world 0 and attaches worlds to all
// nodes"). Modal tableaux are single-sided (no designated flag), so
// refuting the argument means asserting ¬conclusion rather than adding
// conclusion as undesignated.
func BuildTrunk(t *proof.Tableau, argument domain.Argument) error {
	root := t.Root()
	for _, p := range argument.Premises {
		if err := t.AddNode(root, atWorld(p, 0)); err != nil {
			return err
		}
	}
	return t.AddNode(root, atWorld(domain.Negate(argument.Conclusion), 0))
}
