package manyvalued

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/proof"
)

// BuildTrunk seeds the tableau's root branch with each premise as a
// designated node and the conclusion as an undesignated node (section
// 4.3's default trunk-construction recipe for non-modal logics).
func BuildTrunk(t *proof.Tableau, argument domain.Argument) error {
	root := t.Root()
	for _, p := range argument.Premises {
		if err := t.AddNode(root, node(p, true)); err != nil {
			return err
		}
	}
	return t.AddNode(root, node(argument.Conclusion, false))
}
