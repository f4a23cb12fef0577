package modal

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/proof"
)

type worldSentenceKey struct {
	sentenceID string
	world      int
}

// ContradictionClosure closes a branch the moment some sentence and its
// negation are both asserted at the same world (the modal analog of
// manyvalued's DesignationClosure; modal nodes carry no designated flag,
// so the contradiction is between a sentence and Negate(sentence)
// directly, per original K's "Closure" rule).
type ContradictionClosure struct{}

func (ContradictionClosure) Name() string { return "ContradictionClosure" }

func (ContradictionClosure) Applies(branch *proof.Branch) (proof.Target, bool) {
	seen := make(map[worldSentenceKey]bool)
	for _, n := range branch.Nodes() {
		if !n.HasSentence() {
			continue
		}
		key := worldSentenceKey{n.Sentence.ID(), n.WorldOr(0)}
		seen[key] = true
		negKey := worldSentenceKey{domain.Negate(n.Sentence).ID(), n.WorldOr(0)}
		if seen[negKey] {
			return proof.Target{Branch: branch, Sentence: n.Sentence, World: key.world, HasWorld: true}, true
		}
		if op, ok := domain.AsOperated(n.Sentence); ok && op.Operator == domain.Negation {
			if seen[worldSentenceKey{op.Operands[0].ID(), key.world}] {
				return proof.Target{Branch: branch, Sentence: op.Operands[0], World: key.world, HasWorld: true}, true
			}
		}
	}
	return proof.Target{}, false
}
