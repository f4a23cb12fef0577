// Package modal holds the world-indexed rule bodies shared by every
// accessibility-relation logic bundle (K, D, T, S4, S5): unlike the
// designation-based manyvalued package, modal tableaux assert a
// sentence as simply true at a world, with negation carried in the
// sentence itself (section 4.6's "modal logics carry a frame ... read
// from world1/world2 nodes"), matching the single-sided tableau style of
// the original K implementation that D (and by extension every other
// modal bundle) subclasses.
package modal

import "github.com/alethic/tableaux/internal/domain"

// matchOp reports whether s is Operated(op, ...) (negated=false) or
// Negation(Operated(op, ...)) (negated=true), returning the inner
// operated sentence. Shared by the propositional binary rules and the
// Possibility/Necessity rules alike, since both are single-operand or
// two-operand Operated sentences matched the same way.
func matchOp(s domain.Sentence, op domain.Operator, negated bool) (domain.OperatedSentence, bool) {
	if negated {
		outer, ok := domain.AsOperated(s)
		if !ok || outer.Operator != domain.Negation {
			return domain.OperatedSentence{}, false
		}
		inner, ok2 := domain.AsOperated(outer.Operands[0])
		if !ok2 || inner.Operator != op {
			return domain.OperatedSentence{}, false
		}
		return inner, true
	}
	inner, ok := domain.AsOperated(s)
	if !ok || inner.Operator != op {
		return domain.OperatedSentence{}, false
	}
	return inner, true
}

func atWorld(s domain.Sentence, world int) domain.NodeProps {
	return domain.NodeProps{Sentence: s, World: domain.WorldP(world)}
}
