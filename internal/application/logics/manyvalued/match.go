// Package manyvalued holds the operator and quantifier rule bodies shared
// by every designation-based logic bundle (CPL, K3, FDE, LP): the truth
// conditions below are derived from Belnap's bilattice meet/join/negation
// tables and specialize correctly down to the two-valued case, so one
// rule set serves all four logics; only the closure rules and the Model
// differ per logic (section 4.6, and the original's b3e.py showing
// concrete logics subclassing and reusing another logic's rule classes
// wholesale).
package manyvalued

import "github.com/alethic/tableaux/internal/domain"

// matchBinary reports whether s is Operated(op, ...) (negated=false) or
// Negation(Operated(op, ...)) (negated=true), returning the inner
// operated sentence.
func matchBinary(s domain.Sentence, op domain.Operator, negated bool) (domain.OperatedSentence, bool) {
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

// matchQuant reports whether s is Quantified(q, ...) (negated=false) or
// Negation(Quantified(q, ...)) (negated=true), returning the inner
// quantified sentence.
func matchQuant(s domain.Sentence, q domain.Quantifier, negated bool) (domain.QuantifiedSentence, bool) {
	if negated {
		outer, ok := domain.AsOperated(s)
		if !ok || outer.Operator != domain.Negation {
			return domain.QuantifiedSentence{}, false
		}
		inner, ok2 := domain.AsQuantified(outer.Operands[0])
		if !ok2 || inner.Quantifier != q {
			return domain.QuantifiedSentence{}, false
		}
		return inner, true
	}
	inner, ok := domain.AsQuantified(s)
	if !ok || inner.Quantifier != q {
		return domain.QuantifiedSentence{}, false
	}
	return inner, true
}

func designatedMatches(n *domain.Node, want bool) bool {
	return n.Designated != nil && *n.Designated == want
}
