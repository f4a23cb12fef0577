package domain

// Constants returns every distinct Constant term appearing in s, in a
// deterministic order (first occurrence, depth-first left-to-right).
// Used by branches to track the domain of constants referenced (section
// 3 "a set of constants referenced") and by quantifier rules to pick a
// fresh instantiating constant.
func Constants(s Sentence) []Term {
	seen := make(map[Term]bool)
	var out []Term
	var visit func(Sentence)
	visit = func(s Sentence) {
		switch v := s.(type) {
		case PredicatedSentence:
			for _, t := range v.Parameters {
				if t.IsConstant() && !seen[t] {
					seen[t] = true
					out = append(out, t)
				}
			}
		case QuantifiedSentence:
			visit(v.Body)
		case OperatedSentence:
			for _, o := range v.Operands {
				visit(o)
			}
		}
	}
	visit(s)
	return out
}

// Substitute returns a new sentence with every free occurrence of from
// replaced by to. Used by quantifier rules to instantiate a bound
// variable with a constant.
func Substitute(s Sentence, from, to Term) Sentence {
	switch v := s.(type) {
	case AtomicSentence:
		return v
	case PredicatedSentence:
		params := make([]Term, len(v.Parameters))
		changed := false
		for i, t := range v.Parameters {
			if t.Equal(from) {
				params[i] = to
				changed = true
			} else {
				params[i] = t
			}
		}
		if !changed {
			return v
		}
		out, _ := NewPredicated(v.Predicate, params)
		return out
	case QuantifiedSentence:
		if v.Variable.Equal(from) {
			// from is rebound here; nothing deeper is free w.r.t. it.
			return v
		}
		return NewQuantified(v.Quantifier, v.Variable, Substitute(v.Body, from, to))
	case OperatedSentence:
		operands := make([]Sentence, len(v.Operands))
		for i, o := range v.Operands {
			operands[i] = Substitute(o, from, to)
		}
		out, _ := NewOperated(v.Operator, operands)
		return out
	default:
		return s
	}
}
