package tableaux

import "strings"

// CorpusEntry is one named argument in the example corpus: a logic it is
// traditionally checked against, its premises and conclusion in Polish
// notation, and a set of aliases it can be looked up by.
type CorpusEntry struct {
	Title      string
	Logic      string
	Premises   []string
	Conclusion string
	Aliases    []string
	// Predicates lists arity-1 predicate letters (F, G, H, O) this entry's
	// premises/conclusion reference; declared before parsing since Parse
	// requires predicates to be pre-declared in the store.
	Predicates []string
}

// corpus is a representative slice of the textbook arguments named in
// the original source's example bank (section 4 item 4): every named
// argument referenced by the worked examples plus a handful of other
// standard ones, not the full ~90-entry set.
var corpus = []CorpusEntry{
	{Title: "Modus Ponens", Logic: "CPL", Premises: []string{"Cab", "a"}, Conclusion: "b"},
	{Title: "Modus Tollens", Logic: "CPL", Premises: []string{"Cab", "Nb"}, Conclusion: "Na"},
	{Title: "Hypothetical Syllogism", Logic: "CPL", Premises: []string{"Cab", "Cbc"}, Conclusion: "Cac"},
	{Title: "Disjunctive Syllogism", Logic: "CPL", Premises: []string{"Aab", "Nb"}, Conclusion: "a"},
	{Title: "Addition", Logic: "FDE", Premises: []string{"a"}, Conclusion: "Aab"},
	{Title: "Simplification", Logic: "CPL", Premises: []string{"Kab"}, Conclusion: "a"},
	{Title: "Conjunction", Logic: "CPL", Premises: []string{"a", "b"}, Conclusion: "Kab"},
	{Title: "Law of Excluded Middle", Logic: "K3", Premises: nil, Conclusion: "AaNa", Aliases: []string{"LEM"}},
	{Title: "Law of Non-contradiction", Logic: "LP", Premises: nil, Conclusion: "NKaNa", Aliases: []string{"LNC"}},
	{Title: "Explosion", Logic: "CPL", Premises: []string{"a", "Na"}, Conclusion: "b", Aliases: []string{"Ex Falso Quodlibet"}},
	{Title: "Affirming a Disjunct", Logic: "CPL", Premises: []string{"Aab", "a"}, Conclusion: "b"},
	{Title: "Denying the Antecedent", Logic: "CPL", Premises: []string{"Cab", "Na"}, Conclusion: "Nb"},
	{Title: "Necessity Elimination", Logic: "T", Premises: []string{"La"}, Conclusion: "a"},
	{Title: "Necessity Distribution", Logic: "K", Premises: []string{"LCab"}, Conclusion: "CLaLb"},
	{Title: "Possibility Addition", Logic: "K", Premises: []string{"a"}, Conclusion: "Ma"},
	{Title: "Existential from Universal", Logic: "CFOL", Premises: []string{"VxFx"}, Conclusion: "SxFx", Predicates: []string{"F"}},
	{Title: "Universal from Existential", Logic: "CFOL", Premises: []string{"SxFx"}, Conclusion: "VxFx", Predicates: []string{"F"}},
	{Title: "Syllogism", Logic: "CFOL", Premises: []string{"VxCFxGx", "VxCGxHx"}, Conclusion: "VxCFxHx", Predicates: []string{"F", "G", "H"}},
	{Title: "Serial Inference", Logic: "D", Premises: nil, Conclusion: "CLaMa"},
	{Title: "Reflexive Inference", Logic: "T", Premises: nil, Conclusion: "CLaa"},
	{Title: "S4 Distribution", Logic: "S4", Premises: []string{"La"}, Conclusion: "LLa"},
	{Title: "S5 Collapse", Logic: "S5", Premises: []string{"MLa"}, Conclusion: "La"},
	{Title: "Glut Closure", Logic: "LP", Premises: []string{"a", "Na"}, Conclusion: "b", Aliases: []string{"LP Explosion Failure"}},
	{Title: "Gap Closure", Logic: "K3", Premises: []string{"Aab", "Na", "Nb"}, Conclusion: "c"},
	{Title: "FDE Non-explosion", Logic: "FDE", Premises: []string{"a", "Na"}, Conclusion: "b"},
	{Title: "Material Conditional Paradox", Logic: "CPL", Premises: []string{"Na"}, Conclusion: "Cab"},
	{Title: "De Morgan Conjunction", Logic: "CPL", Premises: []string{"NKab"}, Conclusion: "ANaNb"},
	{Title: "De Morgan Disjunction", Logic: "CPL", Premises: []string{"NAab"}, Conclusion: "KNaNb"},
	{Title: "Contraposition", Logic: "CPL", Premises: []string{"Cab"}, Conclusion: "CNbNa"},
	{Title: "Double Negation", Logic: "CPL", Premises: []string{"NNa"}, Conclusion: "a"},
}

func normalizeAlias(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// Lookup finds a corpus entry by title or alias, case-insensitive and
// whitespace-stripped, per section 6's lookup contract.
func Lookup(name string) (CorpusEntry, bool) {
	key := normalizeAlias(name)
	for _, e := range corpus {
		if normalizeAlias(e.Title) == key {
			return e, true
		}
		for _, a := range e.Aliases {
			if normalizeAlias(a) == key {
				return e, true
			}
		}
	}
	return CorpusEntry{}, false
}

// CorpusEntries returns every entry in the example corpus.
func CorpusEntries() []CorpusEntry {
	out := make([]CorpusEntry, len(corpus))
	copy(out, corpus)
	return out
}

// Argument declares e's predicates in preds, then parses e's premises
// and conclusion in Polish notation, returning an Argument ready for
// BuildTableau with e.Logic.
func (e CorpusEntry) Argument(preds *PredicateStore) (Argument, error) {
	for _, name := range e.Predicates {
		idx := strings.IndexByte("FGHO", name[0])
		if _, err := preds.Declare(idx, 0, name, 1); err != nil {
			return Argument{}, err
		}
	}
	return ParseArgument(Polish, preds, e.Premises, e.Conclusion, e.Title)
}
