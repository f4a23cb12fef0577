package domain

// Argument groups an ordered sequence of premises and a conclusion,
// optionally named. Arguments are immutable once built.
type Argument struct {
	Premises   []Sentence
	Conclusion Sentence
	Title      string
}

// NewArgument builds an Argument from premises and a conclusion.
func NewArgument(premises []Sentence, conclusion Sentence, title string) Argument {
	cp := make([]Sentence, len(premises))
	copy(cp, premises)
	return Argument{Premises: cp, Conclusion: conclusion, Title: title}
}
