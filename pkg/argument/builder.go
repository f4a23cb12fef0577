// Package argument provides a fluent builder for constructing a
// domain.Argument one premise at a time, mirroring the teacher's
// workflow-definition builder pattern.
package argument

import (
	"github.com/alethic/tableaux/internal/application/parser/polish"
	"github.com/alethic/tableaux/internal/application/parser/standard"
	"github.com/alethic/tableaux/internal/domain"
)

// Notation selects which surface syntax Premise/Conclusion parse with.
type Notation int

const (
	Polish Notation = iota
	Standard
)

// Builder accumulates premises and a conclusion, parsing each against a
// shared predicate store so predicates declared in one call are visible
// in the next.
type Builder struct {
	preds      *domain.PredicateStore
	notation   Notation
	title      string
	premises   []domain.Sentence
	conclusion domain.Sentence
	err        error
}

// New returns an empty Builder using notation n and preds (a fresh store
// if preds is nil).
func New(n Notation, preds *domain.PredicateStore) *Builder {
	if preds == nil {
		preds = domain.NewPredicateStore()
	}
	return &Builder{preds: preds, notation: n}
}

func (b *Builder) parse(text string) (domain.Sentence, error) {
	if b.notation == Standard {
		return standard.Parse(text, b.preds)
	}
	return polish.Parse(text, b.preds)
}

// Title sets the argument's title.
func (b *Builder) Title(title string) *Builder {
	b.title = title
	return b
}

// Premise parses text and appends it to the premise list.
func (b *Builder) Premise(text string) *Builder {
	if b.err != nil {
		return b
	}
	s, err := b.parse(text)
	if err != nil {
		b.err = err
		return b
	}
	b.premises = append(b.premises, s)
	return b
}

// Conclusion parses text and sets it as the argument's conclusion.
func (b *Builder) Conclusion(text string) *Builder {
	if b.err != nil {
		return b
	}
	s, err := b.parse(text)
	if err != nil {
		b.err = err
		return b
	}
	b.conclusion = s
	return b
}

// DeclarePredicate declares a predicate in the builder's predicate
// store, for use before Premise/Conclusion calls that reference it.
func (b *Builder) DeclarePredicate(index int, subscript uint, name string, arity int) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := b.preds.Declare(index, subscript, name, arity); err != nil {
		b.err = err
	}
	return b
}

// Build returns the accumulated Argument, or the first parse/declare
// error encountered.
func (b *Builder) Build() (domain.Argument, error) {
	if b.err != nil {
		return domain.Argument{}, b.err
	}
	return domain.NewArgument(b.premises, b.conclusion, b.title), nil
}

// Predicates returns the builder's predicate store, so the same store
// can be reused when constructing a related argument.
func (b *Builder) Predicates() *domain.PredicateStore {
	return b.preds
}
