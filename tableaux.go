// Package tableaux is the public facade over the analytic-tableaux
// proof engine: parse sentences and arguments in either surface
// notation, look up a registered logic, and build a tableau.
package tableaux

import (
	"github.com/alethic/tableaux/internal/application/parser/polish"
	"github.com/alethic/tableaux/internal/application/parser/standard"
	"github.com/alethic/tableaux/internal/application/proof"
	"github.com/alethic/tableaux/internal/domain"

	_ "github.com/alethic/tableaux/internal/application/logics/cfol"
	_ "github.com/alethic/tableaux/internal/application/logics/cpl"
	_ "github.com/alethic/tableaux/internal/application/logics/fde"
	_ "github.com/alethic/tableaux/internal/application/logics/k3"
	_ "github.com/alethic/tableaux/internal/application/logics/k3w"
	_ "github.com/alethic/tableaux/internal/application/logics/lp"
	_ "github.com/alethic/tableaux/internal/application/logics/modal/d"
	_ "github.com/alethic/tableaux/internal/application/logics/modal/k"
	_ "github.com/alethic/tableaux/internal/application/logics/modal/s4"
	_ "github.com/alethic/tableaux/internal/application/logics/modal/s5"
	_ "github.com/alethic/tableaux/internal/application/logics/modal/t"
)

// Notation selects a surface syntax for Parse/ParseArgument.
type Notation int

const (
	Polish Notation = iota
	Standard
)

// Type aliases re-exporting the domain/proof model through the facade,
// per section 6's external interfaces.
type (
	Sentence       = domain.Sentence
	Argument       = domain.Argument
	PredicateStore = domain.PredicateStore
	Tableau        = proof.Tableau
	Options        = proof.Options
	Stats          = proof.Stats
	Logic          = proof.Logic
	TreeNode       = proof.TreeNode
)

// NewPredicateStore returns an empty predicate store, threaded through
// Parse/ParseArgument so unrelated parses never share predicate state.
func NewPredicateStore() *PredicateStore {
	return domain.NewPredicateStore()
}

// DefaultOptions returns the engine's built-in tableau-construction
// defaults.
func DefaultOptions() Options {
	return proof.DefaultOptions()
}

// LogicNames lists every registered logic's name.
func LogicNames() []string {
	return proof.Names()
}

func parseText(n Notation, preds *PredicateStore, text string) (Sentence, error) {
	if n == Standard {
		return standard.Parse(text, preds)
	}
	return polish.Parse(text, preds)
}

// Parse parses a single sentence in the given notation.
func Parse(n Notation, preds *PredicateStore, text string) (Sentence, error) {
	return parseText(n, preds, text)
}

// ParseArgument parses premises and a conclusion in the given notation
// into an Argument, threading one shared predicate store across all of
// them so a predicate declared in a premise is visible in the
// conclusion.
func ParseArgument(n Notation, preds *PredicateStore, premises []string, conclusion string, title string) (Argument, error) {
	ps := make([]Sentence, 0, len(premises))
	for _, p := range premises {
		s, err := parseText(n, preds, p)
		if err != nil {
			return Argument{}, err
		}
		ps = append(ps, s)
	}
	c, err := parseText(n, preds, conclusion)
	if err != nil {
		return Argument{}, err
	}
	return domain.NewArgument(ps, c, title), nil
}

// BuildTableau looks up logicName, opens a tableau for argument, runs it
// to completion, and returns it.
func BuildTableau(logicName string, argument Argument, options Options) (*Tableau, error) {
	logic, err := proof.Lookup(logicName)
	if err != nil {
		return nil, err
	}
	t, err := proof.Open(logic, argument, options)
	if err != nil {
		return nil, err
	}
	if err := t.Build(); err != nil {
		return nil, err
	}
	return t, nil
}
