// Package polish implements the Polish (prefix) surface notation of
// section 4.2: strictly recursive-prefix reading, no whitespace except
// trailing, subscripts as trailing decimal digits.
package polish

import (
	"strings"
	"unicode"

	"github.com/alethic/tableaux/internal/domain"
)

const (
	atomicAlphabet   = "abcde"
	variableAlphabet = "xyzv"
	constantAlphabet = "mnos"
	predicateAlphabet = "FGHO"
)

var operatorSymbols = map[byte]domain.Operator{
	'N': domain.Negation,
	'K': domain.Conjunction,
	'A': domain.Disjunction,
	'C': domain.MaterialConditional,
	'E': domain.MaterialBiconditional,
	'U': domain.Conditional,
	'B': domain.Biconditional,
	'T': domain.Assertion,
	'M': domain.Possibility,
	'L': domain.Necessity,
}

var quantifierSymbols = map[byte]domain.Quantifier{
	'V': domain.Universal,
	'S': domain.Existential,
}

// Parser reads a single sentence from Polish-notation source text,
// threading a caller-supplied predicate store and tracking the
// ancestor-bound variable set for strict quantifier scoping.
type Parser struct {
	src   string
	pos   int
	preds *domain.PredicateStore
	bound map[boundKey]bool
}

type boundKey struct {
	index, subscript uint
}

// New returns a Parser over src, using preds to resolve predicate
// arities (system predicates I and J always resolve regardless of what
// preds contains).
func New(src string, preds *domain.PredicateStore) *Parser {
	return &Parser{src: src, preds: preds, bound: make(map[boundKey]bool)}
}

// Parse reads exactly one sentence from the parser's source, per
// section 6 Parse(notation, predicates-store, text).
func Parse(text string, preds *domain.PredicateStore) (domain.Sentence, error) {
	p := New(text, preds)
	s, err := p.parseSentence()
	if err != nil {
		return nil, err
	}
	p.skipTrailingWhitespace()
	if p.pos != len(p.src) {
		return nil, domain.NewParseError(domain.CodeUnexpectedChar, "trailing input after sentence", p.pos)
	}
	return s, nil
}

func (p *Parser) skipTrailingWhitespace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

func (p *Parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *Parser) advance() byte {
	b := p.src[p.pos]
	p.pos++
	return b
}

func (p *Parser) readSubscript() uint {
	start := p.pos
	for p.pos < len(p.src) && unicode.IsDigit(rune(p.src[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		return 0
	}
	var n uint
	for i := start; i < p.pos; i++ {
		n = n*10 + uint(p.src[i]-'0')
	}
	return n
}

func (p *Parser) parseSentence() (domain.Sentence, error) {
	b, ok := p.peek()
	if !ok {
		return nil, domain.NewParseError(domain.CodeUnexpectedEOF, "unexpected end of input", p.pos)
	}

	switch {
	case strings.IndexByte(atomicAlphabet, b) >= 0:
		idx := strings.IndexByte(atomicAlphabet, p.advance())
		sub := p.readSubscript()
		return domain.NewAtomic(uint(idx), sub), nil

	case b == 'I' || b == 'J' || strings.IndexByte(predicateAlphabet, b) >= 0:
		return p.parsePredicated()

	case b == 'V' || b == 'S':
		return p.parseQuantified()

	default:
		if op, ok := operatorSymbols[b]; ok {
			p.advance()
			return p.parseOperated(op)
		}
		return nil, domain.NewParseError(domain.CodeUnexpectedChar, "unexpected character", p.pos)
	}
}

func (p *Parser) parseOperated(op domain.Operator) (domain.Sentence, error) {
	operands := make([]domain.Sentence, op.Arity())
	for i := 0; i < op.Arity(); i++ {
		s, err := p.parseSentence()
		if err != nil {
			return nil, err
		}
		operands[i] = s
	}
	out, err := domain.NewOperated(op, operands)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Parser) parseQuantified() (domain.Sentence, error) {
	q := quantifierSymbols[p.advance()]

	vb, ok := p.peek()
	if !ok {
		return nil, domain.NewParseError(domain.CodeUnexpectedEOF, "expected variable after quantifier", p.pos)
	}
	vi := strings.IndexByte(variableAlphabet, vb)
	if vi < 0 {
		return nil, domain.NewParseError(domain.CodeUnexpectedChar, "expected variable after quantifier", p.pos)
	}
	p.advance()
	sub := p.readSubscript()
	v := domain.NewVariable(uint(vi), sub)

	key := boundKey{v.Index, v.Subscript}
	if p.bound[key] {
		return nil, domain.NewParseError(domain.CodeBoundVariable, "variable already bound by an ancestor quantifier", p.pos)
	}
	p.bound[key] = true
	body, err := p.parseSentence()
	delete(p.bound, key)
	if err != nil {
		return nil, err
	}

	return domain.NewQuantified(q, v, body), nil
}

func (p *Parser) parsePredicated() (domain.Sentence, error) {
	sym := p.advance()
	sub := p.readSubscript()

	var pred domain.Predicate
	switch sym {
	case 'I':
		pred = domain.IdentityPredicate
	case 'J':
		pred = domain.ExistencePredicate
	default:
		idx := strings.IndexByte(predicateAlphabet, sym)
		got, ok := p.preds.Get(idx, sub)
		if !ok {
			return nil, domain.NewParseError(domain.CodeUnexpectedChar, "undeclared predicate", p.pos)
		}
		pred = got
	}

	params := make([]domain.Term, pred.Arity)
	for i := 0; i < pred.Arity; i++ {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		params[i] = t
	}
	out, err := domain.NewPredicated(pred, params)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Parser) parseTerm() (domain.Term, error) {
	b, ok := p.peek()
	if !ok {
		return domain.Term{}, domain.NewParseError(domain.CodeUnexpectedEOF, "expected term", p.pos)
	}
	if ci := strings.IndexByte(constantAlphabet, b); ci >= 0 {
		p.advance()
		sub := p.readSubscript()
		return domain.NewConstant(uint(ci), sub), nil
	}
	if vi := strings.IndexByte(variableAlphabet, b); vi >= 0 {
		p.advance()
		sub := p.readSubscript()
		v := domain.NewVariable(uint(vi), sub)
		if !p.bound[boundKey{v.Index, v.Subscript}] {
			return domain.Term{}, domain.NewParseError(domain.CodeUnboundVariable, "variable used outside any binding quantifier", p.pos)
		}
		return v, nil
	}
	return domain.Term{}, domain.NewParseError(domain.CodeUnexpectedChar, "expected constant or variable", p.pos)
}
