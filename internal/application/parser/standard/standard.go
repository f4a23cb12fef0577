// Package standard implements the Standard (infix) surface notation of
// section 4.2: binary operators infix inside parens, unary operators
// prefix, infix predication for predicates of arity >= 2, and outer-paren
// relaxation (the whole input's enclosing parens are optional; a failed
// parse retries once with the input wrapped in parens).
package standard

import (
	"strings"
	"unicode"

	"github.com/alethic/tableaux/internal/domain"
)

const (
	atomicAlphabet    = "ABCDE"
	variableAlphabet  = "xyzv"
	constantAlphabet  = "abcd"
	predicateAlphabet = "FGHO"
)

var unaryOps = map[byte]domain.Operator{
	'~': domain.Negation,
	'*': domain.Assertion,
	'P': domain.Possibility,
	'N': domain.Necessity,
}

// disjunctionSymbol is multi-byte UTF-8 (∨), so it is matched with
// strings.HasPrefix rather than folded into a single-byte operator map.
const disjunctionSymbol = "∨"

func isUnaryOp(b byte) bool {
	_, ok := unaryOps[b]
	return ok
}

var quantifierSymbols = map[byte]domain.Quantifier{
	'L': domain.Universal,
	'X': domain.Existential,
}

// Parser reads Standard-notation source text.
type Parser struct {
	src   string
	pos   int
	preds *domain.PredicateStore
	bound map[boundKey]bool
}

type boundKey struct {
	index, subscript uint
}

// New returns a Parser over src.
func New(src string, preds *domain.PredicateStore) *Parser {
	return &Parser{src: src, preds: preds, bound: make(map[boundKey]bool)}
}

// Parse reads exactly one sentence, retrying once with the whole input
// wrapped in parens if the first attempt fails (section 4.2: "the
// outermost pair of parens on the whole input is optional").
func Parse(text string, preds *domain.PredicateStore) (domain.Sentence, error) {
	if s, err := tryParse(text, preds); err == nil {
		return s, nil
	} else if s2, err2 := tryParse("("+text+")", preds); err2 == nil {
		return s2, nil
	} else {
		return nil, err
	}
}

func tryParse(text string, preds *domain.PredicateStore) (domain.Sentence, error) {
	p := New(text, preds)
	s, err := p.parseSentence()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	if p.pos != len(p.src) {
		return nil, domain.NewParseError(domain.CodeUnexpectedChar, "trailing input after sentence", p.pos)
	}
	return s, nil
}

func (p *Parser) skipWS() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

func (p *Parser) peek() (byte, bool) {
	p.skipWS()
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
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
	case b == '(':
		return p.parseParenthesized()

	case isUnaryOp(b):
		op := unaryOps[b]
		p.pos++
		operand, err := p.parseSentence()
		if err != nil {
			return nil, err
		}
		out, err := domain.NewOperated(op, []domain.Sentence{operand})
		if err != nil {
			return nil, err
		}
		return out, nil

	case b == 'L' || b == 'X':
		return p.parseQuantified()

	case strings.IndexByte(atomicAlphabet, b) >= 0:
		p.pos++
		idx := strings.IndexByte(atomicAlphabet, b)
		sub := p.readSubscript()
		return domain.NewAtomic(uint(idx), sub), nil

	case b == '!' || b == '=':
		return p.parsePrefixPredicated()

	case strings.IndexByte(predicateAlphabet, b) >= 0:
		return p.parsePrefixPredicated()

	case strings.IndexByte(constantAlphabet, b) >= 0 || strings.IndexByte(variableAlphabet, b) >= 0:
		return p.parseInfixPredicated()

	default:
		return nil, domain.NewParseError(domain.CodeUnexpectedChar, "unexpected character", p.pos)
	}
}

func (p *Parser) parseParenthesized() (domain.Sentence, error) {
	p.pos++ // consume '('

	left, err := p.parseSentence()
	if err != nil {
		return nil, err
	}

	op, err := p.readBinaryOperator()
	if err != nil {
		return nil, err
	}

	right, err := p.parseSentence()
	if err != nil {
		return nil, err
	}

	b, ok := p.peek()
	if !ok {
		return nil, domain.NewParseError(domain.CodeUnterminatedParen, "unterminated parenthesis", p.pos)
	}
	if b != ')' {
		if isBinaryOperatorStart(p.src, p.pos) {
			return nil, domain.NewParseError(domain.CodeUnexpectedChar, "two depth-one binary operators in one parenthetical", p.pos)
		}
		return nil, domain.NewParseError(domain.CodeUnterminatedParen, "expected ')'", p.pos)
	}
	p.pos++ // consume ')'

	out, err := domain.NewOperated(op, []domain.Sentence{left, right})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// 'V' is accepted alongside the canonical '∨' as an ASCII-safe spelling
// of Disjunction (section 8's worked Standard-notation example writes
// the operator as plain "V"); 'V' is otherwise unused in Standard.
func isBinaryOperatorStart(src string, pos int) bool {
	if pos >= len(src) {
		return false
	}
	if strings.HasPrefix(src[pos:], disjunctionSymbol) {
		return true
	}
	switch src[pos] {
	case '&', 'V', '>', '<', '$', '%':
		return true
	default:
		return false
	}
}

func (p *Parser) readBinaryOperator() (domain.Operator, error) {
	p.skipWS()
	if strings.HasPrefix(p.src[p.pos:], disjunctionSymbol) {
		p.pos += len(disjunctionSymbol)
		return domain.Disjunction, nil
	}
	if p.pos >= len(p.src) {
		return 0, domain.NewParseError(domain.CodeUnexpectedEOF, "expected binary operator", p.pos)
	}
	switch p.src[p.pos] {
	case '&':
		p.pos++
		return domain.Conjunction, nil
	case 'V':
		p.pos++
		return domain.Disjunction, nil
	case '>':
		p.pos++
		return domain.MaterialConditional, nil
	case '<':
		p.pos++
		return domain.MaterialBiconditional, nil
	case '$':
		p.pos++
		return domain.Conditional, nil
	case '%':
		p.pos++
		return domain.Biconditional, nil
	default:
		return 0, domain.NewParseError(domain.CodeUnexpectedChar, "expected binary operator", p.pos)
	}
}

func (p *Parser) parseQuantified() (domain.Sentence, error) {
	sym := p.src[p.pos]
	p.pos++
	q := quantifierSymbols[sym]

	vb, ok := p.peek()
	if !ok {
		return nil, domain.NewParseError(domain.CodeUnexpectedEOF, "expected variable after quantifier", p.pos)
	}
	vi := strings.IndexByte(variableAlphabet, vb)
	if vi < 0 {
		return nil, domain.NewParseError(domain.CodeUnexpectedChar, "expected variable after quantifier", p.pos)
	}
	p.pos++
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

// parsePrefixPredicated handles the predicate-symbol-leads form: the
// symbol (or '=' / '!' for the system predicates) leads, followed by
// exactly arity terms in order (section 8's "=xy" for Identity(x,y)).
// Arity-1 predicates only ever appear in this form; arity >= 2
// predicates may appear this way or via parseInfixPredicated.
func (p *Parser) parsePrefixPredicated() (domain.Sentence, error) {
	sym := p.src[p.pos]
	p.pos++
	sub := p.readSubscript()

	pred, err := p.resolvePredicate(sym, sub)
	if err != nil {
		return nil, err
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

// parseInfixPredicated handles arity >= 2 predication: a term precedes
// the predicate symbol, and the remaining (arity-1) terms follow it
// prefix-style (section 4.2 "a = b" / "a = b c").
func (p *Parser) parseInfixPredicated() (domain.Sentence, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	b, ok := p.peek()
	if !ok {
		return nil, domain.NewParseError(domain.CodeUnexpectedEOF, "expected predicate symbol", p.pos)
	}
	var sym byte
	if b == '=' {
		sym = '='
		p.pos++
	} else if strings.IndexByte(predicateAlphabet, b) >= 0 {
		sym = b
		p.pos++
	} else {
		return nil, domain.NewParseError(domain.CodeUnexpectedChar, "expected predicate symbol", p.pos)
	}
	sub := p.readSubscript()

	pred, err := p.resolvePredicate(sym, sub)
	if err != nil {
		return nil, err
	}
	if pred.Arity < 2 {
		return nil, domain.NewParseError(domain.CodeUnexpectedChar, "arity-1 predicate used in infix position", p.pos)
	}

	params := make([]domain.Term, pred.Arity)
	params[0] = first
	for i := 1; i < pred.Arity; i++ {
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

func (p *Parser) resolvePredicate(sym byte, sub uint) (domain.Predicate, error) {
	switch sym {
	case '=':
		return domain.IdentityPredicate, nil
	case '!':
		return domain.ExistencePredicate, nil
	default:
		idx := strings.IndexByte(predicateAlphabet, sym)
		got, ok := p.preds.Get(idx, sub)
		if !ok {
			return domain.Predicate{}, domain.NewParseError(domain.CodeUnexpectedChar, "undeclared predicate", p.pos)
		}
		return got, nil
	}
}

func (p *Parser) parseTerm() (domain.Term, error) {
	b, ok := p.peek()
	if !ok {
		return domain.Term{}, domain.NewParseError(domain.CodeUnexpectedEOF, "expected term", p.pos)
	}
	if ci := strings.IndexByte(constantAlphabet, b); ci >= 0 {
		p.pos++
		sub := p.readSubscript()
		return domain.NewConstant(uint(ci), sub), nil
	}
	if vi := strings.IndexByte(variableAlphabet, b); vi >= 0 {
		p.pos++
		sub := p.readSubscript()
		v := domain.NewVariable(uint(vi), sub)
		if !p.bound[boundKey{v.Index, v.Subscript}] {
			return domain.Term{}, domain.NewParseError(domain.CodeUnboundVariable, "variable used outside any binding quantifier", p.pos)
		}
		return v, nil
	}
	return domain.Term{}, domain.NewParseError(domain.CodeUnexpectedChar, "expected constant or variable", p.pos)
}
