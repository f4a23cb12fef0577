package standard

import (
	"fmt"
	"strings"

	"github.com/alethic/tableaux/internal/domain"
)

var unaryOpSymbolOf = func() map[domain.Operator]byte {
	m := make(map[domain.Operator]byte, len(unaryOps))
	for sym, op := range unaryOps {
		m[op] = sym
	}
	return m
}()

var quantifierSymbolOf = func() map[domain.Quantifier]byte {
	m := make(map[domain.Quantifier]byte, len(quantifierSymbols))
	for sym, q := range quantifierSymbols {
		m[q] = sym
	}
	return m
}()

// Write renders s back into Standard notation. Binary operator nodes are
// always fully parenthesized, so Write(Parse(Write(s))) = s up to the
// outer-paren relaxation described in section 4.2.
func Write(s domain.Sentence, preds *domain.PredicateStore) (string, error) {
	var b strings.Builder
	if err := write(&b, s, preds); err != nil {
		return "", err
	}
	return b.String(), nil
}

func write(b *strings.Builder, s domain.Sentence, preds *domain.PredicateStore) error {
	switch v := s.(type) {
	case domain.AtomicSentence:
		b.WriteByte(atomicAlphabet[v.Index])
		writeSubscript(b, v.Subscript)
		return nil

	case domain.PredicatedSentence:
		return writePredicated(b, v, preds)

	case domain.QuantifiedSentence:
		b.WriteByte(quantifierSymbolOf[v.Quantifier])
		b.WriteByte(variableAlphabet[v.Variable.Index])
		writeSubscript(b, v.Variable.Subscript)
		return write(b, v.Body, preds)

	case domain.OperatedSentence:
		if v.Operator.Arity() == 1 {
			sym, ok := unaryOpSymbolOf[v.Operator]
			if !ok {
				return domain.NewError(domain.ErrKindConfig, domain.CodeValueConflict, "unknown unary operator", nil)
			}
			b.WriteByte(sym)
			return write(b, v.Operands[0], preds)
		}

		sym, err := binarySymbol(v.Operator)
		if err != nil {
			return err
		}
		b.WriteByte('(')
		if err := write(b, v.Operands[0], preds); err != nil {
			return err
		}
		b.WriteString(sym)
		if err := write(b, v.Operands[1], preds); err != nil {
			return err
		}
		b.WriteByte(')')
		return nil

	default:
		return domain.NewError(domain.ErrKindConfig, domain.CodeValueConflict, "unknown sentence variant", nil)
	}
}

func binarySymbol(op domain.Operator) (string, error) {
	switch op {
	case domain.Conjunction:
		return "&", nil
	case domain.Disjunction:
		return disjunctionSymbol, nil
	case domain.MaterialConditional:
		return ">", nil
	case domain.MaterialBiconditional:
		return "<", nil
	case domain.Conditional:
		return "$", nil
	case domain.Biconditional:
		return "%", nil
	default:
		return "", domain.NewError(domain.ErrKindConfig, domain.CodeValueConflict, "unknown binary operator", nil)
	}
}

func writePredicated(b *strings.Builder, v domain.PredicatedSentence, preds *domain.PredicateStore) error {
	if v.Predicate.Arity == 1 {
		sym, err := predicateSymbol(v.Predicate)
		if err != nil {
			return err
		}
		b.WriteString(sym)
		writeSubscript(b, v.Predicate.Subscript)
		writeTerm(b, v.Parameters[0])
		return nil
	}

	writeTerm(b, v.Parameters[0])
	sym, err := predicateSymbol(v.Predicate)
	if err != nil {
		return err
	}
	b.WriteString(sym)
	writeSubscript(b, v.Predicate.Subscript)
	for _, t := range v.Parameters[1:] {
		writeTerm(b, t)
	}
	return nil
}

func predicateSymbol(p domain.Predicate) (string, error) {
	switch p.Index {
	case domain.IdentityPredicateIndex:
		return "=", nil
	case domain.ExistencePredicateIndex:
		return "!", nil
	default:
		if p.Index < 0 || p.Index >= len(predicateAlphabet) {
			return "", domain.NewParseError(domain.CodeUnexpectedChar, fmt.Sprintf("predicate index %d has no Standard symbol", p.Index), -1)
		}
		return string(predicateAlphabet[p.Index]), nil
	}
}

func writeSubscript(b *strings.Builder, sub uint) {
	if sub == 0 {
		return
	}
	fmt.Fprintf(b, "%d", sub)
}

func writeTerm(b *strings.Builder, t domain.Term) {
	if t.IsConstant() {
		b.WriteByte(constantAlphabet[t.Index])
	} else {
		b.WriteByte(variableAlphabet[t.Index])
	}
	writeSubscript(b, t.Subscript)
}
