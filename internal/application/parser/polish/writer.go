package polish

import (
	"fmt"
	"strings"

	"github.com/alethic/tableaux/internal/domain"
)

var operatorSymbolOf = func() map[domain.Operator]byte {
	m := make(map[domain.Operator]byte, len(operatorSymbols))
	for sym, op := range operatorSymbols {
		m[op] = sym
	}
	return m
}()

var quantifierSymbolOf = map[domain.Quantifier]byte{
	domain.Universal:   'V',
	domain.Existential: 'S',
}

// Write renders s back into Polish notation. Write(Parse(Write(s))) = s
// for every sentence constructed through the domain API (section 8).
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
		sym, err := predicateSymbol(v.Predicate)
		if err != nil {
			return err
		}
		b.WriteByte(sym)
		writeSubscript(b, v.Predicate.Subscript)
		for _, t := range v.Parameters {
			writeTerm(b, t)
		}
		return nil

	case domain.QuantifiedSentence:
		b.WriteByte(quantifierSymbolOf[v.Quantifier])
		b.WriteByte(variableAlphabet[v.Variable.Index])
		writeSubscript(b, v.Variable.Subscript)
		return write(b, v.Body, preds)

	case domain.OperatedSentence:
		sym, ok := operatorSymbolOf[v.Operator]
		if !ok {
			return domain.NewError(domain.ErrKindConfig, domain.CodeValueConflict, "unknown operator", nil)
		}
		b.WriteByte(sym)
		for _, o := range v.Operands {
			if err := write(b, o, preds); err != nil {
				return err
			}
		}
		return nil

	default:
		return domain.NewError(domain.ErrKindConfig, domain.CodeValueConflict, "unknown sentence variant", nil)
	}
}

func predicateSymbol(p domain.Predicate) (byte, error) {
	switch p.Index {
	case domain.IdentityPredicateIndex:
		return 'I', nil
	case domain.ExistencePredicateIndex:
		return 'J', nil
	default:
		if p.Index < 0 || p.Index >= len(predicateAlphabet) {
			return 0, domain.NewParseError(domain.CodeUnexpectedChar, fmt.Sprintf("predicate index %d has no Polish symbol", p.Index), -1)
		}
		return predicateAlphabet[p.Index], nil
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
