package explorer

import (
	"bytes"
	"encoding/json"
	"math/big"
)

// Kind classifies the JSON value held by a Scalar.
type Kind int

const (
	KindAbsent    Kind = iota // field missing from the document
	KindNull                  // explicit JSON null
	KindString                // JSON string, unquoted in Text
	KindNumber                // JSON number, literal kept verbatim
	KindBool                  // true or false
	KindComposite             // an object or array where a scalar was expected
)

// Scalar is a loosely typed JSON value. Blockbook is inconsistent about
// whether numeric fields arrive as numbers or strings, so record fields are
// decoded into Scalar and interpreted at display time rather than failing
// the whole document on a type mismatch.
type Scalar struct {
	kind Kind
	text string
}

// String and Number build scalars directly, mostly for tests.
func String(s string) Scalar { return Scalar{kind: KindString, text: s} }
func Number(n string) Scalar { return Scalar{kind: KindNumber, text: n} }

// UnmarshalJSON implements json.Unmarshaler. Any well-formed JSON value is
// accepted; objects and arrays are kept as raw text with KindComposite.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*s = Scalar{}
		return nil
	}

	switch data[0] {
	case 'n':
		*s = Scalar{kind: KindNull}
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar{kind: KindString, text: str}
	case 't', 'f':
		*s = Scalar{kind: KindBool, text: string(data)}
	case '{', '[':
		*s = Scalar{kind: KindComposite, text: string(data)}
	default:
		*s = Scalar{kind: KindNumber, text: string(data)}
	}
	return nil
}

// Kind returns the JSON type the value arrived as.
func (s Scalar) Kind() Kind { return s.kind }

// Present reports whether the field carried a non-null value.
func (s Scalar) Present() bool { return s.kind > KindNull }

// Text returns the value as it appeared in the document, without quotes.
func (s Scalar) Text() string { return s.text }

// IsInteger reports whether the value is a JSON number with no fractional
// part or exponent. Integer strings such as "42" do not qualify.
func (s Scalar) IsInteger() bool {
	if s.kind != KindNumber {
		return false
	}
	_, ok := new(big.Int).SetString(s.text, 10)
	return ok
}

// Truthy mirrors loose truthiness: absent, null, false, zero and the empty
// string are false.
func (s Scalar) Truthy() bool {
	switch s.kind {
	case KindString:
		return s.text != ""
	case KindBool:
		return s.text == "true"
	case KindNumber:
		f, _, err := big.ParseFloat(s.text, 10, 64, big.ToNearestEven)
		return err != nil || f.Sign() != 0
	case KindComposite:
		return s.text != "[]" && s.text != "{}"
	default:
		return false
	}
}
