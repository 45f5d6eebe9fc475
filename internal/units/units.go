// Package units converts raw explorer values into display strings: minor-unit
// amounts into coin amounts, Unix seconds into wall-clock time, and integers
// into thousands-grouped text.
//
// Every formatter is total. Malformed input never produces an error; instead
// the returned Result carries the original text with OK set to false.
package units

import (
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// ZECDecimals is the number of zatoshi digits in one ZEC (10^8 zatoshi = 1 ZEC).
	ZECDecimals = 8
	// ZECSymbol is appended to formatted ZEC amounts.
	ZECSymbol = "ZEC"

	// TimeLayout is the layout used for block and transaction times.
	TimeLayout = "2006-01-02 15:04:05"
)

// Result is the outcome of a display conversion.
//
// When OK is true, Text holds the formatted value. When OK is false the input
// could not be interpreted and Text holds the original input unchanged.
type Result struct {
	Text string
	OK   bool
}

func (r Result) String() string { return r.Text }

func formatted(s string) Result  { return Result{Text: s, OK: true} }
func fallback(raw string) Result { return Result{Text: raw} }

// FormatMinorUnits converts an integer amount of minor units into a fixed-point
// major-unit string with exactly `decimals` fractional digits, followed by symbol.
//
// The conversion is exact for integers of any size; no binary floating point
// is involved.
//
// Examples:
//   - ("123456789", 8, "ZEC") -> "1.23456789 ZEC"
//   - ("0", 8, "ZEC")         -> "0.00000000 ZEC"
//   - ("-1", 8, "ZEC")        -> "-0.00000001 ZEC"
//   - ("N/A", 8, "ZEC")       -> "N/A" (fallback)
func FormatMinorUnits(raw string, decimals int32, symbol string) Result {
	n, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok {
		return fallback(raw)
	}
	amount := decimal.NewFromBigInt(n, -decimals).StringFixed(decimals)
	if symbol == "" {
		return formatted(amount)
	}
	return formatted(amount + " " + symbol)
}

// ZatoshiToZEC formats a zatoshi amount as ZEC with 8 decimal places.
func ZatoshiToZEC(raw string) Result {
	return FormatMinorUnits(raw, ZECDecimals, ZECSymbol)
}

// FormatTimestamp converts Unix seconds into "YYYY-MM-DD HH:MM:SS" in loc.
// A nil loc means time.Local.
//
// The raw value may come from a JSON string or number; surrounding whitespace
// is ignored. Values that are not integers, or that land outside years
// 1..9999, fall back to the raw text.
func FormatTimestamp(raw string, loc *time.Location) Result {
	secs, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return fallback(raw)
	}
	if loc == nil {
		loc = time.Local
	}
	t := time.Unix(secs, 0).In(loc)
	if y := t.Year(); y < 1 || y > 9999 {
		return fallback(raw)
	}
	return formatted(t.Format(TimeLayout))
}

// GroupDigits inserts thousands separators into a base-10 integer.
//
// Examples:
//   - "24277510" -> "24,277,510"
//   - "-1000"    -> "-1,000"
//   - "123"      -> "123"
//   - "12.5"     -> "12.5" (fallback)
func GroupDigits(raw string) Result {
	s := strings.TrimSpace(raw)
	if _, ok := new(big.Int).SetString(s, 10); !ok {
		return fallback(raw)
	}
	sign := ""
	if s[0] == '-' || s[0] == '+' {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}
	return formatted(sign + addThousandSeparators(s))
}

// maxDifficultyDigits bounds the digits a difficulty may expand to on either
// side of the decimal point. Exponent notation beyond it falls back to raw.
const maxDifficultyDigits = 400

// FormatDifficulty renders a difficulty value with 2 decimal places and
// thousands grouping, e.g. "83178453.587" -> "83,178,453.59".
//
// Halves round away from zero ("0.125" -> "0.13").
func FormatDifficulty(raw string) Result {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return fallback(raw)
	}
	exp := int(d.Exponent())
	if exp < -maxDifficultyDigits || d.NumDigits()+exp > maxDifficultyDigits {
		return fallback(raw)
	}
	fixed := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	return formatted(sign + addThousandSeparators(whole) + "." + frac)
}

func addThousandSeparators(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result []byte
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}
