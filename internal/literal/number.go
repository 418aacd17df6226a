package literal

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// resolveNumber parses the text of a numeric literal. The scanner normalizes
// every lexical form (hex, octal, binary, scientific notation, numeric
// separators) to a canonical decimal string before it reaches the tree, so a
// plain float parse is locale-independent and total. Out-of-range parses
// overflow to ±Inf, which is exactly the JavaScript value of such a literal.
func resolveNumber(text string) Result {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return unresolved()
	}
	return Result{Kind: KindNumber, Value: v}
}

// resolveBigInt parses the text of a bigint literal: an already-normalized
// decimal body with a trailing "n" suffix.
func resolveBigInt(text string) Result {
	v, ok := new(big.Int).SetString(strings.TrimSuffix(text, "n"), 10)
	if !ok {
		return unresolved()
	}
	return Result{Kind: KindBigInt, Value: v}
}

// normalizeNumber converts the checker's literal number representation
// (jsnum.Number, a float64 newtype) to a plain float64 without importing the
// numeric package itself.
func normalizeNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	default:
		str := fmt.Sprintf("%v", v)
		var f float64
		if _, err := fmt.Sscanf(str, "%g", &f); err == nil {
			return f, true
		}
		return 0, false
	}
}

// formatScalar renders a scalar Result the way JavaScript stringifies it in
// template and property-key positions. Only string, number, bigint and
// boolean values have a canonical text; every other Result reports false.
func formatScalar(res Result) (string, bool) {
	switch res.Kind {
	case KindString:
		return res.Value.(string), true
	case KindNumber:
		return formatNumber(res.Value.(float64)), true
	case KindBigInt:
		return res.Value.(*big.Int).String(), true
	case KindBoolean:
		return strconv.FormatBool(res.Value.(bool)), true
	}
	return "", false
}

// formatNumber renders v the way JavaScript converts a number to a string:
// plain decimal for magnitudes within [1e-6, 1e21), exponent notation outside
// that range without zero-padded exponent digits, "0" for both zeros, and
// Infinity/NaN by name.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case v == 0:
		return "0"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if abs := math.Abs(v); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := ""
	if exp != "" && (exp[0] == '+' || exp[0] == '-') {
		sign, exp = string(exp[0]), exp[1:]
	}
	return mant + "e" + sign + strings.TrimLeft(exp, "0")
}
