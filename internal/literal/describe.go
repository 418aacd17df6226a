package literal

import (
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// Describe renders the resolved value as a single line for diagnostics and
// listings, using JavaScript display conventions. Unresolved results render
// as "<unresolved>".
func (r Result) Describe() string {
	if !r.Resolved() {
		return "<unresolved>"
	}
	return describeValue(r.Value)
}

func describeValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(val)
	case float64:
		return formatNumber(val)
	case bool:
		return strconv.FormatBool(val)
	case *big.Int:
		return val.String() + "n"
	case *regexp2.Regexp:
		return "/" + val.String() + "/"
	case []any:
		var sb strings.Builder
		sb.WriteString("[")
		for i, elem := range val {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(describeValue(elem))
		}
		sb.WriteString("]")
		return sb.String()
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var sb strings.Builder
		sb.WriteString("{")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			sb.WriteString(describeValue(val[k]))
		}
		sb.WriteString("}")
		return sb.String()
	default:
		return "<unknown>"
	}
}
