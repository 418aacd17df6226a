// Package literal resolves compile-time literal values from TypeScript
// expressions. Given a syntax node and the program's type checker, it computes
// the most specific constant value the expression denotes without executing
// any code: the analysis a code generator needs to turn exported consts and
// static annotations into concrete data.
package literal

// Kind classifies a resolved value.
type Kind string

const (
	KindNumber  Kind = "number"  // float64
	KindBigInt  Kind = "bigint"  // *big.Int
	KindString  Kind = "string"  // string
	KindBoolean Kind = "boolean" // bool
	KindRegExp  Kind = "regexp"  // *regexp2.Regexp
	KindArray   Kind = "array"   // []any
	KindObject  Kind = "object"  // map[string]any
)

// Result is the outcome of a resolution. Kind fixes the dynamic type of
// Value as annotated on the Kind constants. The zero Result is the
// unresolved outcome: no Kind, nil Value.
//
// Aggregate values carry their children's raw values only, never nested
// Results; an element or property value whose own resolution failed appears
// as a nil entry inside the aggregate.
type Result struct {
	Kind  Kind
	Value any
}

// Resolved reports whether resolution produced a value. An unresolved Result
// means "no static value available"; it is the expected outcome for
// genuinely dynamic expressions, not a defect indicator.
func (r Result) Resolved() bool { return r.Kind != "" }

// unresolved is the single failure channel. Unsupported node kinds,
// unsupported operators, failed sub-resolutions and semantically invalid
// trees all collapse into this one outcome; nothing in this package panics
// or returns an error.
func unresolved() Result { return Result{} }
