package literal

import (
	"math"
	"math/big"
	"testing"

	"github.com/dlclark/regexp2"
)

func TestDescribeScalars(t *testing.T) {
	re, err := regexp2.Compile(`^v\d+$`, regexp2.ECMAScript)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	tests := []struct {
		name string
		res  Result
		want string
	}{
		{"unresolved", Result{}, "<unresolved>"},
		{"string", Result{Kind: KindString, Value: "hi"}, `"hi"`},
		{"number", Result{Kind: KindNumber, Value: 1.5}, "1.5"},
		{"integer number", Result{Kind: KindNumber, Value: 30.0}, "30"},
		{"infinity", Result{Kind: KindNumber, Value: math.Inf(1)}, "Infinity"},
		{"boolean", Result{Kind: KindBoolean, Value: true}, "true"},
		{"bigint", Result{Kind: KindBigInt, Value: big.NewInt(9007199254740993)}, "9007199254740993n"},
		{"regexp", Result{Kind: KindRegExp, Value: re}, `/^v\d+$/`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.res.Describe(); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribeAggregates(t *testing.T) {
	arr := Result{Kind: KindArray, Value: []any{"free", 10.0, nil}}
	if got, want := arr.Describe(), `["free", 10, null]`; got != want {
		t.Errorf("array Describe() = %q, want %q", got, want)
	}

	obj := Result{Kind: KindObject, Value: map[string]any{
		"max":  100.0,
		"name": "basic",
		"big":  big.NewInt(7),
	}}
	if got, want := obj.Describe(), `{big: 7n, max: 100, name: "basic"}`; got != want {
		t.Errorf("object Describe() = %q, want %q", got, want)
	}

	nested := Result{Kind: KindArray, Value: []any{
		map[string]any{"tier": "pro"},
		[]any{1.0, 2.0},
	}}
	if got, want := nested.Describe(), `[{tier: "pro"}, [1, 2]]`; got != want {
		t.Errorf("nested Describe() = %q, want %q", got, want)
	}
}
