package codegen

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/tools/imports"

	"github.com/tsconst/tsconst/internal/analyzer"
	"github.com/tsconst/tsconst/internal/literal"
)

// goDecl pairs a constant with the Go identifier claimed for it.
type goDecl struct {
	name     string
	doc      string
	constant analyzer.Constant
}

// GenerateGoFile renders resolved constants as a Go source file in package
// pkg, so a Go service can share the same values the TypeScript project
// declares. Scalars become consts (bigints as decimal strings, regexps as
// their source pattern), arrays and objects become vars with []any and
// map[string]any composites, and non-finite numbers become vars built from
// the math package. Unresolved constants are left out; the diagnostic
// collector reports those. The output runs through the goimports formatter,
// which also inserts the math import when needed.
func GenerateGoFile(constants []analyzer.Constant, pkg string) ([]byte, error) {
	b := &sourceBuilder{}
	b.linef("// Code generated by tsconst. DO NOT EDIT.")
	b.blank()
	b.linef("package %s", pkg)
	b.blank()

	used := make(map[string]bool)
	var consts, vars []goDecl
	for _, c := range constants {
		if !c.Result.Resolved() {
			continue
		}
		decl := goDecl{
			name:     claimIdentifier(used, goIdentifier(c.Name)),
			doc:      c.Doc,
			constant: c,
		}
		if _, ok := constValueText(c.Result); ok {
			consts = append(consts, decl)
		} else {
			vars = append(vars, decl)
		}
	}

	if len(consts) > 0 {
		b.linef("const (")
		b.indent()
		for _, d := range consts {
			writeDoc(b, d.doc)
			text, _ := constValueText(d.constant.Result)
			b.linef("%s = %s", d.name, text)
		}
		b.dedent()
		b.linef(")")
		b.blank()
	}

	for _, d := range vars {
		writeDoc(b, d.doc)
		writeVarDecl(b, d.name, d.constant.Result)
		b.blank()
	}

	out, err := imports.Process("tsconst_gen.go", []byte(b.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return out, nil
}

// goIdentifier derives an exported Go identifier from a TypeScript constant
// name. The name is NFC-normalized first so visually identical source
// identifiers map to one Go name, split on separator runes, and each
// segment title-cased (all-caps segments get their tail lowered, so
// MAX_RETRIES becomes MaxRetries). A result that does not start with a
// letter gets an X prefix.
func goIdentifier(name string) string {
	name = norm.NFC.String(name)

	var segs []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			segs = append(segs, string(cur))
			cur = nil
		}
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur = append(cur, r)
		} else {
			flush()
		}
	}
	flush()

	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(titleSegment(seg))
	}
	id := b.String()
	if id == "" || !unicode.IsLetter([]rune(id)[0]) {
		id = "X" + id
	}
	return id
}

// titleSegment uppercases a segment's first rune. A segment with no
// lowercase runes reads as a SCREAMING_SNAKE word, so its tail is lowered
// instead of being glued together as-is.
func titleSegment(seg string) string {
	runes := []rune(seg)
	allUpper := true
	for _, r := range runes {
		if unicode.IsLower(r) {
			allUpper = false
			break
		}
	}
	if allUpper && len(runes) > 1 {
		for i := 1; i < len(runes); i++ {
			runes[i] = unicode.ToLower(runes[i])
		}
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// claimIdentifier reserves id, appending a numeric suffix when two constant
// names mangle to the same Go identifier.
func claimIdentifier(used map[string]bool, id string) string {
	if !used[id] {
		used[id] = true
		return id
	}
	for n := 2; ; n++ {
		candidate := id + strconv.Itoa(n)
		if !used[candidate] {
			used[candidate] = true
			return candidate
		}
	}
}

// constValueText renders a Result as a Go constant expression. Aggregates
// and non-finite numbers cannot be consts and report false.
func constValueText(res literal.Result) (string, bool) {
	switch res.Kind {
	case literal.KindString:
		return strconv.Quote(res.Value.(string)), true
	case literal.KindBoolean:
		return strconv.FormatBool(res.Value.(bool)), true
	case literal.KindBigInt:
		return strconv.Quote(res.Value.(*big.Int).String()), true
	case literal.KindRegExp:
		return strconv.Quote(res.Value.(*regexp2.Regexp).String()), true
	case literal.KindNumber:
		v := res.Value.(float64)
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return "", false
		}
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	return "", false
}

// writeVarDecl emits a var declaration for a value that cannot be a const.
func writeVarDecl(b *sourceBuilder, name string, res literal.Result) {
	switch res.Kind {
	case literal.KindArray:
		b.openf("var %s = []any", name)
		writeArrayElems(b, res.Value.([]any))
		b.close("")
	case literal.KindObject:
		b.openf("var %s = map[string]any", name)
		writeObjectEntries(b, res.Value.(map[string]any))
		b.close("")
	case literal.KindNumber:
		b.linef("var %s = %s", name, scalarExpr(res.Value))
	}
}

func writeArrayElems(b *sourceBuilder, arr []any) {
	for _, elem := range arr {
		writeCompositeEntry(b, "", elem)
	}
}

func writeObjectEntries(b *sourceBuilder, obj map[string]any) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		writeCompositeEntry(b, strconv.Quote(k)+": ", obj[k])
	}
}

// writeCompositeEntry emits one element or key/value entry inside a
// composite literal, recursing for nested aggregates.
func writeCompositeEntry(b *sourceBuilder, prefix string, v any) {
	switch val := v.(type) {
	case []any:
		b.openf("%s[]any", prefix)
		writeArrayElems(b, val)
		b.close(",")
	case map[string]any:
		b.openf("%smap[string]any", prefix)
		writeObjectEntries(b, val)
		b.close(",")
	default:
		b.linef("%s%s,", prefix, scalarExpr(val))
	}
}

// scalarExpr renders a raw aggregate member as a Go expression. Numbers are
// forced to float64 form so the runtime values match what the resolver
// produced; bigints and regexps fall back to their string encodings.
func scalarExpr(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(val)
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return floatExpr(val)
	case *big.Int:
		return strconv.Quote(val.String())
	case *regexp2.Regexp:
		return strconv.Quote(val.String())
	default:
		return "nil"
	}
}

func floatExpr(v float64) string {
	switch {
	case math.IsNaN(v):
		return "math.NaN()"
	case math.IsInf(v, 1):
		return "math.Inf(1)"
	case math.IsInf(v, -1):
		return "math.Inf(-1)"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func writeDoc(b *sourceBuilder, doc string) {
	if doc == "" {
		return
	}
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			b.linef("//")
		} else {
			b.linef("// %s", line)
		}
	}
}
