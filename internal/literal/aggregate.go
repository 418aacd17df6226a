package literal

import (
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
)

// The three aggregate forms fail differently, and the differences are
// observable behavior: arrays always succeed and keep holes, objects always
// succeed and may skip or hole individual properties, templates fail
// wholesale on the first bad span. They stay three separate policies here.

// resolveArray resolves every element independently, in source order. An
// element without a static value contributes a nil hole at its position; the
// array itself never fails.
func (r *Resolver) resolveArray(node *ast.Node, depth int) Result {
	elements := node.AsArrayLiteralExpression().Elements.Nodes
	values := make([]any, 0, len(elements))
	for _, element := range elements {
		values = append(values, r.resolve(element, depth+1).Value)
	}
	return Result{Kind: KindArray, Value: values}
}

// resolveObject resolves plain key/value assignments in source order.
// Shorthand, spread, accessor and method members contribute nothing. The key
// node goes back through the dispatcher (identifier keys land in the name
// fallback or property-symbol path, computed keys in their expression's
// resolution) and must coerce to text; a key that does not is skipped.
// Later keys override earlier ones, and a value without a static value is
// stored as a nil hole; the object itself never fails.
func (r *Resolver) resolveObject(node *ast.Node, depth int) Result {
	properties := node.AsObjectLiteralExpression().Properties.Nodes
	values := make(map[string]any, len(properties))
	for _, prop := range properties {
		if prop.Kind != ast.KindPropertyAssignment {
			continue
		}
		assignment := prop.AsPropertyAssignment()
		key, ok := formatScalar(r.resolve(assignment.Name(), depth+1))
		if !ok {
			continue
		}
		values[key] = r.resolve(assignment.Initializer, depth+1).Value
	}
	return Result{Kind: KindObject, Value: values}
}

// resolveTemplate concatenates an interpolated template. Every span's
// expression must resolve to a scalar with a canonical text; one failure
// poisons the whole template. There is no partial interpolation.
func (r *Resolver) resolveTemplate(node *ast.Node, depth int) Result {
	template := node.AsTemplateExpression()
	var b strings.Builder
	b.WriteString(template.Head.Text())
	for _, spanNode := range template.TemplateSpans.Nodes {
		span := spanNode.AsTemplateSpan()
		text, ok := formatScalar(r.resolve(span.Expression, depth+1))
		if !ok {
			return unresolved()
		}
		b.WriteString(text)
		b.WriteString(span.Literal.Text())
	}
	return Result{Kind: KindString, Value: b.String()}
}
