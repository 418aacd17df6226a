package analyzer

import (
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
)

// constJSDocInfo holds JSDoc metadata extracted from a variable statement.
type constJSDocInfo struct {
	// Annotated is true when the statement carries a @tsconst tag.
	Annotated bool
	// Ignored is true when the statement carries a @tsconst-ignore tag.
	Ignored bool
	// Description is from the JSDoc body text or @description tag.
	Description string
}

// extractConstJSDoc parses statement-level JSDoc for extraction markers.
// Recognized annotations:
//   - @tsconst: opt the declaration in (required in annotatedOnly mode)
//   - @tsconst-ignore: exclude the declaration from extraction
//   - @description <text>: override the body text description
func extractConstJSDoc(stmt *ast.Node) constJSDocInfo {
	var info constJSDocInfo
	if stmt == nil {
		return info
	}
	jsdocs := stmt.JSDoc(nil)
	if len(jsdocs) == 0 {
		return info
	}

	// Only the JSDoc block directly above the statement counts.
	jsdoc := jsdocs[len(jsdocs)-1].AsJSDoc()
	info.Description = strings.TrimSpace(jsdocText(jsdoc.Comment))

	if jsdoc.Tags == nil {
		return info
	}
	for _, tag := range jsdoc.Tags.Nodes {
		name, comment := tagNameAndComment(tag)
		switch strings.ToLower(name) {
		case "tsconst":
			info.Annotated = true
		case "tsconst-ignore":
			info.Ignored = true
		case "description":
			info.Description = strings.TrimSpace(comment)
		}
	}
	return info
}

// tagNameAndComment reads a custom tag's name and trailing comment. @tsconst
// and friends parse as KindJSDocTag; typed tag kinds (@param, @see) are not
// extraction markers and come back empty.
func tagNameAndComment(tag *ast.Node) (name, comment string) {
	if tag == nil || tag.Kind != ast.KindJSDocTag {
		return "", ""
	}
	unknown := tag.AsJSDocUnknownTag()
	if unknown == nil || unknown.TagName == nil {
		return "", ""
	}
	if unknown.Comment != nil {
		comment = jsdocText(unknown.Comment)
	}
	return unknown.TagName.Text(), comment
}

// jsdocText flattens a JSDoc comment node list, keeping {@link} text inline.
func jsdocText(list *ast.NodeList) string {
	if list == nil {
		return ""
	}
	var sb strings.Builder
	for _, n := range list.Nodes {
		switch n.Kind {
		case ast.KindJSDocText, ast.KindJSDocLink, ast.KindJSDocLinkCode, ast.KindJSDocLinkPlain:
			sb.WriteString(n.Text())
		}
	}
	return sb.String()
}
