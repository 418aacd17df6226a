// Package codegen renders extraction results into output artifacts: the
// JSON constants manifest and the optional generated Go source file.
package codegen

import (
	"fmt"
	"strings"
)

// sourceBuilder accumulates Go source text with tab indentation. The zero
// value is ready to use. Generated output passes through the imports
// formatter afterwards, so the builder only has to produce structurally
// correct source.
type sourceBuilder struct {
	buf   strings.Builder
	depth int
}

// linef writes one formatted line at the current depth. An empty formatted
// line comes out as a bare newline with no indentation.
func (b *sourceBuilder) linef(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if line == "" {
		b.blank()
		return
	}
	b.tabs()
	b.buf.WriteString(line)
	b.buf.WriteByte('\n')
}

func (b *sourceBuilder) blank() {
	b.buf.WriteByte('\n')
}

// openf writes the line with " {" appended and deepens what follows by one
// level. The space before the brace is legal in composite literals; the
// formatter tightens it.
func (b *sourceBuilder) openf(format string, args ...any) {
	b.linef(format+" {", args...)
	b.depth++
}

// close ends the innermost open block. The suffix lands on the brace line,
// such as "," for a block nested inside another composite literal.
func (b *sourceBuilder) close(suffix string) {
	b.depth--
	b.tabs()
	b.buf.WriteString("}" + suffix)
	b.buf.WriteByte('\n')
}

func (b *sourceBuilder) indent() { b.depth++ }

// dedent never backs up past column zero.
func (b *sourceBuilder) dedent() {
	if b.depth > 0 {
		b.depth--
	}
}

func (b *sourceBuilder) String() string {
	return b.buf.String()
}

func (b *sourceBuilder) tabs() {
	for range b.depth {
		b.buf.WriteByte('\t')
	}
}
