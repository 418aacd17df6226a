package compiler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/microsoft/typescript-go/shim/ast"
	shimscanner "github.com/microsoft/typescript-go/shim/scanner"
)

// DiagnosticCategory has tsgo's diagnostics.Category values, which the
// shim surfaces only as bare ints.
// Redeclared here to avoid importing the internal diagnostics package directly.
type DiagnosticCategory int

const (
	CategoryWarning    DiagnosticCategory = 0
	CategoryError      DiagnosticCategory = 1
	CategorySuggestion DiagnosticCategory = 2
	CategoryMessage    DiagnosticCategory = 3
)

func (c DiagnosticCategory) String() string {
	switch c {
	case CategoryError:
		return "error"
	case CategoryWarning:
		return "warning"
	case CategorySuggestion:
		return "suggestion"
	case CategoryMessage:
		return "message"
	}
	return "unknown"
}

// ANSI escapes matching tsgo's diagnosticwriter.
const (
	colorReset  = "\u001b[0m"
	colorRed    = "\u001b[91m"
	colorYellow = "\u001b[93m"
	colorCyan   = "\u001b[96m"
	colorBlue   = "\u001b[94m"
	colorGrey   = "\u001b[90m"
	colorGutter = "\u001b[7m" // reverse video
)

func (c DiagnosticCategory) color() string {
	switch c {
	case CategoryError:
		return colorRed
	case CategoryWarning:
		return colorYellow
	case CategorySuggestion:
		return colorGrey
	case CategoryMessage:
		return colorBlue
	}
	return ""
}

// IsPrettyOutput reports whether stderr wants colored diagnostics.
// Mirrors tsgo's shouldBePretty: NO_COLOR wins, then FORCE_COLOR, then isatty.
func IsPrettyOutput() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	fi, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// DiagnosticWriter prints tsgo diagnostics in tsc's two terminal formats.
// Plain mode emits one "file(line,col): error TS1005: message" line per
// diagnostic. Pretty mode colors the location and category and frames the
// offending span in a code snippet with squiggles, the way tsgo renders it.
// File paths display relative to baseDir when possible.
type DiagnosticWriter struct {
	w       io.Writer
	baseDir string
	pretty  bool
}

func NewDiagnosticWriter(w io.Writer, baseDir string, pretty bool) *DiagnosticWriter {
	return &DiagnosticWriter{w: w, baseDir: baseDir, pretty: pretty}
}

// paint wraps s in an ANSI color, or returns it untouched in plain mode.
func (dw *DiagnosticWriter) paint(color, s string) string {
	if !dw.pretty || color == "" {
		return s
	}
	return color + s + colorReset
}

func (dw *DiagnosticWriter) displayPath(fileName string) string {
	if dw.baseDir == "" {
		return fileName
	}
	rel, err := filepath.Rel(dw.baseDir, fileName)
	if err != nil {
		return fileName
	}
	return rel
}

// WriteAll writes each diagnostic in order.
func (dw *DiagnosticWriter) WriteAll(diags []*ast.Diagnostic) {
	for _, d := range diags {
		dw.Write(d)
	}
}

// Write writes a single diagnostic:
//
//	plain:  file(line,col): error TS1005: message
//	pretty: file:line:col - error TS1005: message, then the snippet
func (dw *DiagnosticWriter) Write(d *ast.Diagnostic) {
	cat := DiagnosticCategory(ast.Diagnostic_Category(d))

	if file := d.File(); file != nil {
		line, char := shimscanner.GetECMALineAndCharacterOfPosition(file, d.Pos())
		path := dw.displayPath(file.FileName())
		if dw.pretty {
			fmt.Fprintf(dw.w, "%s:%s:%s - ",
				dw.paint(colorCyan, path),
				dw.paint(colorYellow, strconv.Itoa(line+1)),
				dw.paint(colorYellow, strconv.Itoa(char+1)))
		} else {
			fmt.Fprintf(dw.w, "%s(%d,%d): ", path, line+1, char+1)
		}
	}

	fmt.Fprintf(dw.w, "%s %s %s\n",
		dw.paint(cat.color(), cat.String()),
		dw.paint(colorGrey, fmt.Sprintf("TS%d:", d.Code())),
		d.String())

	if dw.pretty && d.File() != nil && d.Len() > 0 {
		dw.writeSnippet(d.File(), d.Pos(), d.Len(), cat.color())
		fmt.Fprintln(dw.w)
	}
}

// writeSnippet prints the source lines covering [start, start+length) with a
// reverse-video line-number gutter and squiggles under the diagnostic span.
// Spans longer than five lines are elided in the middle, as tsgo does.
func (dw *DiagnosticWriter) writeSnippet(file *ast.SourceFile, start, length int, squiggleColor string) {
	firstLine, firstChar := shimscanner.GetECMALineAndCharacterOfPosition(file, start)
	lastLine, lastChar := shimscanner.GetECMALineAndCharacterOfPosition(file, start+length)
	if length == 0 {
		lastChar++
	}

	text := file.Text()
	finalLine := shimscanner.GetECMALineOfPosition(file, len(text))

	elide := lastLine-firstLine >= 4
	gutterWidth := len(strconv.Itoa(lastLine + 1))
	if elide && gutterWidth < len("...") {
		gutterWidth = len("...")
	}

	for i := firstLine; i <= lastLine; i++ {
		if elide && i > firstLine+1 && i < lastLine-1 {
			fmt.Fprintf(dw.w, "%s\n", dw.paint(colorGutter, fmt.Sprintf("%*s", gutterWidth, "...")))
			i = lastLine - 1
		}

		lineStart := shimscanner.GetECMAPositionOfLineAndCharacter(file, i, 0)
		lineEnd := len(text)
		if i < finalLine {
			lineEnd = shimscanner.GetECMAPositionOfLineAndCharacter(file, i+1, 0)
		}

		content := strings.TrimRightFunc(text[lineStart:lineEnd], unicode.IsSpace)
		content = strings.ReplaceAll(content, "\t", " ")

		gutter := fmt.Sprintf("%*d", gutterWidth, i+1)
		fmt.Fprintf(dw.w, "%s %s\n", dw.paint(colorGutter, gutter), content)

		indent, count := squiggleSpan(i, firstLine, lastLine, firstChar, lastChar, len(content))
		blank := fmt.Sprintf("%*s", gutterWidth, "")
		fmt.Fprintf(dw.w, "%s %s%s\n",
			dw.paint(colorGutter, blank),
			strings.Repeat(" ", indent),
			dw.paint(squiggleColor, strings.Repeat("~", count)))
	}
}

// squiggleSpan computes the indent and width of the squiggle run under one
// snippet line. Interior lines of a multi-line span are underlined in full.
func squiggleSpan(line, firstLine, lastLine, firstChar, lastChar, lineLen int) (indent, count int) {
	switch line {
	case firstLine:
		end := lastChar
		if line != lastLine {
			end = lineLen
		}
		count = end - firstChar
		if count < 1 {
			count = 1
		}
		return firstChar, count
	case lastLine:
		return 0, lastChar
	default:
		return 0, lineLen
	}
}

// WriteSummary prints tsc's closing "Found N error(s)" line, pointing at the
// first error's location. Prints nothing when no diagnostic is at error
// severity.
func (dw *DiagnosticWriter) WriteSummary(diags []*ast.Diagnostic) {
	var (
		count     int
		firstFile *ast.SourceFile
		firstPos  int
	)
	inFiles := make(map[string]struct{})
	for _, d := range diags {
		if DiagnosticCategory(ast.Diagnostic_Category(d)) != CategoryError {
			continue
		}
		count++
		if file := d.File(); file != nil {
			if firstFile == nil {
				firstFile = file
				firstPos = d.Pos()
			}
			inFiles[file.FileName()] = struct{}{}
		}
	}
	if count == 0 {
		return
	}

	loc := func(file *ast.SourceFile, pos int) string {
		line := shimscanner.GetECMALineOfPosition(file, pos)
		return dw.displayPath(file.FileName()) + dw.paint(colorGrey, ":"+strconv.Itoa(line+1))
	}

	fmt.Fprintln(dw.w)
	switch {
	case count == 1 && firstFile != nil:
		fmt.Fprintf(dw.w, "Found 1 error in %s\n", loc(firstFile, firstPos))
	case count == 1:
		fmt.Fprintln(dw.w, "Found 1 error.")
	case len(inFiles) <= 1 && firstFile != nil:
		fmt.Fprintf(dw.w, "Found %d errors in the same file, starting at: %s\n", count, loc(firstFile, firstPos))
	case len(inFiles) <= 1:
		fmt.Fprintf(dw.w, "Found %d errors.\n", count)
	default:
		fmt.Fprintf(dw.w, "Found %d errors in %d files.\n", count, len(inFiles))
	}
	fmt.Fprintln(dw.w)
}

// CountErrors returns how many diagnostics are at error severity.
func CountErrors(diags []*ast.Diagnostic) int {
	n := 0
	for _, d := range diags {
		if DiagnosticCategory(ast.Diagnostic_Category(d)) == CategoryError {
			n++
		}
	}
	return n
}
