// Package diagnostic collects and formats extraction diagnostics.
//
// Unresolved constants, skipped declarations, duplicate names, and config
// findings are all reported through a single Collector so the CLI can print
// them uniformly and decide the exit code in one place.
package diagnostic

import (
	"fmt"
	"io"
	"strings"
)

// Severity ranks how much a finding matters to the run's outcome.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityInfo
)

var severityNames = [...]string{"warning", "error", "info"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// Category names the kind of finding, printed in brackets before the
// message.
type Category string

const (
	// CategoryUnresolved marks a constant whose initializer could not be
	// reduced to a literal value.
	CategoryUnresolved Category = "unresolved"
	// CategoryDuplicate marks a constant name exported from more than one file.
	CategoryDuplicate Category = "duplicate"
	// CategorySkipped marks a declaration the analyzer ignored (destructuring,
	// missing initializer).
	CategorySkipped Category = "skipped"
	// CategoryConfig marks an advisory finding about the tsconst config file.
	CategoryConfig Category = "config"
)

// Diagnostic is one finding, located as precisely as the reporter could.
type Diagnostic struct {
	Severity Severity
	Category Category
	File     string // origin file, empty when the finding has no file
	Line     int    // 1-based, zero when unknown
	Column   int    // 1-based, zero when unknown
	Message  string
	Hint     string // optional fix suggestion, printed on its own line
}

// location renders "file:line:col" with unknown parts omitted. Empty when
// the diagnostic has no file.
func (d Diagnostic) location() string {
	switch {
	case d.File == "":
		return ""
	case d.Line <= 0:
		return d.File
	case d.Column <= 0:
		return fmt.Sprintf("%s:%d", d.File, d.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column)
	}
}

// String formats the diagnostic for display:
//
//	src/limits.ts:10:5 - warning: [unresolved] message
//	  hint: suggestion
func (d Diagnostic) String() string {
	var sb strings.Builder
	if loc := d.location(); loc != "" {
		sb.WriteString(loc)
		sb.WriteString(" - ")
	}
	sb.WriteString(d.Severity.String())
	sb.WriteString(": ")
	if d.Category != "" {
		fmt.Fprintf(&sb, "[%s] ", d.Category)
	}
	sb.WriteString(d.Message)
	if d.Hint != "" {
		sb.WriteString("\n  hint: ")
		sb.WriteString(d.Hint)
	}
	return sb.String()
}

// Collector accumulates diagnostics during extraction. A nil Collector is
// valid and drops everything, so callers never have to guard their reports.
type Collector struct {
	diagnostics []Diagnostic
	strict      bool // promote warnings to errors
	quiet       bool // drop warnings and infos
}

// NewCollector creates a collector with the given strict and quiet behavior.
func NewCollector(strict, quiet bool) *Collector {
	return &Collector{strict: strict, quiet: quiet}
}

// Warn adds a warning diagnostic. In strict mode the warning is recorded as
// an error, and like all errors survives quiet mode.
func (c *Collector) Warn(category Category, file string, line int, message string) {
	c.WarnWithHint(category, file, line, message, "")
}

// WarnWithHint is Warn with a fix suggestion attached.
func (c *Collector) WarnWithHint(category Category, file string, line int, message, hint string) {
	if c == nil {
		return
	}
	sev := SeverityWarning
	if c.strict {
		sev = SeverityError
	}
	c.add(Diagnostic{
		Severity: sev,
		Category: category,
		File:     file,
		Line:     line,
		Message:  message,
		Hint:     hint,
	})
}

// Error adds an error diagnostic. Errors are reported even in quiet mode.
func (c *Collector) Error(category Category, file string, line int, message string) {
	if c == nil {
		return
	}
	c.add(Diagnostic{
		Severity: SeverityError,
		Category: category,
		File:     file,
		Line:     line,
		Message:  message,
	})
}

// Info adds an informational note. Infos never affect the exit code.
func (c *Collector) Info(category Category, file string, line int, message string) {
	if c == nil {
		return
	}
	c.add(Diagnostic{
		Severity: SeverityInfo,
		Category: category,
		File:     file,
		Line:     line,
		Message:  message,
	})
}

// add applies quiet filtering and appends. Only errors survive quiet mode;
// the exit code depends on them.
func (c *Collector) add(d Diagnostic) {
	if c.quiet && d.Severity != SeverityError {
		return
	}
	c.diagnostics = append(c.diagnostics, d)
}

// Diagnostics returns all collected diagnostics in report order.
func (c *Collector) Diagnostics() []Diagnostic {
	if c == nil {
		return nil
	}
	return c.diagnostics
}

// countBySeverity counts collected diagnostics at the given severity.
func (c *Collector) countBySeverity(sev Severity) int {
	if c == nil {
		return 0
	}
	n := 0
	for _, d := range c.diagnostics {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// ErrorCount counts collected errors, including promoted warnings.
func (c *Collector) ErrorCount() int { return c.countBySeverity(SeverityError) }

// WarningCount counts collected warnings. Always zero in strict mode.
func (c *Collector) WarningCount() int { return c.countBySeverity(SeverityWarning) }

// HasErrors reports whether any error-level diagnostics exist.
func (c *Collector) HasErrors() bool { return c.ErrorCount() > 0 }

// FormatAll formats all diagnostics as a newline-terminated block, empty when
// nothing was collected.
func (c *Collector) FormatAll() string {
	if c == nil || len(c.diagnostics) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, d := range c.diagnostics {
		sb.WriteString(d.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Print writes all diagnostics to w, one per line.
func (c *Collector) Print(w io.Writer) {
	if s := c.FormatAll(); s != "" {
		io.WriteString(w, s)
	}
}

// Summary returns a one-line tally like "1 error(s), 2 warning(s)", or
// "no issues" when nothing was collected. Nil collectors summarize to "".
func (c *Collector) Summary() string {
	if c == nil {
		return ""
	}
	errors := c.ErrorCount()
	warnings := c.WarningCount()
	switch {
	case errors == 0 && warnings == 0:
		return "no issues"
	case errors == 0:
		return fmt.Sprintf("%d warning(s)", warnings)
	case warnings == 0:
		return fmt.Sprintf("%d error(s)", errors)
	default:
		return fmt.Sprintf("%d error(s), %d warning(s)", errors, warnings)
	}
}
