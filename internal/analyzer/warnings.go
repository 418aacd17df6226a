package analyzer

// WarningKind classifies what the analyzer skipped or flagged.
type WarningKind string

const (
	// WarnSkippedDestructuring marks an exported destructuring declaration,
	// which never yields a named constant.
	WarnSkippedDestructuring WarningKind = "skipped-destructuring"
	// WarnSkippedNoInitializer marks an exported const without an initializer.
	WarnSkippedNoInitializer WarningKind = "skipped-no-initializer"
	// WarnDuplicateName marks a constant name exported from more than one file.
	WarnDuplicateName WarningKind = "duplicate-name"
)

// Warning is one analysis finding tied to a source location.
type Warning struct {
	File    string // source file path
	Line    int    // 1-based line number (0 = unknown)
	Kind    WarningKind
	Message string
}

// warningLog accumulates findings during a discovery pass.
type warningLog struct {
	Warnings []Warning
}

func (l *warningLog) add(file string, line int, kind WarningKind, message string) {
	l.Warnings = append(l.Warnings, Warning{File: file, Line: line, Kind: kind, Message: message})
}
