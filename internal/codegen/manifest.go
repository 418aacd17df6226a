package codegen

import (
	"math"
	"math/big"
	"path/filepath"

	"github.com/dlclark/regexp2"
	jsonexp "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/tsconst/tsconst/internal/analyzer"
)

// ManifestSchemaVersion identifies the manifest document layout. Bump it
// whenever the shape changes so consumers can detect incompatible files.
const ManifestSchemaVersion = 1

// Manifest is the constants manifest document, keyed by constant name.
type Manifest struct {
	Schema    int                      `json:"schema"`
	Constants map[string]ManifestEntry `json:"constants"`
}

// ManifestEntry records one resolved constant: its value kind, the value in
// a JSON-safe encoding, and where it was declared.
type ManifestEntry struct {
	Kind  string `json:"kind"`
	Value any    `json:"value"`
	File  string `json:"file"`
	Line  int    `json:"line"`
	Doc   string `json:"doc,omitempty"`
}

// BuildManifest converts extraction results into a manifest document.
// Unresolved constants are omitted; the diagnostic collector reports those.
// File paths are made relative to baseDir when possible and normalized to
// forward slashes so manifests diff cleanly across machines.
func BuildManifest(constants []analyzer.Constant, baseDir string) *Manifest {
	m := &Manifest{
		Schema:    ManifestSchemaVersion,
		Constants: make(map[string]ManifestEntry),
	}

	for _, c := range constants {
		if !c.Result.Resolved() {
			continue
		}
		file := c.File
		if baseDir != "" {
			if rel, err := filepath.Rel(baseDir, c.File); err == nil {
				file = rel
			}
		}
		m.Constants[c.Name] = ManifestEntry{
			Kind:  string(c.Result.Kind),
			Value: jsonValue(c.Result.Value),
			File:  filepath.ToSlash(file),
			Line:  c.Line,
			Doc:   c.Doc,
		}
	}

	return m
}

// ManifestJSON serializes the manifest to indented JSON with deterministic
// map ordering, so identical extractions produce identical bytes.
func ManifestJSON(m *Manifest) ([]byte, error) {
	data, err := jsonexp.Marshal(m, jsonexp.Deterministic(true), jsontext.WithIndent("  "))
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// jsonValue maps a resolved value onto what JSON can carry: bigints become
// decimal strings, regexps their source pattern, non-finite numbers their
// JavaScript names, and aggregates convert recursively with nil holes
// surviving as JSON null.
func jsonValue(v any) any {
	switch val := v.(type) {
	case *big.Int:
		return val.String()
	case *regexp2.Regexp:
		return val.String()
	case float64:
		switch {
		case math.IsInf(val, 1):
			return "Infinity"
		case math.IsInf(val, -1):
			return "-Infinity"
		case math.IsNaN(val):
			return "NaN"
		}
		return val
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			if elem != nil {
				out[i] = jsonValue(elem)
			}
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			if elem != nil {
				out[k] = jsonValue(elem)
			} else {
				out[k] = nil
			}
		}
		return out
	default:
		return val
	}
}
