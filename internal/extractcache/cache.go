// Package extractcache decides whether an extraction run can be skipped.
//
// Extraction output is a pure function of the tsconst config, the tsconfig,
// and the source files the program loads. The cache records one digest over
// all of them plus the output paths written last time; when the digest still
// matches and the outputs still exist, extract can return immediately.
//
// The cache is intentionally conservative: if ANY check fails, the whole
// pipeline runs from scratch. There are no partial invalidation shortcuts,
// because a single source change can alter any constant that references it
// across files.
package extractcache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SchemaVersion is bumped when the cache format or the manifest format
// changes. A mismatch forces a full extraction, ensuring binary upgrades
// don't leave stale outputs behind.
const SchemaVersion = 1

// Cache records what was true when extraction last ran successfully.
type Cache struct {
	// V is the schema version. Must match SchemaVersion or the cache is invalid.
	V int `json:"v"`

	// InputsHash is the combined SHA-256 hex digest of the config file, the
	// tsconfig, and every source file (see HashInputs).
	InputsHash string `json:"inputsHash"`

	// Outputs lists the paths of output files that must still exist on disk
	// for the cache to be valid: the manifest and, when configured, the
	// generated Go file.
	Outputs []string `json:"outputs"`
}

// New creates a Cache at the current schema version.
func New(inputsHash string, outputs []string) *Cache {
	return &Cache{
		V:          SchemaVersion,
		InputsHash: inputsHash,
		Outputs:    outputs,
	}
}

// CachePath returns the cache file path. The cache lives next to the
// manifest so that deleting the output directory also removes the cache,
// guaranteeing a fresh run.
//
// If no manifest is configured, it falls back to a sibling file named after
// the config, so "tsconst.json" pairs with "tsconst.tsconst-cache".
func CachePath(manifestPath string, configPath string) string {
	if manifestPath != "" {
		return filepath.Join(filepath.Dir(manifestPath), ".tsconst-cache")
	}
	name := strings.TrimSuffix(filepath.Base(configPath), ".json")
	return filepath.Join(filepath.Dir(configPath), name+".tsconst-cache")
}

// Load reads a cache file. Any failure (missing file, unreadable, bad JSON)
// comes back as nil, which callers treat as a miss.
func Load(path string) *Cache {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var c Cache
	if json.Unmarshal(data, &c) != nil {
		return nil
	}
	return &c
}

// Save writes the cache atomically: temp file in the same directory, then
// rename. A failed save is not fatal to the run; the next extraction simply
// starts cold.
func Save(path string, cache *Cache) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing cache: %w", err)
	}
	return nil
}

// Delete removes the cache file from disk. Errors are ignored (the file may
// not exist).
func Delete(path string) {
	os.Remove(path)
}

// IsValid reports whether the cache can be trusted to skip extraction. The
// schema version, the inputs digest, and the existence of every recorded
// output must all check out; a nil cache is never valid.
func (c *Cache) IsValid(currentInputsHash string) bool {
	if c == nil || c.V != SchemaVersion {
		return false
	}
	if c.InputsHash == "" || c.InputsHash != currentInputsHash {
		return false
	}
	for _, path := range c.Outputs {
		if _, err := os.Stat(path); err != nil {
			return false
		}
	}
	return true
}

// HashInputs computes one digest over everything that determines extraction
// output: the config file, the tsconfig, and every source file, in sorted
// path order. Paths are folded into the digest alongside contents so renames
// invalidate as reliably as edits. Missing files contribute their path only,
// which still distinguishes "file absent" from "file empty".
func HashInputs(configPath string, tsconfigPath string, sourceFiles []string) string {
	h := sha256.New()
	writeFileEntry(h, configPath)
	writeFileEntry(h, tsconfigPath)

	sorted := append([]string(nil), sourceFiles...)
	sort.Strings(sorted)
	for _, p := range sorted {
		writeFileEntry(h, p)
	}

	return hex.EncodeToString(h.Sum(nil))
}

func writeFileEntry(h hash.Hash, path string) {
	io.WriteString(h, path)
	h.Write([]byte{0})
	if data, err := os.ReadFile(path); err == nil {
		h.Write(data)
	} else {
		h.Write([]byte{1})
	}
	h.Write([]byte{0})
}
