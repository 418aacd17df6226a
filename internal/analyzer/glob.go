package analyzer

import (
	"path/filepath"
	"strings"
)

// MatchesGlob reports whether filePath is selected by the include patterns
// after applying the exclude patterns. Excludes always win, and an empty
// include list selects nothing.
func MatchesGlob(filePath string, includePatterns []string, excludePatterns []string) bool {
	if len(includePatterns) == 0 {
		return false
	}
	path := filepath.ToSlash(filePath)
	for _, pat := range excludePatterns {
		if matchPattern(path, filepath.ToSlash(pat)) {
			return false
		}
	}
	for _, pat := range includePatterns {
		if matchPattern(path, filepath.ToSlash(pat)) {
			return true
		}
	}
	return false
}

// matchPattern matches path against one glob pattern. Patterns are written
// relative to the project root while candidate paths are absolute, so a
// pattern like "src/**/*.ts" anchors at any "src" directory segment in the
// path and the part after "**" is matched against the file name, or against
// the whole remainder for multi-segment tails like "**/gen/*.ts".
func matchPattern(path, pattern string) bool {
	if ok, _ := filepath.Match(pattern, path); ok {
		return true
	}

	head, tail, doubled := strings.Cut(pattern, "**")
	if !doubled {
		// Plain patterns fall back to a basename comparison so that
		// "constants.ts" selects the file wherever it lives.
		ok, _ := filepath.Match(filepath.Base(pattern), filepath.Base(path))
		return ok
	}

	head = strings.TrimSuffix(head, "/")
	tail = strings.TrimPrefix(tail, "/")

	if head == "" {
		// "**" alone selects everything.
		if tail == "" {
			return true
		}
		ok, _ := filepath.Match(tail, filepath.Base(path))
		return ok
	}

	rest, anchored := cutSegment(path, head)
	if !anchored {
		return false
	}
	if tail == "" {
		return true
	}
	if ok, _ := filepath.Match(tail, filepath.Base(rest)); ok {
		return true
	}
	ok, _ := filepath.Match(tail, rest)
	return ok
}

// cutSegment returns the part of path after the first occurrence of dir as a
// complete path segment ("/dir/"), if present.
func cutSegment(path, dir string) (rest string, found bool) {
	marker := "/" + dir + "/"
	i := strings.Index(path, marker)
	if i < 0 {
		return "", false
	}
	return path[i+len(marker):], true
}
