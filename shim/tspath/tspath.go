// Package tspath re-exports tsgo path normalization. tsgo paths are
// forward-slash normalized regardless of host OS.
package tspath

import "github.com/microsoft/typescript-go/internal/tspath"

func NormalizePath(path string) string {
	return tspath.NormalizePath(path)
}

func ResolvePath(path string, paths ...string) string {
	return tspath.ResolvePath(path, paths...)
}
