// Package scanner re-exports tsgo position helpers. The ECMA variants count
// characters in UTF-16 code units the way the TypeScript compiler does, with
// 0-based lines and characters; byte offsets stay Go-native.
package scanner

import (
	"github.com/microsoft/typescript-go/internal/ast"
	"github.com/microsoft/typescript-go/internal/scanner"
)

func SkipTrivia(text string, pos int) int {
	return scanner.SkipTrivia(text, pos)
}

func GetECMALineAndCharacterOfPosition(file *ast.SourceFile, pos int) (line int, character int) {
	return scanner.GetECMALineAndCharacterOfPosition(file, pos)
}

func GetECMAPositionOfLineAndCharacter(file *ast.SourceFile, line int, character int) int {
	return scanner.GetECMAPositionOfLineAndCharacter(file, line, character)
}

// GetECMALineOfPosition returns just the 0-based line of a position.
func GetECMALineOfPosition(file *ast.SourceFile, pos int) int {
	line, _ := scanner.GetECMALineAndCharacterOfPosition(file, pos)
	return line
}
