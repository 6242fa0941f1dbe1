// Package naming provides naming conventions used to derive dataset
// identifiers from relation type names.
package naming

import (
	"bytes"
	"strings"
	"unicode"
)

// Instances of the different naming conventions.
var (
	SnakeCase SnakeCaseConvention
	LowerCase LowerCaseConvention
	SameCase  SameCaseConvention
)

// SnakeCaseConvention converts relation type names into "snake_case".
// So the name "UserAccounts" would be converted to "user_accounts".
type SnakeCaseConvention struct{}

// Convert converts name into snake_case.
func (sc SnakeCaseConvention) Convert(name string) string {
	runes := []rune(name)
	n := len(runes)
	var buf bytes.Buffer

	for i := 0; i < n; i++ {
		if i > 0 && unicode.IsUpper(runes[i]) && ((i+1 < n && unicode.IsLower(runes[i+1])) || unicode.IsLower(runes[i-1])) {
			buf.WriteRune('_')
		}
		buf.WriteRune(unicode.ToLower(runes[i]))
	}

	return buf.String()
}

// LowerCaseConvention converts names to lower case.
type LowerCaseConvention struct{}

// Convert converts name to lower case.
func (lc LowerCaseConvention) Convert(name string) string {
	return strings.ToLower(name)
}

// SameCaseConvention does not alter names.
type SameCaseConvention struct{}

// Convert returns name unchanged.
func (sc SameCaseConvention) Convert(name string) string {
	return name
}
