package yesql

import (
	"github.com/managr/rom-yesql/private/naming"
)

// The Convention interface provides the method used to derive a dataset
// identifier from a relation type's name, when no identifier is supplied
// with the WithDatasetID option.
type Convention interface {
	// Convert converts a relation type name according to the naming
	// convention.
	Convert(name string) string
}

// Pre-defined naming conventions. If a convention is not specified for a
// relation type, it defaults to snake_case.
var (
	SnakeCase Convention // eg "UserAccounts" -> "user_accounts"
	SameCase  Convention // eg "UserAccounts" -> "UserAccounts"
	LowerCase Convention // eg "UserAccounts" -> "useraccounts"
)

func init() {
	SnakeCase = naming.SnakeCase
	SameCase = naming.SameCase
	LowerCase = naming.LowerCase
}
