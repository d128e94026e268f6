// Package names holds the well-known canonical-name segments the core
// libraries always use, so callers don't repeat the literal strings.
// Grounded on original_source/src/names.rs.
package names

const (
	DartCore = "dart:core"
	Fields   = "@fields"
	Methods  = "@methods"
	Getters  = "@getters"
	Setters  = "@setters"
	Main     = "main"

	Int    = "int"
	Num    = "num"
	String = "String"
)
