// Package diag holds diagnostic wording for precondition violations.
//
// The release wording is terse. Building with the outcomedebug tag swaps in a
// longer message that points at the likely mistake in the calling code:
//
//	go test -tags outcomedebug ./...
//
// Only the text differs between builds; the condition that triggers it does not.
package diag

// Verbose reports whether the debug wording is compiled in.
func Verbose() bool {
	return verbose
}
