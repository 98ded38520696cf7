// errors.go — the single error kind for puzzle-input parsing.
//
// Error policy:
//   - One type, *Error, for every way input can be malformed; callers branch
//     with errors.As and read the position fields.
//   - An Error always renders a human-readable position, so it can be shown
//     to a user as-is.

package parse

import "fmt"

// Error describes puzzle input that does not conform to
// "lines of whitespace-separated unsigned integers".
//
// Position fields are 1-based. A zero Line blames the whole input;
// a zero Field blames the whole line.
type Error struct {
	// Line is the 1-based line number within the trimmed input,
	// or 0 when the input as a whole is at fault.
	Line int

	// Field is the 1-based field number within the line,
	// or 0 when the line as a whole is at fault.
	Field int

	// Token is the offending token. It is empty when the failure is an
	// empty line or empty input.
	Token string

	// Msg is the human-readable description of the failure.
	Msg string
}

// Error renders the failure with as much position context as is known.
func (e *Error) Error() string {
	switch {
	case e.Line == 0:
		return "parse: " + e.Msg
	case e.Field == 0:
		return fmt.Sprintf("parse: line %d: %s", e.Line, e.Msg)
	default:
		return fmt.Sprintf("parse: line %d, field %d: %s", e.Line, e.Field, e.Msg)
	}
}
