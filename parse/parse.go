// parse.go — scanners for daily puzzle inputs: whitespace-separated unsigned
// integers, one row per line.
//
// Both scanners are pure functions of their input string. They either return
// the fully parsed value or a *Error; never both, never partial rows.

package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// uintBits bounds ParseUint so every accepted value fits a non-negative int
// on the current platform.
const uintBits = strconv.IntSize - 1

// Rows parses lines of whitespace-separated unsigned integers.
// The input is trimmed once as a whole; each remaining line must contain at
// least one field, and each field must be an unsigned decimal integer.
// Returns a *Error carrying the offending position on any violation.
// Complexity: O(len(input)).
func Rows(input string) ([][]int, error) {
	lines, err := splitLines(input)
	if err != nil {
		return nil, err
	}
	rows := make([][]int, len(lines))
	for i, text := range lines {
		row, err := scanFields(i+1, text)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}

	return rows, nil
}

// Pairs parses like Rows and additionally requires exactly two fields per
// line, returning each line as a [left, right] pair.
// Complexity: O(len(input)).
func Pairs(input string) ([][2]int, error) {
	rows, err := Rows(input)
	if err != nil {
		return nil, err
	}
	ps := make([][2]int, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, &Error{
				Line: i + 1,
				Msg:  fmt.Sprintf("expected exactly 2 fields, found %d", len(row)),
			}
		}
		ps[i] = [2]int{row[0], row[1]}
	}

	return ps, nil
}

// splitLines trims the whole input once and splits it on '\n'.
// Empty input (after the trim) is the only failure here.
func splitLines(input string) ([]string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, &Error{Msg: "input is empty"}
	}

	return strings.Split(trimmed, "\n"), nil
}

// scanFields converts one line into its integer fields.
// line is the 1-based line number used for error positions.
func scanFields(line int, text string) ([]int, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, &Error{Line: line, Msg: "line is empty"}
	}
	row := make([]int, len(fields))
	for j, tok := range fields {
		v, err := strconv.ParseUint(tok, 10, uintBits)
		if err != nil {
			return nil, &Error{
				Line:  line,
				Field: j + 1,
				Token: tok,
				Msg:   fmt.Sprintf("invalid unsigned integer %q", tok),
			}
		}
		row[j] = int(v)
	}

	return row, nil
}
