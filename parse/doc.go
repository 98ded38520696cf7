// Package parse turns raw puzzle text into rows of unsigned integers,
// reporting failures with exact line and field positions.
//
// What:
//
//   - Rows: one row per line, each row one or more whitespace-separated
//     unsigned decimal integers.
//   - Pairs: Rows with the extra constraint of exactly two fields per line.
//   - Error: the single error kind of this package, carrying the 1-based
//     line, the 1-based field, and the offending token.
//
// Contract:
//
//   - The whole input is trimmed exactly once; no other whitespace
//     tolerance is guaranteed. Line numbers refer to the trimmed input.
//   - Lines are separated by '\n'; a stray '\r' counts as field whitespace,
//     so CRLF inputs parse identically.
//   - Every field must be an unsigned decimal integer that fits a
//     non-negative int. Sign prefixes are rejected.
//   - Failure aborts the whole parse; no partial results are returned.
//
// Errors:
//
//   - empty input (after the single trim)
//   - empty line (no fields)
//   - invalid token (non-numeric, signed, or out of range)
//   - wrong field count (Pairs only)
//
// Complexity: O(len(input)) time, O(number of integers) memory.
package parse
