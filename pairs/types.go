// types.go — the pair record shared by every operation in this package.

package pairs

// Pair is one input line: a left-list location ID and a right-list one.
// The two columns are independent lists that happen to share a line; no
// per-line relationship is implied beyond position in the file.
type Pair struct {
	Left  int
	Right int
}
