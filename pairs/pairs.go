// pairs.go — parsing and the two list-reconciliation answers.

package pairs

import (
	"sort"

	"github.com/katalvlaran/advent/parse"
)

// Parse converts raw puzzle text into pairs: one per line, each line exactly
// two whitespace-separated unsigned integers. Every failure is a
// *parse.Error carrying the offending position.
func Parse(input string) ([]Pair, error) {
	rows, err := parse.Pairs(input)
	if err != nil {
		return nil, err
	}
	ps := make([]Pair, len(rows))
	for i, row := range rows {
		ps[i] = Pair{Left: row[0], Right: row[1]}
	}

	return ps, nil
}

// TotalDistance sums |left - right| after ranking both columns: smallest
// against smallest, second-smallest against second-smallest, and so on.
// ps is never mutated; the columns are sorted as private copies.
// Complexity: O(n log n) time, O(n) memory.
func TotalDistance(ps []Pair) int {
	left, right := columns(ps)
	sort.Ints(left)
	sort.Ints(right)

	total := 0
	for i := range left {
		d := left[i] - right[i]
		if d < 0 {
			d = -d
		}
		total += d
	}

	return total
}

// Similarity scores the left column against the right: each left ID
// contributes its value times the number of occurrences in the right column.
// Complexity: O(n) time, O(n) memory.
func Similarity(ps []Pair) int {
	occurrences := make(map[int]int, len(ps))
	for _, p := range ps {
		occurrences[p.Right]++
	}

	score := 0
	for _, p := range ps {
		score += p.Left * occurrences[p.Left]
	}

	return score
}

// columns splits the pairs into fresh left and right slices.
func columns(ps []Pair) (left, right []int) {
	left = make([]int, len(ps))
	right = make([]int, len(ps))
	for i, p := range ps {
		left[i], right[i] = p.Left, p.Right
	}

	return left, right
}
