// Package pairs reconciles the two location-ID lists of the first puzzle:
// each input line holds one ID from the left list and one from the right.
//
// What:
//
//   - Parse: one Pair per line; exactly two unsigned integers per line.
//   - TotalDistance: pair the smallest left ID with the smallest right ID,
//     the second-smallest with the second-smallest, and so on, then sum the
//     absolute differences.
//   - Similarity: sum, over the left list, of each ID multiplied by the
//     number of times it appears in the right list.
//
// Contract:
//
//   - Inputs are never mutated; TotalDistance sorts private copies.
//   - Both answers are well defined for the empty list (zero).
//
// Complexity:
//
//	TotalDistance: O(n log n) time, O(n) memory.
//	Similarity:    O(n) time, O(n) memory.
package pairs
