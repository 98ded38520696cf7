// Package reports decides, for each reactor report, whether its levels are
// safe: strictly monotonic with every adjacent gap magnitude in
// [MinGap, MaxGap] — optionally tolerating the removal of exactly one level.
//
// 🚀 What is a report?
//
//	One line of puzzle input: an ordered sequence of unsigned "levels".
//	A report is Safe when the levels are all increasing or all decreasing
//	and every step changes by at least MinGap and at most MaxGap. Under the
//	SkipOne tolerance a single level may be discarded to rescue an
//	otherwise-unsafe report.
//
// ✨ Why a frontier search and not a linear scan?
//
//	A single bad transition can be repaired by dropping either of its
//	endpoints — or even an earlier level that locked in the wrong
//	direction — so a greedy scan cannot decide which level to discard
//	without lookahead. The checker instead treats the report as a
//	nondeterministic automaton over positions: from each position it may
//	move to the next level, or (once) jump over one level. All reachable
//	configurations are explored layer by layer, deduplicating states of
//	equal (position, direction, skip-used) shape, until a complete
//	traversal is found or the frontier drains.
//
// Algorithm Outline (per report):
//  1. Seed the frontier with the Start state.
//  2. Start → position 0; with tolerance, also position 1 (first level
//     discarded, skip spent).
//  3. Position i → position i+1 when the gap is valid; with an unspent
//     skip, also position i+2 under the same rule. The final position
//     reaches End; with an unspent skip the second-to-last may reach End
//     directly by discarding the last level.
//  4. A gap is valid when its magnitude lies in [MinGap, MaxGap] and its
//     sign does not oppose the direction established by earlier moves.
//  5. Safe iff End becomes reachable; Unsafe once no states remain.
//
// Reports of length ≤ 1 are vacuously Safe under either tolerance.
//
// Complexity:
//
//	Check:     O(n) states per report — each (position, direction, skip)
//	           combination enters the frontier at most once.
//	CountSafe: O(total levels); reports are independent, so
//	           CountSafeParallel may fan the checks out across goroutines
//	           with no locking and no ordering concerns.
//
// The checker never errors: every report resolves to Safe or Unsafe.
// Parsing is the only failure surface; see Parse and package parse.
package reports
