// safety.go — the tolerant-monotonicity checker.
//
// The report is treated as a nondeterministic automaton over positions:
// every reachable (position, direction, skip-used) configuration is explored
// breadth-first, one frontier layer at a time, with equivalent states
// deduplicated per layer. Safe as soon as a complete traversal exists;
// Unsafe once the frontier drains.

package reports

// stateKind tags the three shapes a search state can take.
type stateKind uint8

const (
	stateStart stateKind = iota // no levels consumed yet
	statePos                    // standing on the level at index
	stateEnd                    // a complete valid traversal was found
)

// state is one automaton configuration. The struct is comparable, so a map
// keyed by state dedupes equivalent configurations within a layer.
//
// Invariants: index is always a valid position; dir never opposes the sign
// recorded by the previous non-skip transition; skipped only ever moves
// false → true.
type state struct {
	kind    stateKind
	index   int  // current position; meaningful only for statePos
	dir     int  // -1 falling, +1 rising, 0 not yet established
	skipped bool // whether the single tolerated removal was spent
}

// search holds the mutable frontier for one report's evaluation.
// States live only for the duration of that evaluation.
type search struct {
	report   Report
	skip     bool // tolerance enabled
	frontier []state
	next     map[state]struct{}
}

// Check decides the verdict for one report under the given tolerance.
// It never errors and never mutates r. Reports of length ≤ 1 are vacuously
// Safe: there is no transition to violate.
// Complexity: O(len(r)) states; memory O(len(r)).
func Check(r Report, tol Tolerance) Safety {
	if len(r) < 2 {
		return Safe
	}
	s := &search{
		report:   r,
		skip:     tol == SkipOne,
		frontier: []state{{kind: stateStart}},
		next:     make(map[state]struct{}, 4),
	}

	return s.run()
}

// run drains frontier layers until End is reached or no states remain.
func (s *search) run() Safety {
	for len(s.frontier) > 0 {
		for _, st := range s.frontier {
			switch st.kind {
			case stateStart:
				s.seed()
			case statePos:
				s.step(st)
			case stateEnd:
				return Safe
			}
		}
		s.advance()
	}

	return Unsafe
}

// seed enters the report: land on the first level, or — when the tolerance
// is available — discard it and land on the second, spending the skip.
func (s *search) seed() {
	s.insert(state{kind: statePos, index: 0})
	if s.skip {
		s.insert(state{kind: statePos, index: 1, skipped: true})
	}
}

// step emits every valid successor of a position state.
func (s *search) step(st state) {
	last := len(s.report) - 1
	if st.index == last {
		// On the last level the only move is to finish.
		s.insert(state{kind: stateEnd})
		return
	}

	// Normal move to the adjacent level.
	if dir, ok := s.assess(st, st.index+1); ok {
		s.insert(state{kind: statePos, index: st.index + 1, dir: dir, skipped: st.skipped})
	}

	// Skip move over the next level, unless the tolerance was spent.
	if !s.skip || st.skipped {
		return
	}
	if st.index == last-1 {
		// Discarding the final level completes the traversal outright.
		s.insert(state{kind: stateEnd})
		return
	}
	if dir, ok := s.assess(st, st.index+2); ok {
		s.insert(state{kind: statePos, index: st.index + 2, dir: dir, skipped: true})
	}
}

// assess validates the transition from st to the level at position `to`:
// the gap magnitude must lie in [MinGap, MaxGap] and the gap sign must not
// oppose the direction established by earlier moves. Returns the direction
// the transition would establish.
func (s *search) assess(st state, to int) (dir int, ok bool) {
	delta := s.report[to] - s.report[st.index]
	dir = sign(delta)
	gap := abs(delta)

	return dir, dir+st.dir != 0 && gap >= MinGap && gap <= MaxGap
}

// insert records a successor in the next layer, deduplicating equivalents.
func (s *search) insert(st state) {
	s.next[st] = struct{}{}
}

// advance promotes the deduplicated next layer to the current frontier.
func (s *search) advance() {
	s.frontier = s.frontier[:0]
	for st := range s.next {
		s.frontier = append(s.frontier, st)
	}
	clear(s.next)
}

// sign returns -1, 0, or +1 matching the sign of x.
func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
