// types.go — the Report value, verdict and tolerance enums, and the gap
// bounds shared by every checker rule.

package reports

// Report is one line of puzzle input: an ordered sequence of levels.
// Reports are immutable by convention once parsed; Check never mutates one.
type Report []int

// Bounds on the magnitude of a valid gap between adjacent kept levels.
const (
	// MinGap is the smallest change a transition must make.
	MinGap = 1
	// MaxGap is the largest change a transition may make.
	MaxGap = 3
)

// Safety is the two-valued verdict produced for every report.
type Safety int

const (
	// Unsafe means the report admits no valid traversal.
	Unsafe Safety = iota

	// Safe means the report admits a strictly monotonic traversal whose
	// every gap magnitude lies in [MinGap, MaxGap], under the tolerance
	// the caller selected.
	Safe
)

// String implements fmt.Stringer.
func (s Safety) String() string {
	if s == Safe {
		return "Safe"
	}

	return "Unsafe"
}

// Tolerance selects how many levels the checker may discard while looking
// for a valid traversal.
type Tolerance int

const (
	// Strict discards nothing: the report must be valid as written.
	Strict Tolerance = iota

	// SkipOne may discard at most one level anywhere in the report.
	SkipOne
)

// String implements fmt.Stringer.
func (t Tolerance) String() string {
	if t == SkipOne {
		return "SkipOne"
	}

	return "Strict"
}
