package reports_test

import (
	"fmt"

	"github.com/katalvlaran/advent/reports"
)

// ExampleCheck classifies one report under both tolerance settings.
// [1,3,2,4,5] flips direction at 3→2, so it only passes once the checker
// may discard a single level.
func ExampleCheck() {
	r := reports.Report{1, 3, 2, 4, 5}

	fmt.Println(reports.Check(r, reports.Strict))
	fmt.Println(reports.Check(r, reports.SkipOne))
	// Output:
	// Unsafe
	// Safe
}

// ExampleCountSafe counts safe reports in the six-line worked example:
// two pass as written, four once one bad level may be skipped.
func ExampleCountSafe() {
	input := `7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9`

	rs, err := reports.Parse(input)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(reports.CountSafe(rs, reports.Strict))
	fmt.Println(reports.CountSafe(rs, reports.SkipOne))
	// Output:
	// 2
	// 4
}
