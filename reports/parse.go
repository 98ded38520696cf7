// parse.go — text → []Report glue over the shared scanner.

package reports

import "github.com/katalvlaran/advent/parse"

// Parse converts raw puzzle text into reports: one report per line, each a
// whitespace-separated sequence of unsigned levels. Every failure is a
// *parse.Error carrying the offending position; on failure no reports are
// returned at all.
func Parse(input string) ([]Report, error) {
	rows, err := parse.Rows(input)
	if err != nil {
		return nil, err
	}
	rs := make([]Report, len(rows))
	for i, row := range rows {
		rs[i] = Report(row)
	}

	return rs, nil
}
