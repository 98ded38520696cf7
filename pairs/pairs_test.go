package pairs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/pairs"
	"github.com/katalvlaran/advent/parse"
)

// examplePairs returns the six-line worked example from the puzzle statement.
func examplePairs() []pairs.Pair {
	return []pairs.Pair{
		{Left: 3, Right: 4},
		{Left: 4, Right: 3},
		{Left: 2, Right: 5},
		{Left: 1, Right: 3},
		{Left: 3, Right: 9},
		{Left: 3, Right: 3},
	}
}

// TestParse_TwoColumns parses the canonical two-line fragment.
func TestParse_TwoColumns(t *testing.T) {
	ps, err := pairs.Parse("3   4\n4   3\n")
	require.NoError(t, err)
	assert.Equal(t, []pairs.Pair{{Left: 3, Right: 4}, {Left: 4, Right: 3}}, ps)
}

// TestParse_Errors verifies arity and token failures surface as *parse.Error.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"three fields", "3 4 5\n", "parse: line 1: expected exactly 2 fields, found 3"},
		{"one field", "3 4\n7\n", "parse: line 2: expected exactly 2 fields, found 1"},
		{"bad token", "3 x\n", `parse: line 1, field 2: invalid unsigned integer "x"`},
		{"empty input", "   \n  ", "parse: input is empty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ps, err := pairs.Parse(tc.input)
			assert.Nil(t, ps)
			var pe *parse.Error
			require.True(t, errors.As(err, &pe))
			assert.EqualError(t, err, tc.want)
		})
	}
}

// TestTotalDistance_Example pins the worked example's part-one answer:
// ranked pairing gives distances 2+1+0+1+2+5 = 11.
func TestTotalDistance_Example(t *testing.T) {
	assert.Equal(t, 11, pairs.TotalDistance(examplePairs()))
}

// TestTotalDistance_Empty covers the degenerate list.
func TestTotalDistance_Empty(t *testing.T) {
	assert.Equal(t, 0, pairs.TotalDistance(nil))
}

// TestTotalDistance_DoesNotMutate verifies the columns are sorted as copies.
func TestTotalDistance_DoesNotMutate(t *testing.T) {
	ps := examplePairs()
	snapshot := append([]pairs.Pair(nil), ps...)
	_ = pairs.TotalDistance(ps)
	assert.Equal(t, snapshot, ps)
}

// TestSimilarity_Example pins the worked example's part-two answer:
// 3×3 + 4×1 + 2×0 + 1×0 + 3×3 + 3×3 = 31.
func TestSimilarity_Example(t *testing.T) {
	assert.Equal(t, 31, pairs.Similarity(examplePairs()))
}

// TestSimilarity_Empty covers the degenerate list.
func TestSimilarity_Empty(t *testing.T) {
	assert.Equal(t, 0, pairs.Similarity(nil))
}

// TestSimilarity_NoOverlap scores zero when the columns share no IDs.
func TestSimilarity_NoOverlap(t *testing.T) {
	ps := []pairs.Pair{{Left: 1, Right: 2}, {Left: 3, Right: 4}}
	assert.Equal(t, 0, pairs.Similarity(ps))
}
