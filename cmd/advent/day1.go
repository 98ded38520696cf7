package main

import (
	"strconv"

	"github.com/katalvlaran/advent/pairs"
)

func init() {
	register(1, 1, day1Part1)
	register(1, 2, day1Part2)
}

// day1Part1: total distance between the ranked location-ID columns.
func day1Part1(input string) (string, error) {
	ps, err := pairs.Parse(input)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(pairs.TotalDistance(ps)), nil
}

// day1Part2: similarity score of the left column against the right.
func day1Part2(input string) (string, error) {
	ps, err := pairs.Parse(input)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(pairs.Similarity(ps)), nil
}
