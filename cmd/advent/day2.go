package main

import (
	"strconv"

	"github.com/katalvlaran/advent/reports"
)

func init() {
	register(2, 1, day2Part1)
	register(2, 2, day2Part2)
}

// day2Part1: count of reports that are safe with no tolerance.
func day2Part1(input string) (string, error) {
	rs, err := reports.Parse(input)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(reports.CountSafe(rs, reports.Strict)), nil
}

// day2Part2: count of reports that become safe once one level may be
// skipped. Reports are independent, so the count fans out across CPUs.
func day2Part2(input string) (string, error) {
	rs, err := reports.Parse(input)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(reports.CountSafeParallel(rs, reports.SkipOne, 0)), nil
}
