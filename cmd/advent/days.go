package main

import (
	"fmt"
	"sort"
)

// solveFunc turns one day's raw puzzle input into a printable answer.
type solveFunc func(input string) (string, error)

// partKey addresses a single part of a single day.
type partKey struct {
	day  int
	part int
}

// solvers is the explicit dispatch table. Every dayN.go file registers its
// parts from init(); there is no reflection and no directory scanning.
var solvers = map[partKey]solveFunc{}

// register adds one part's solver; duplicate registration is a programming
// error, so it panics at startup rather than shadowing silently.
func register(day, part int, fn solveFunc) {
	k := partKey{day: day, part: part}
	if _, dup := solvers[k]; dup {
		panic(fmt.Sprintf("duplicate solver for day %d part %d", day, part))
	}
	solvers[k] = fn
}

// lookup returns the solver for one part, if registered.
func lookup(day, part int) (solveFunc, bool) {
	fn, ok := solvers[partKey{day: day, part: part}]

	return fn, ok
}

// partsOf lists the registered parts of a day in ascending order.
func partsOf(day int) []int {
	var parts []int
	for k := range solvers {
		if k.day == day {
			parts = append(parts, k.part)
		}
	}
	sort.Ints(parts)

	return parts
}
