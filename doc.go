// Package advent bundles small, self-contained Advent of Code 2024 solvers —
// each day a pure function from puzzle text to integer answers, plus a tiny
// shared input scanner.
//
// 🚀 What is advent?
//
//	A compact library of daily puzzle kernels:
//		• Shared scanning: lines of whitespace-separated unsigned integers,
//		  with positional parse errors you can actually act on
//		• Day 1: location-ID pair lists — total distance & similarity score
//		• Day 2: reactor reports — tolerant monotonicity checking via an
//		  NFA-style frontier search, plus safe-report aggregation
//		• A thin CLI harness: run solvers, verify answers, fetch inputs
//
// ✨ Why this shape?
//
//   - Pure functions – every solver is text in, integers out; no hidden state
//   - Independent days – reports evaluate one at a time, in any order, and
//     the aggregator can fan out across goroutines when you ask it to
//   - Honest errors – exactly one parse error kind, carrying line, field and
//     offending token; the checker itself never fails, it only decides
//
// Under the hood, everything is organized per concern:
//
//	parse/      — shared text scanning: Rows, Pairs, positional Error
//	pairs/      — day 1: Pair, TotalDistance, Similarity
//	reports/    — day 2: Report, Safety, Check, CountSafe
//	cmd/advent/ — run | verify | fetch harness around the packages above
//
// Quick example:
//
//	rs, _ := reports.Parse("7 6 4 2 1\n1 3 2 4 5")
//	reports.CountSafe(rs, reports.Strict)  // 1
//	reports.CountSafe(rs, reports.SkipOne) // 2
//
// Dive into each package's doc.go for the full contract, complexity notes,
// and worked examples.
//
//	go get github.com/katalvlaran/advent
package advent
