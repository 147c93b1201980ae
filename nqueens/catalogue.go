package nqueens

// solutionCounts is the static catalogue of well-known N-Queens solution
// totals for visualization-friendly board sizes. Built once at process
// start and read-only thereafter; safe for unsynchronized concurrent reads.
var solutionCounts = map[int]int{
	4: 2,
	5: 10,
	6: 4,
	7: 40,
	8: 92,
}

// KnownSolutionCount returns the catalogued total number of solutions for
// an n×n board, or 0 when n is outside the catalogue. The value is a
// static lookup, never derived by running the solver at request time.
// Complexity: O(1).
func KnownSolutionCount(n int) int {
	return solutionCounts[n]
}
