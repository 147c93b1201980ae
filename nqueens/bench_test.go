package nqueens_test

import (
	"testing"

	"github.com/MagniModi385/Nqueens-RabinKarp/nqueens"
)

// BenchmarkSolveTrace_N8 measures a full trace up to the last catalogued
// solution of the 8×8 board, the heaviest request the boundary can issue.
func BenchmarkSolveTrace_N8(b *testing.B) {
	target := nqueens.KnownSolutionCount(8) - 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := nqueens.NewSolver(8)
		if err != nil {
			b.Fatalf("setup NewSolver failed: %v", err)
		}
		_ = s.SolveTrace(target)
	}
}

// BenchmarkCountSolutions_N8 measures the exhaustive enumeration used to
// regenerate the static catalogue offline.
func BenchmarkCountSolutions_N8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s, err := nqueens.NewSolver(8)
		if err != nil {
			b.Fatalf("setup NewSolver failed: %v", err)
		}
		_ = s.CountSolutions()
	}
}

// BenchmarkIsSafe measures the conflict scan on a half-filled board.
func BenchmarkIsSafe(b *testing.B) {
	board := nqueens.NewBoard(8)
	for r, c := range []int{0, 4, 7, 5} {
		board[r][c] = 1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = nqueens.IsSafe(board, 4, 2)
	}
}
