// Package nqueens solves the N-Queens puzzle step by step, producing an
// immutable trace of every placement, backtrack and found solution so a
// front-end animator can replay the search exactly as it happened.
//
// 🚀 What is nqueens?
//
//	A depth-first backtracking solver instrumented for visualization:
//	  • IsSafe — pure conflict checker over any caller-supplied board
//	  • Solver — per-request engine with two modes:
//	      – CountSolutions: exhaustive enumeration (offline catalogue use)
//	      – SolveTrace:     search up to the k-th solution, recording steps
//	  • Hint — proposes the next valid placement on a partial board
//	  • KnownSolutionCount — static catalogue of well-known totals
//
// ✨ Key guarantees:
//   - Deterministic – column-major choice, rows in increasing order; the
//     same (n, target) always yields a bit-identical step sequence
//   - Immutable steps – every Step owns a deep copy of the board taken at
//     record time; later mutation of the live board never leaks backwards
//   - One queen per row – maintained as a search invariant; rows below the
//     frontier stay empty
//
// ⚙️ Usage:
//
//	import "github.com/MagniModi385/Nqueens-RabinKarp/nqueens"
//
//	s, err := nqueens.NewSolver(8)
//	if err != nil { ... }
//	s.SolveTrace(0)              // trace up to the first solution
//	for _, st := range s.Steps() {
//	  fmt.Println(st.Type, st.Message)
//	}
//
// Complexity:
//
//   - Time:   O(N!) worst case for the full search tree; trace mode stops
//     at the target solution.
//   - Memory: O(steps·N²) for the recorded snapshots.
//
// Boards are small by construction (N ≤ 8 in practice), so the trace stays
// human-scale.
package nqueens
