// Package nqueens implements the instrumented N-Queens backtracking solver.
// See doc.go for the package overview.
package nqueens

import "fmt"

// searchOutcome signals how a recursive branch finished: continue scanning
// siblings, or stop because the target solution has been materialized.
// Stopping is ordinary control flow, never an error.
type searchOutcome bool

const (
	searchContinue searchOutcome = false
	searchStop     searchOutcome = true
)

// Solver runs depth-first backtracking over an N×N board while recording a
// step for every placement, backtrack and found solution.
//
// A Solver carries per-call state (live board, accumulated steps, counters)
// and must be instantiated fresh for each request; it is not safe for
// concurrent use and is never meant to be shared.
type Solver struct {
	n         int     // board side length
	board     Board   // live working board, mutated during search
	steps     []Step  // append-only trace
	found     int     // solutions found so far
	solutions []Board // complete boards collected in exhaustive mode
}

// NewSolver returns a fresh solver for an n×n board.
// Returns ErrBoardSize if n < 1.
func NewSolver(n int) (*Solver, error) {
	if n < 1 {
		return nil, ErrBoardSize
	}

	return &Solver{
		n:     n,
		board: NewBoard(n),
		steps: make([]Step, 0),
	}, nil
}

// Steps returns the accumulated step trace in recording order.
// The returned slice and its snapshots are never mutated by the solver.
func (s *Solver) Steps() []Step {
	return s.steps
}

// SolutionsFound returns how many complete solutions the last search
// materialized.
func (s *Solver) SolutionsFound() int {
	return s.found
}

// Solutions returns the complete boards collected by CountSolutions,
// in discovery order. Empty unless exhaustive mode has run.
func (s *Solver) Solutions() []Board {
	return s.solutions
}

// Board returns the live working board. After a stopped trace it holds the
// target solution; after an exhausted search it is empty again.
func (s *Solver) Board() Board {
	return s.board
}

// CountSolutions enumerates every solution without recording steps and
// returns the total. Each complete board is collected and retrievable via
// Solutions. This exhaustive mode is not used by the request boundary
// (totals come from the static catalogue); it exists to generate and
// validate that catalogue offline.
// Complexity: O(N!) worst case.
func (s *Solver) CountSolutions() int {
	return s.countFrom(0)
}

// countFrom recurses through rows [row, n), returning the number of
// complete boards reachable from the current prefix.
func (s *Solver) countFrom(row int) int {
	if row == s.n {
		s.solutions = append(s.solutions, s.board.Clone())

		return 1
	}

	count := 0
	for col := 0; col < s.n; col++ {
		if safe, _ := IsSafe(s.board, row, col); safe {
			s.board[row][col] = 1
			count += s.countFrom(row + 1)
			s.board[row][col] = 0
		}
	}

	return count
}

// SolveTrace searches depth-first for the target-th solution (zero-based),
// recording a step at every placement, backtrack and found solution.
// It returns true when the search stopped at the target, false when every
// branch was exhausted first (target beyond the true solution count; the
// trace then holds the full exhaustive search).
//
// The search runs past earlier solutions — each still gets its SOLUTION
// step — and halts immediately after materializing the requested one. On
// stop the placements of the target solution remain on the live board and
// no backtrack steps are recorded on the way out.
func (s *Solver) SolveTrace(target int) bool {
	return s.solveFrom(target, 0) == searchStop
}

// solveFrom places a queen in each safe column of row and recurses.
// The stop signal propagates upward through ordinary returns.
func (s *Solver) solveFrom(target, row int) searchOutcome {
	// 1. Complete board: record the solution, stop once the target index
	//    has been reached or passed.
	if row == s.n {
		s.found++
		s.record(StepSolution, -1, -1, fmt.Sprintf("Solution #%d found!", s.found))

		if s.found > target {
			return searchStop
		}

		return searchContinue
	}

	// 2. Column-major choice within the row.
	for col := 0; col < s.n; col++ {
		safe, _ := IsSafe(s.board, row, col)
		if !safe {
			continue
		}

		s.board[row][col] = 1
		s.record(StepPlace, row, col,
			fmt.Sprintf("Placing queen at row %d, column %d", row+1, col+1))

		if s.solveFrom(target, row+1) == searchStop {
			// Propagate without undoing: the target solution's
			// placements stay on the board and in the trace.
			return searchStop
		}

		s.board[row][col] = 0
		s.record(StepBacktrack, row, col,
			fmt.Sprintf("Backtracking from row %d, column %d", row+1, col+1))
	}

	return searchContinue
}

// record appends a step owning a deep copy of the live board.
func (s *Solver) record(t StepType, row, col int, msg string) {
	s.steps = append(s.steps, Step{
		Type:    t,
		Row:     row,
		Col:     col,
		Board:   s.board.Clone(),
		Message: msg,
	})
}
