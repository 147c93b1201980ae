package viz

import (
	"fmt"
	"strings"

	"github.com/MagniModi385/Nqueens-RabinKarp/nqueens"
	"github.com/MagniModi385/Nqueens-RabinKarp/rabinkarp"
)

// checkBoard rejects a board that is not an n×n grid of 0/1 cells.
// Returns nqueens.ErrBoardSize for n < 1, ErrBoardShape otherwise.
func checkBoard(n int, b nqueens.Board) error {
	if n < 1 {
		return nqueens.ErrBoardSize
	}
	if len(b) != n {
		return fmt.Errorf("%w: got %d rows, want %d", ErrBoardShape, len(b), n)
	}
	for r, row := range b {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrBoardShape, r, len(row), n)
		}
		for c, v := range row {
			if v != 0 && v != 1 {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrBoardShape, r, c, v)
			}
		}
	}

	return nil
}

// checkCell rejects coordinates outside [0, n).
func checkCell(n, row, col int) error {
	if row < 0 || row >= n || col < 0 || col >= n {
		return fmt.Errorf("%w: (%d,%d) on a %d×%d board", ErrCellOutOfRange, row, col, n, n)
	}

	return nil
}

// ValidateMove checks whether placing a queen at (row, col) on board is
// legal. An occupied cell is rejected immediately, before any safety scan;
// otherwise the conflict checker runs and the message lists the threatening
// queens in 1-indexed display coordinates.
//
// Illegal placements are soft failures (Valid=false), never errors; only
// out-of-contract input fails the request.
func ValidateMove(n int, board nqueens.Board, row, col int) (ValidateResponse, error) {
	if err := checkBoard(n, board); err != nil {
		return ValidateResponse{}, err
	}
	if err := checkCell(n, row, col); err != nil {
		return ValidateResponse{}, err
	}

	if board[row][col] == 1 {
		return ValidateResponse{
			Valid:     false,
			Message:   "There's already a queen at this position!",
			Conflicts: make([]nqueens.Cell, 0),
		}, nil
	}

	safe, conflicts := nqueens.IsSafe(board, row, col)
	if safe {
		return ValidateResponse{
			Valid:     true,
			Message:   "Valid move! Queen placed successfully.",
			Conflicts: conflicts,
		}, nil
	}

	desc := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		desc = append(desc, fmt.Sprintf("(%d, %d)", c.Row+1, c.Col+1))
	}

	return ValidateResponse{
		Valid:     false,
		Message:   "Invalid move! Conflicts with queens at: " + strings.Join(desc, ", "),
		Conflicts: conflicts,
	}, nil
}

// Solve runs the step solver up to the requested solution of the n×n
// puzzle. TotalSolutions comes from the static catalogue (0 for an
// uncatalogued n); solutionIndex is clamped into [0, TotalSolutions-1]
// before the search, so an out-of-range request traces the last solution
// instead of exhausting the tree. CurrentSolution is the clamped index
// plus one, for display.
func Solve(n, solutionIndex int) (SolveResponse, error) {
	solver, err := nqueens.NewSolver(n)
	if err != nil {
		return SolveResponse{}, err
	}

	total := nqueens.KnownSolutionCount(n)
	idx := 0
	if total > 0 {
		idx = min(max(solutionIndex, 0), total-1)
	}

	solver.SolveTrace(idx)

	return SolveResponse{
		Steps:           solver.Steps(),
		TotalSolutions:  total,
		CurrentSolution: idx + 1,
	}, nil
}

// SolutionCount returns the catalogued solution total for an n×n board.
// Pure lookup; uncatalogued n reports 0.
func SolutionCount(n int) SolutionCountResponse {
	return SolutionCountResponse{
		N:              n,
		TotalSolutions: nqueens.KnownSolutionCount(n),
	}
}

// Hint proposes the next valid placement on a caller-supplied partial
// board. The board is never mutated.
func Hint(n int, board nqueens.Board) (HintResponse, error) {
	if err := checkBoard(n, board); err != nil {
		return HintResponse{}, err
	}

	return nqueens.Hint(board), nil
}

// SearchRabinKarp runs the instrumented substring search and echoes the
// inputs back alongside the trace. Degenerate inputs yield empty (never
// nil) steps and matches, so they serialize as [].
func SearchRabinKarp(text, pattern string) RKSearchResponse {
	m := rabinkarp.NewMatcher(text, pattern)
	m.Search()

	return RKSearchResponse{
		Steps:   m.Steps(),
		Matches: m.Matches(),
		Text:    text,
		Pattern: pattern,
	}
}
