// Package viz defines the response shapes and sentinel errors of the
// request boundary.
package viz

import (
	"errors"

	"github.com/MagniModi385/Nqueens-RabinKarp/nqueens"
	"github.com/MagniModi385/Nqueens-RabinKarp/rabinkarp"
)

// Sentinel errors for boundary validation. The engines themselves assume
// well-formed input; these reject a request before any engine runs.
var (
	// ErrBoardShape indicates a board that is not n×n or holds a value
	// other than 0 or 1.
	ErrBoardShape = errors.New("viz: board must be an n×n grid of 0/1 cells")

	// ErrCellOutOfRange indicates a row or column outside [0, n).
	ErrCellOutOfRange = errors.New("viz: cell coordinates out of range")
)

// ValidateResponse reports whether a candidate placement is legal.
// An illegal move is a soft failure: Valid is false and Conflicts lists the
// threatening queens, but no error is raised.
type ValidateResponse struct {
	Valid     bool           `json:"valid"`
	Message   string         `json:"message"`
	Conflicts []nqueens.Cell `json:"conflicts"`
}

// SolveResponse carries the full step trace up to the requested solution.
// CurrentSolution is 1-indexed for display; TotalSolutions comes from the
// static catalogue, not from the search.
type SolveResponse struct {
	Steps           []nqueens.Step `json:"steps"`
	TotalSolutions  int            `json:"total_solutions"`
	CurrentSolution int            `json:"current_solution"`
}

// SolutionCountResponse echoes n with its catalogued solution total.
type SolutionCountResponse struct {
	N              int `json:"n"`
	TotalSolutions int `json:"total_solutions"`
}

// HintResponse reports the next proposed placement; see nqueens.HintResult
// for the three no-hint cases.
type HintResponse = nqueens.HintResult

// RKSearchResponse carries the Rabin-Karp step trace and verified match
// positions, echoing the inputs back for the animator.
type RKSearchResponse struct {
	Steps   []rabinkarp.Step `json:"steps"`
	Matches []int            `json:"matches"`
	Text    string           `json:"text"`
	Pattern string           `json:"pattern"`
}
