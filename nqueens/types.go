// Package nqueens defines the board, step and result types shared by the
// conflict checker, the step solver and the hint engine.
package nqueens

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for nqueens operations.
var (
	// ErrBoardSize indicates a requested board side below 1.
	ErrBoardSize = errors.New("nqueens: board size must be at least 1")
)

// StepType tags the kind of decision a recorded step represents.
// Values are the wire strings the animator consumes.
type StepType string

const (
	// StepPlace records a queen placed at (Row, Col).
	StepPlace StepType = "place"
	// StepBacktrack records a queen removed from (Row, Col) after its
	// subtree was exhausted.
	StepBacktrack StepType = "backtrack"
	// StepSolution records a complete board; Row and Col carry the
	// sentinel value -1.
	StepSolution StepType = "solution"
)

// Cell identifies a single board cell by zero-indexed coordinates.
// It marshals as a two-element array [row, col], the animator's tuple shape.
type Cell struct {
	Row int
	Col int
}

// MarshalJSON encodes the cell as [row, col].
func (c Cell) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%d,%d]", c.Row, c.Col)), nil
}

// UnmarshalJSON decodes a [row, col] pair.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("nqueens: cell must be a [row, col] pair: %w", err)
	}
	c.Row, c.Col = pair[0], pair[1]

	return nil
}

// Step is one recorded decision of the solver. Steps form an append-only
// sequence and are never mutated after creation; Board is a snapshot owned
// exclusively by the step.
type Step struct {
	// Type tags the variant: place, backtrack or solution.
	Type StepType `json:"step_type"`

	// Row, Col locate the affected cell; both are -1 for StepSolution.
	Row int `json:"row"`
	Col int `json:"col"`

	// Board is a deep copy of the board at the instant of recording.
	Board Board `json:"board"`

	// Message is the human-readable caption for the animator (1-indexed).
	Message string `json:"message"`
}

// HintResult reports the outcome of the hint engine.
// When HasHint is false, Message explains which of the three no-hint cases
// applies: board complete, malformed prefix, or no safe column.
type HintResult struct {
	// HasHint reports whether a placement is proposed.
	HasHint bool `json:"has_hint"`

	// Row, Col give the proposed cell (zero-indexed); only meaningful
	// when HasHint is true. Kept as plain ints so a legitimate (0,0)
	// hint survives serialization.
	Row int `json:"row"`
	Col int `json:"col"`

	// Message is the human-readable explanation (1-indexed).
	Message string `json:"message"`
}
