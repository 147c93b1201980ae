package nqueens

import "fmt"

// Hint inspects a partial board and proposes the next valid placement.
// The board is a caller-provided snapshot; Hint never mutates it.
//
// Resolution order:
//  1. The target row is the first row (ascending) holding no queen. If
//     every row has one, there is nothing left to place.
//  2. Every row above the target must hold exactly one queen; the first
//     offending row is reported otherwise (1-indexed).
//  3. Columns are scanned left to right; the first safe one is the hint.
//  4. With no safe column, the caller is advised to backtrack.
//
// Complexity: O(n²).
func Hint(b Board) HintResult {
	n := b.Size()

	// 1. Locate the first empty row.
	targetRow := -1
	for row := 0; row < n; row++ {
		if b.QueensInRow(row) == 0 {
			targetRow = row
			break
		}
	}
	if targetRow == -1 {
		return HintResult{
			HasHint: false,
			Message: "All queens are placed! Check if it's a valid solution.",
		}
	}

	// 2. Validate the prefix: exactly one queen per earlier row.
	for row := 0; row < targetRow; row++ {
		if b.QueensInRow(row) != 1 {
			return HintResult{
				HasHint: false,
				Message: fmt.Sprintf(
					"Row %d needs exactly one queen before placing in row %d.",
					row+1, targetRow+1),
			}
		}
	}

	// 3. First safe column wins.
	for col := 0; col < n; col++ {
		if safe, _ := IsSafe(b, targetRow, col); safe {
			return HintResult{
				HasHint: true,
				Row:     targetRow,
				Col:     col,
				Message: fmt.Sprintf(
					"Try placing a queen at row %d, column %d.",
					targetRow+1, col+1),
			}
		}
	}

	// 4. Dead end in the target row.
	return HintResult{
		HasHint: false,
		Message: "No valid moves in current row. You may need to backtrack!",
	}
}
