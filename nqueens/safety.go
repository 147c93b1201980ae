package nqueens

// IsSafe reports whether a queen may be placed at (row, col) on b, together
// with the ordered list of conflicting queens. Only rows strictly above row
// are inspected — the checker models an incremental top-down placement
// search, not a full-board validator.
//
// Conflicts are discovered in a fixed scan order, so the list is
// deterministic for identical inputs:
//  1. same column, rows [0, row) top to bottom
//  2. upper-left diagonal, walking (row-1, col-1) toward (0, 0)
//  3. upper-right diagonal, walking (row-1, col+1) toward (0, n-1)
//
// IsSafe is a pure function of its inputs and accepts any caller-supplied
// board, so the boundary can validate arbitrary client boards.
// Complexity: O(n) time, O(conflicts) memory.
func IsSafe(b Board, row, col int) (bool, []Cell) {
	n := b.Size()
	conflicts := make([]Cell, 0)

	// 1. Column above
	for i := 0; i < row; i++ {
		if b[i][col] == 1 {
			conflicts = append(conflicts, Cell{Row: i, Col: col})
		}
	}

	// 2. Upper-left diagonal
	for i, j := row-1, col-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if b[i][j] == 1 {
			conflicts = append(conflicts, Cell{Row: i, Col: j})
		}
	}

	// 3. Upper-right diagonal
	for i, j := row-1, col+1; i >= 0 && j < n; i, j = i-1, j+1 {
		if b[i][j] == 1 {
			conflicts = append(conflicts, Cell{Row: i, Col: j})
		}
	}

	return len(conflicts) == 0, conflicts
}
