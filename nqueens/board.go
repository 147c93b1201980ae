package nqueens

// Board is a square 0/1 grid: 0 marks an empty cell, 1 a queen.
// During search the solver maintains at most one queen per row, and every
// row below the search frontier stays all-empty.
type Board [][]int

// NewBoard allocates an empty n×n board.
// Complexity: O(n²) time and memory.
func NewBoard(n int) Board {
	b := make(Board, n)
	for i := range b {
		b[i] = make([]int, n)
	}

	return b
}

// Size returns the board side length.
// Complexity: O(1).
func (b Board) Size() int {
	return len(b)
}

// Clone returns a deep copy of the board. Every recorded step owns such a
// copy; the live board is never aliased into step history.
// Complexity: O(n²).
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for i, row := range b {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}

	return out
}

// QueensInRow counts queens present in row r.
// Complexity: O(n).
func (b Board) QueensInRow(r int) int {
	count := 0
	for _, v := range b[r] {
		if v == 1 {
			count++
		}
	}

	return count
}
