package nqueens_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MagniModi385/Nqueens-RabinKarp/nqueens"
)

// queenColumns extracts the queen column of each row, -1 for an empty row.
func queenColumns(b nqueens.Board) []int {
	cols := make([]int, b.Size())
	for r := range b {
		cols[r] = -1
		for c, v := range b[r] {
			if v == 1 {
				cols[r] = c
				break
			}
		}
	}

	return cols
}

// assertValidSolution checks n queens, one per row and column, none sharing
// a diagonal.
func assertValidSolution(t *testing.T, b nqueens.Board) {
	t.Helper()
	n := b.Size()
	cols := queenColumns(b)
	seen := make(map[int]bool, n)
	for r, c := range cols {
		require.NotEqual(t, -1, c, "row %d must hold a queen", r)
		require.Equal(t, 1, b.QueensInRow(r), "row %d must hold exactly one queen", r)
		require.False(t, seen[c], "column %d reused", c)
		seen[c] = true
		for r2 := 0; r2 < r; r2++ {
			d := r - r2
			require.NotEqual(t, cols[r2]+d, c, "diagonal clash rows %d,%d", r2, r)
			require.NotEqual(t, cols[r2]-d, c, "diagonal clash rows %d,%d", r2, r)
		}
	}
}

func TestNewSolver_BadSize(t *testing.T) {
	s, err := nqueens.NewSolver(0)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, nqueens.ErrBoardSize)
}

func TestSolveTrace_FirstSolutionN4(t *testing.T) {
	s, err := nqueens.NewSolver(4)
	require.NoError(t, err)

	stopped := s.SolveTrace(0)
	assert.True(t, stopped)
	assert.Equal(t, 1, s.SolutionsFound())

	steps := s.Steps()
	require.Len(t, steps, 13)

	// The exact decision sequence of the column-major search.
	wantTypes := []nqueens.StepType{
		nqueens.StepPlace, nqueens.StepPlace, nqueens.StepBacktrack,
		nqueens.StepPlace, nqueens.StepPlace, nqueens.StepBacktrack,
		nqueens.StepBacktrack, nqueens.StepBacktrack,
		nqueens.StepPlace, nqueens.StepPlace, nqueens.StepPlace,
		nqueens.StepPlace, nqueens.StepSolution,
	}
	for i, st := range steps {
		assert.Equal(t, wantTypes[i], st.Type, "step %d", i)
	}

	first := steps[0]
	assert.Equal(t, 0, first.Row)
	assert.Equal(t, 0, first.Col)
	assert.Equal(t, "Placing queen at row 1, column 1", first.Message)

	last := steps[len(steps)-1]
	assert.Equal(t, nqueens.StepSolution, last.Type)
	assert.Equal(t, -1, last.Row)
	assert.Equal(t, -1, last.Col)
	assert.Equal(t, "Solution #1 found!", last.Message)

	// First solution of N=4 in column-major order.
	assert.Equal(t, []int{1, 3, 0, 2}, queenColumns(last.Board))
	assertValidSolution(t, last.Board)

	// The stop propagated without undoing: the live board still holds it.
	assert.Equal(t, []int{1, 3, 0, 2}, queenColumns(s.Board()))
}

func TestSolveTrace_SecondSolutionN4(t *testing.T) {
	s, err := nqueens.NewSolver(4)
	require.NoError(t, err)

	stopped := s.SolveTrace(1)
	assert.True(t, stopped)
	assert.Equal(t, 2, s.SolutionsFound())

	steps := s.Steps()
	require.Len(t, steps, 22)

	// The search runs past solution #1 (step 13) and stops at #2.
	assert.Equal(t, nqueens.StepSolution, steps[12].Type)
	assert.Equal(t, "Solution #1 found!", steps[12].Message)
	assert.Equal(t, nqueens.StepSolution, steps[21].Type)
	assert.Equal(t, "Solution #2 found!", steps[21].Message)

	assert.Equal(t, []int{2, 0, 3, 1}, queenColumns(steps[21].Board))
	assertValidSolution(t, steps[21].Board)
}

func TestSolveTrace_TargetBeyondLastExhausts(t *testing.T) {
	s, err := nqueens.NewSolver(4)
	require.NoError(t, err)

	stopped := s.SolveTrace(99)
	assert.False(t, stopped, "unreachable target must exhaust the tree")
	assert.Equal(t, 2, s.SolutionsFound())

	steps := s.Steps()
	assert.Len(t, steps, 34)

	// Exhausted search unwinds completely.
	last := steps[len(steps)-1]
	assert.Equal(t, nqueens.StepBacktrack, last.Type)
	assert.Equal(t, 0, last.Row)
	for r := 0; r < 4; r++ {
		assert.Equal(t, 0, s.Board().QueensInRow(r))
	}
}

func TestSolveTrace_SnapshotsAreImmutable(t *testing.T) {
	s, err := nqueens.NewSolver(4)
	require.NoError(t, err)
	s.SolveTrace(0)

	steps := s.Steps()
	// The first PLACE snapshot has exactly one queen, at (0,0), even
	// though the live board later moved on.
	snap := steps[0].Board
	assert.Equal(t, 1, snap[0][0])
	total := 0
	for r := 0; r < 4; r++ {
		total += snap.QueensInRow(r)
	}
	assert.Equal(t, 1, total, "early snapshot must not see later placements")

	// Mutating a returned snapshot must not corrupt a neighboring one.
	snap[3][3] = 1
	assert.Equal(t, 0, steps[1].Board[3][3])
}

func TestSolveTrace_EverySolutionEveryN(t *testing.T) {
	for n := 4; n <= 8; n++ {
		total := nqueens.KnownSolutionCount(n)
		for target := 0; target < total; target++ {
			s, err := nqueens.NewSolver(n)
			require.NoError(t, err)

			stopped := s.SolveTrace(target)
			require.True(t, stopped, "n=%d target=%d", n, target)

			steps := s.Steps()
			require.NotEmpty(t, steps)
			last := steps[len(steps)-1]
			require.Equal(t, nqueens.StepSolution, last.Type,
				"n=%d target=%d must end on its solution step", n, target)
			assertValidSolution(t, last.Board)

			// Exactly target+1 solution steps in the trace.
			count := 0
			for _, st := range steps {
				if st.Type == nqueens.StepSolution {
					count++
				}
			}
			require.Equal(t, target+1, count, "n=%d target=%d", n, target)
		}
	}
}

func TestSolveTrace_FirstSolutionN8(t *testing.T) {
	s, err := nqueens.NewSolver(8)
	require.NoError(t, err)

	assert.True(t, s.SolveTrace(0))
	steps := s.Steps()
	assert.Len(t, steps, 219)
	assert.Equal(t, []int{0, 4, 7, 5, 2, 6, 1, 3},
		queenColumns(steps[len(steps)-1].Board))
}

func TestSolveTrace_Deterministic(t *testing.T) {
	a, err := nqueens.NewSolver(6)
	require.NoError(t, err)
	b, err := nqueens.NewSolver(6)
	require.NoError(t, err)

	a.SolveTrace(2)
	b.SolveTrace(2)
	assert.Equal(t, a.Steps(), b.Steps(), "identical inputs must replay identically")
}

func TestCountSolutions_RecordsNoSteps(t *testing.T) {
	s, err := nqueens.NewSolver(5)
	require.NoError(t, err)

	total := s.CountSolutions()
	assert.Equal(t, 10, total)
	assert.Empty(t, s.Steps(), "exhaustive mode must not record steps")
	assert.Len(t, s.Solutions(), 10)
	for _, b := range s.Solutions() {
		assertValidSolution(t, b)
	}
}

func TestCountSolutions_SmallBoards(t *testing.T) {
	want := map[int]int{1: 1, 2: 0, 3: 0, 4: 2, 5: 10, 6: 4, 7: 40, 8: 92}
	for n, total := range want {
		s, err := nqueens.NewSolver(n)
		require.NoError(t, err)
		assert.Equal(t, total, s.CountSolutions(), "n=%d", n)
	}
}
