package nqueens_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MagniModi385/Nqueens-RabinKarp/nqueens"
)

func TestKnownSolutionCount(t *testing.T) {
	assert.Equal(t, 2, nqueens.KnownSolutionCount(4))
	assert.Equal(t, 10, nqueens.KnownSolutionCount(5))
	assert.Equal(t, 4, nqueens.KnownSolutionCount(6))
	assert.Equal(t, 40, nqueens.KnownSolutionCount(7))
	assert.Equal(t, 92, nqueens.KnownSolutionCount(8))
}

func TestKnownSolutionCount_UncataloguedIsZero(t *testing.T) {
	assert.Equal(t, 0, nqueens.KnownSolutionCount(3))
	assert.Equal(t, 0, nqueens.KnownSolutionCount(9))
	assert.Equal(t, 0, nqueens.KnownSolutionCount(-1))
}

// TestCatalogue_MatchesExhaustiveSearch regenerates the static table with
// the solver's exhaustive mode, the catalogue's offline provenance.
func TestCatalogue_MatchesExhaustiveSearch(t *testing.T) {
	for n := 4; n <= 8; n++ {
		s, err := nqueens.NewSolver(n)
		require.NoError(t, err)
		assert.Equal(t, nqueens.KnownSolutionCount(n), s.CountSolutions(), "n=%d", n)
	}
}
