package rabinkarp

import "fmt"

// Matcher runs one Rabin-Karp search over a (text, pattern) pair while
// recording the step trace.
//
// A Matcher carries per-call state (trace, matches) and must be
// instantiated fresh for each request; it is not safe for concurrent use
// and is never meant to be shared.
type Matcher struct {
	text    string
	pattern string
	n, m    int    // len(text), len(pattern)
	steps   []Step // append-only trace
	matches []int  // start indices of verified occurrences
}

// NewMatcher returns a fresh matcher for text and pattern.
func NewMatcher(text, pattern string) *Matcher {
	return &Matcher{
		text:    text,
		pattern: pattern,
		n:       len(text),
		m:       len(pattern),
		steps:   make([]Step, 0),
		matches: make([]int, 0),
	}
}

// Steps returns the accumulated step trace in recording order.
func (m *Matcher) Steps() []Step {
	return m.steps
}

// Matches returns the start indices of verified occurrences, ascending.
func (m *Matcher) Matches() []int {
	return m.matches
}

// hash folds the polynomial hash over s left to right:
// h = (base·h + code(c)) mod prime. The fold direction matters — it is what
// makes the rolling removal of the leading character in Search correct.
func hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (hashBase*h + int(s[i])) % hashPrime
	}

	return h
}

// Search performs the Rabin-Karp scan, recording every decision, and
// returns the ordered match start indices.
//
// Degenerate inputs (empty pattern, or pattern longer than text) yield an
// empty trace and no matches. Identical inputs always replay a
// bit-identical trace.
func (m *Matcher) Search() []int {
	// 1. Degenerate cases: nothing to scan.
	if m.m > m.n || m.m == 0 {
		return m.matches
	}

	// 2. Pattern hash, recorded with the (-1,-1) sentinel window.
	patternHash := hash(m.pattern)
	m.record(Step{
		Type:             StepComputePatternHash,
		WindowStart:      -1,
		WindowEnd:        -1,
		PatternHash:      patternHash,
		WindowHash:       0,
		Message:          fmt.Sprintf("Computing pattern hash: '%s' → %d", m.pattern, patternHash),
		HighlightIndices: make([]int, 0),
	})

	// 3. First window hash over text[0:m].
	windowHash := hash(m.text[:m.m])
	m.record(Step{
		Type:             StepComputeWindowHash,
		WindowStart:      0,
		WindowEnd:        m.m - 1,
		PatternHash:      patternHash,
		WindowHash:       windowHash,
		Message:          fmt.Sprintf("Computing first window hash: '%s' → %d", m.text[:m.m], windowHash),
		HighlightIndices: indexRange(0, m.m),
	})

	// 4. h = base^(m-1) mod prime, the weight of the leading character.
	h := 1
	for i := 0; i < m.m-1; i++ {
		h = (h * hashBase) % hashPrime
	}

	// 5. Slide the window across the text.
	for i := 0; i <= m.n-m.m; i++ {
		m.record(Step{
			Type:             StepCompareHash,
			WindowStart:      i,
			WindowEnd:        i + m.m - 1,
			PatternHash:      patternHash,
			WindowHash:       windowHash,
			Message:          fmt.Sprintf("Comparing hashes: pattern=%d, window=%d", patternHash, windowHash),
			HighlightIndices: indexRange(i, i+m.m),
		})

		if patternHash == windowHash {
			m.record(Step{
				Type:             StepHashMatch,
				WindowStart:      i,
				WindowEnd:        i + m.m - 1,
				PatternHash:      patternHash,
				WindowHash:       windowHash,
				Message:          "Hash match! Verifying characters...",
				HighlightIndices: indexRange(i, i+m.m),
			})

			// Verify character by character: equal hashes may be a
			// collision, not an occurrence.
			if m.text[i:i+m.m] == m.pattern {
				m.matches = append(m.matches, i)
				m.record(Step{
					Type:             StepMatchFound,
					WindowStart:      i,
					WindowEnd:        i + m.m - 1,
					PatternHash:      patternHash,
					WindowHash:       windowHash,
					Message:          fmt.Sprintf("✓ Pattern found at index %d!", i),
					IsMatch:          true,
					HighlightIndices: indexRange(i, i+m.m),
				})
			} else {
				m.record(Step{
					Type:             StepNoMatch,
					WindowStart:      i,
					WindowEnd:        i + m.m - 1,
					PatternHash:      patternHash,
					WindowHash:       windowHash,
					Message:          "Hash collision - characters don't match",
					HighlightIndices: indexRange(i, i+m.m),
				})
			}
		}

		// 6. Roll to the next window: drop text[i], append text[i+m].
		if i < m.n-m.m {
			oldChar := m.text[i]
			newChar := m.text[i+m.m]
			windowHash = (hashBase*(windowHash-int(oldChar)*h) + int(newChar)) % hashPrime
			if windowHash < 0 {
				windowHash += hashPrime
			}

			m.record(Step{
				Type:             StepSlideWindow,
				WindowStart:      i + 1,
				WindowEnd:        i + m.m,
				PatternHash:      patternHash,
				WindowHash:       windowHash,
				Message:          fmt.Sprintf("Sliding window: remove '%c', add '%c' → hash=%d", oldChar, newChar, windowHash),
				HighlightIndices: indexRange(i+1, i+m.m+1),
			})
		}
	}

	return m.matches
}

// record appends a step to the trace.
func (m *Matcher) record(s Step) {
	m.steps = append(m.steps, s)
}

// indexRange returns [lo, hi) as a slice of text indices to highlight.
func indexRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}

	return out
}
