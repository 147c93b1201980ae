package rabinkarp_test

import (
	"strings"
	"testing"

	"github.com/MagniModi385/Nqueens-RabinKarp/rabinkarp"
)

// BenchmarkSearch measures a visualization-scale search with several
// occurrences and the step trace fully materialized.
func BenchmarkSearch(b *testing.B) {
	text := strings.Repeat("abcab", 20) // 100 chars
	pattern := "abcab"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := rabinkarp.NewMatcher(text, pattern)
		_ = m.Search()
	}
}

// BenchmarkSearch_NoMatches measures the pure sliding cost when the
// pattern never hash-matches.
func BenchmarkSearch_NoMatches(b *testing.B) {
	text := strings.Repeat("abcdefghij", 10)
	pattern := "zzzz"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := rabinkarp.NewMatcher(text, pattern)
		_ = m.Search()
	}
}
