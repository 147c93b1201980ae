// Package rabinkarp performs Rabin-Karp substring search while recording
// every hash computation, comparison, verification and window slide as a
// discrete step, so a front-end animator can replay the algorithm's exact
// decisions.
//
// 🚀 What is rabinkarp?
//
//	A rolling-hash matcher instrumented for visualization:
//	  • polynomial hash h = (base·h + code(c)) mod prime, folded left to
//	    right over byte codes
//	  • constant-time window slide: drop the leading character's
//	    contribution, shift, add the new trailing character
//	  • character-by-character verification on every hash match, so hash
//	    collisions are surfaced as their own step
//
// ✨ Key guarantees:
//   - Deterministic – identical (text, pattern) inputs replay bit-identical
//     step sequences, hash values and match lists
//   - Fixed arithmetic – base 256 and prime 101 are engine-internal
//     constants chosen for human-followable numbers, not overridable
//   - Degenerate safety – an empty pattern, or one longer than the text,
//     yields an empty trace and no matches
//
// ⚙️ Usage:
//
//	import "github.com/MagniModi385/Nqueens-RabinKarp/rabinkarp"
//
//	m := rabinkarp.NewMatcher("abcabcabc", "abc")
//	matches := m.Search() // [0 3 6]
//	for _, st := range m.Steps() {
//	  fmt.Println(st.Type, st.Message)
//	}
//
// Complexity:
//
//   - Time:   O(n + m) expected, O(n·m) with pathological collisions.
//   - Memory: O(steps·m) for the recorded highlight ranges.
//
// Inputs are visualization-scale (tens of characters), so the full trace is
// materialized before returning.
package rabinkarp
