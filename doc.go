// Package stepviz is an educational visualization backend for two classic
// algorithms — N-Queens backtracking and Rabin-Karp string matching — exposed
// as deterministic, replayable step traces for a front-end animator.
//
// 🚀 What is stepviz?
//
//	A small, pure-Go library that runs an algorithm to completion while
//	recording every discrete decision it makes:
//		• N-Queens: placements, backtracks, found solutions — with a full
//		  board snapshot attached to every step
//		• Rabin-Karp: hash computations, comparisons, verifications and
//		  window slides — with window bounds and highlight indices
//		• Conflict checking and hints for interactive play
//
// ✨ Why choose stepviz?
//
//   - Deterministic – identical inputs always replay bit-identical traces
//   - Immutable steps – every snapshot is deep-copied at record time
//   - Pure Go – no cgo, no hidden deps
//   - Boundary-friendly – JSON-tagged response shapes ready for any router
//
// Everything is organized under three subpackages:
//
//	nqueens/   — board, conflict checker, step solver, hint engine, catalogue
//	rabinkarp/ — rolling-hash matcher with full step trace
//	viz/       — request/response facade the HTTP collaborator calls
//
// Quick ASCII example (N=4, first solution):
//
//	. ♛ . .
//	. . . ♛
//	♛ . . .
//	. . ♛ .
//
// The HTTP layer itself (routing, CORS, marshaling) is deliberately not part
// of this module; see viz/ for the boundary contract it consumes.
//
//	go get github.com/MagniModi385/Nqueens-RabinKarp
package stepviz
