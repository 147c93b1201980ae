// Package viz is the request/response facade of the visualization backend:
// the five logical operations an HTTP collaborator calls with
// already-decoded plain data, returning JSON-taggable response shapes.
//
// 🚀 What is viz?
//
//	The boundary between the wire and the engines:
//	  • ValidateMove    — conflict check for an interactive placement
//	  • Solve           — step trace up to the k-th N-Queens solution
//	  • SolutionCount   — static catalogue lookup
//	  • Hint            — next valid placement on a partial board
//	  • SearchRabinKarp — instrumented substring search
//
// ✨ Contract:
//   - All operations are pure functions of their declared inputs (modulo
//     the read-only solution catalogue); no persisted state.
//   - Soft failures — invalid move, no hint available — are response
//     fields, never errors.
//   - Out-of-contract inputs (malformed board, out-of-range cell) fail
//     fast with sentinel errors before any engine runs, so the collaborator
//     can map them to a client-error status.
//   - Coordinates are zero-indexed on the wire; display messages are
//     one-indexed.
//
// Routing, CORS and marshaling belong to the external collaborator; this
// package owns only the shapes and the semantics.
package viz
