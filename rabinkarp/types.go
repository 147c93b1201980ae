// Package rabinkarp defines the step types recorded by the rolling-hash
// matcher and the fixed hash parameters it uses.
package rabinkarp

// Hash parameters. Small and deterministic so the animated arithmetic stays
// human-followable; collision-minimization is a non-goal. Engine-internal:
// callers may not override them.
const (
	// hashBase is the polynomial hash multiplier.
	hashBase = 256
	// hashPrime is the hash modulus.
	hashPrime = 101
)

// StepType tags the kind of decision a recorded step represents.
// Values are the wire strings the animator consumes.
type StepType string

const (
	// StepComputePatternHash records the one-time pattern hash. Its window
	// bounds carry the sentinel (-1, -1): no text window is involved yet.
	StepComputePatternHash StepType = "compute_pattern_hash"
	// StepComputeWindowHash records the hash of the first text window.
	StepComputeWindowHash StepType = "compute_window_hash"
	// StepCompareHash records a pattern-hash vs window-hash comparison.
	StepCompareHash StepType = "compare_hash"
	// StepHashMatch records equal hashes, before character verification.
	StepHashMatch StepType = "hash_match"
	// StepVerifyMatch marks character-by-character verification. Reserved
	// for the animator's vocabulary; the matcher folds verification into
	// StepMatchFound / StepNoMatch.
	StepVerifyMatch StepType = "verify_match"
	// StepMatchFound records a verified occurrence of the pattern.
	StepMatchFound StepType = "match_found"
	// StepNoMatch records a hash collision refuted by verification.
	StepNoMatch StepType = "no_match"
	// StepSlideWindow records the rolling-hash shift to the next window.
	StepSlideWindow StepType = "slide_window"
)

// Step is one recorded decision of the matcher. Steps form an append-only
// sequence and are never mutated after creation.
type Step struct {
	// Type tags the variant.
	Type StepType `json:"step_type"`

	// WindowStart, WindowEnd bound the current text window, both
	// inclusive and zero-indexed; (-1, -1) for the pattern-hash step.
	WindowStart int `json:"window_start"`
	WindowEnd   int `json:"window_end"`

	// PatternHash, WindowHash are the hash values at this instant.
	PatternHash int `json:"pattern_hash"`
	WindowHash  int `json:"window_hash"`

	// Message is the human-readable caption for the animator.
	Message string `json:"message"`

	// IsMatch is true only on StepMatchFound.
	IsMatch bool `json:"is_match"`

	// HighlightIndices lists the text indices the animator should light
	// up for this step.
	HighlightIndices []int `json:"highlight_indices"`
}
