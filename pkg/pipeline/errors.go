package pipeline

import "gitlab.com/tozd/go/errors"

// Error taxonomy. The two input-validation errors are fatal to the call;
// a stage failure is recovered by aborting to the baseline text and never
// crosses the pipeline boundary.
var (
	// ❌ ErrInvalidInput marks empty or whitespace-only input text
	ErrInvalidInput = errors.Base("invalid input text")

	// ❌ ErrInvalidConfig marks out-of-range configuration, detected before
	// any stage runs
	ErrInvalidConfig = errors.Base("invalid configuration")

	// ⚠️ ErrStageUnavailable marks a collaborator failure, recovered locally
	ErrStageUnavailable = errors.Base("stage unavailable")
)
