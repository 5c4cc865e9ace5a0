package pipeline

import (
	"errors"
	"fmt"
)

// ErrEmptyPipeline indicates a run without stages or without seeds.
var ErrEmptyPipeline = errors.New("empty pipeline")

// EmptyPipelineError names the missing input of a run.
type EmptyPipelineError struct {
	// Missing is "stages" or "seeds".
	Missing string
}

func (e *EmptyPipelineError) Error() string {
	return fmt.Sprintf("empty pipeline: no %s given", e.Missing)
}

func (e *EmptyPipelineError) Unwrap() error {
	return ErrEmptyPipeline
}
