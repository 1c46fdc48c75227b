package generator

import "fmt"

type Stage string

const (
	StageFetch     Stage = "fetch"
	StageTransform Stage = "transform"
	StageSerialize Stage = "serialize"
)

// GenerationFailure is the single error kind surfaced to the endpoint.
// Every stage is handled the same way; Stage is kept for the log line.
type GenerationFailure struct {
	Stage Stage
	Err   error
}

func Fail(stage Stage, err error) error {
	return &GenerationFailure{Stage: stage, Err: err}
}

func (e *GenerationFailure) Error() string {
	return fmt.Sprintf("feed generation failed at %s: %v", e.Stage, e.Err)
}

func (e *GenerationFailure) Unwrap() error {
	return e.Err
}

func (e *GenerationFailure) Cause() error {
	return e.Err
}
