// Package pipeline holds the shared data model and the stage abstraction
// used by the compositing pipeline.
package pipeline

import (
	"context"
)

// Stage is one step of the render pipeline: layout, render, or any
// caller-supplied step with the same shape.
type Stage[In, Out any] interface {
	// Execute runs the step for a single input.
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc lets a plain function act as a Stage.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute calls f.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}
