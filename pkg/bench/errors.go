package bench

import "fmt"

// RunError signals a benchmark command that exited with a failure.
type RunError struct {
	Name   string
	Output string
	Err    error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("benchmark %q failed", e.Name)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
