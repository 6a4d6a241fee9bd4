package db

import "fmt"

// ParseError signals malformed JSON in an existing result file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse result file %q", e.Path)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// HostIDError signals that no host identity could be derived.
type HostIDError struct {
	Err error
}

func (e *HostIDError) Error() string {
	return "cannot determine host id"
}

func (e *HostIDError) Unwrap() error {
	return e.Err
}
