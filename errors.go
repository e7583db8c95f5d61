package minigrep

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientArguments is matched by every *ArgsError.
	ErrInsufficientArguments = errors.New("not enough arguments")

	// ErrInvalidText is wrapped by a *ReadError when file contents are not
	// valid UTF-8.
	ErrInvalidText = errors.New("contents are not valid UTF-8 text")
)

// ArgsError reports that fewer positional arguments were supplied than a
// Config needs.
type ArgsError struct {
	Got  int
	Want int
}

func (e *ArgsError) Error() string {
	return fmt.Sprintf("%s: got %d, need at least %d (usage: minigrep QUERY PATH)",
		ErrInsufficientArguments, e.Got, e.Want)
}

func (e *ArgsError) Is(target error) bool {
	return target == ErrInsufficientArguments
}

// ReadError reports that the target file could not be loaded as text.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
