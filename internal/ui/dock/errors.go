package dock

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPane is returned for a pane name that is not in the tree.
	ErrUnknownPane = errors.New("unknown pane")

	// ErrWindowCreate is returned when the window factory cannot create a floating window.
	ErrWindowCreate = errors.New("floating window creation failed")

	// ErrClosed is returned by operations on a closed layout.
	ErrClosed = errors.New("layout is closed")

	// ErrUnknownContainer is returned for a container key that is not in the tree.
	ErrUnknownContainer = errors.New("unknown container")
)

// PaneError records the operation and pane an error happened on.
type PaneError struct {
	Op   string
	Name string
	Err  error
}

func (e *PaneError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
}

func (e *PaneError) Unwrap() error {
	return e.Err
}

func paneError(op, name string, err error) error {
	return &PaneError{Op: op, Name: name, Err: err}
}
