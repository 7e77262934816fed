package batch

import "fmt"

// PanicError reports a parse that panicked. The panic is contained to its
// document.
type PanicError struct {
	Path  string
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("parsing '%s' panicked: %v", e.Path, e.Value)
}
