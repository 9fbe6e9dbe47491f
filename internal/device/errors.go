package device

import "fmt"

// Error records which device operation failed and the output adb produced.
type Error struct {
	Op     string
	Output string
	Cause  error
}

func (e *Error) Error() string {
	switch {
	case e.Cause != nil && e.Output != "":
		return fmt.Sprintf("device: %s: %v (output: %q)", e.Op, e.Cause, e.Output)
	case e.Cause != nil:
		return fmt.Sprintf("device: %s: %v", e.Op, e.Cause)
	default:
		return fmt.Sprintf("device: %s: %q", e.Op, e.Output)
	}
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}
