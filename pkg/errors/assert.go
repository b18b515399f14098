package errors

import (
	"fmt"
	"time"
)

// AssertionError is the panic value raised when a structural invariant of
// the view tree is violated: re-parenting, a maximum smaller than the
// current size, a view of the wrong kind reaching a typed callback.
type AssertionError struct {
	// Op names the check site (e.g., "layout.HStackMeasure").
	Op string
	// Message describes the violated condition.
	Message string
	// StackTrace contains the call stack at the failing check.
	StackTrace string
	// Timestamp is when the check failed.
	Timestamp time.Time
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed in %s: %s", e.Op, e.Message)
}

// Swear panics with an *AssertionError when cond is false.
func Swear(cond bool, op, format string, args ...any) {
	if cond {
		return
	}
	panic(&AssertionError{
		Op:         op,
		Message:    fmt.Sprintf(format, args...),
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// IsAssertion reports whether a recovered value is an assertion failure.
func IsAssertion(r any) bool {
	_, ok := r.(*AssertionError)
	return ok
}
