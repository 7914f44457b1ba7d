package domain

import "fmt"

// ValidationError reports a malformed or self-contradictory input grid.
// It is returned before any solving step is produced.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid puzzle: " + e.Reason
}

// Invalidf builds a ValidationError with a formatted reason.
func Invalidf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
