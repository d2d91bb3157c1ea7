package garmin

import (
	"fmt"

	"github.com/pkg/errors"
)

// StatusError is a non-2xx response from the backend. Transport failures
// are returned as wrapped plain errors; only HTTP-level failures carry a
// status code.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d for %s", e.Code, e.Path)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
