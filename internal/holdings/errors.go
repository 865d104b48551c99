package holdings

import "fmt"

// ErrorKind categorises loader failures.
type ErrorKind string

const (
	// KindMissingResource indicates the holdings file does not exist.
	KindMissingResource ErrorKind = "missing_resource"
	// KindMalformedInput indicates the file exists but its header or a row
	// is invalid.
	KindMalformedInput ErrorKind = "malformed_input"
)

// LoadError is a structured error from the holdings loader. Both kinds are
// fatal for a run: no output can be produced without a valid holdings list.
type LoadError struct {
	Kind    ErrorKind
	Path    string
	Line    int
	Message string
	Cause   error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s:%d: %s", e.Kind, e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *LoadError) Unwrap() error {
	return e.Cause
}

func newMissingResource(path string, cause error) *LoadError {
	return &LoadError{
		Kind:    KindMissingResource,
		Path:    path,
		Message: "holdings file not found",
		Cause:   cause,
	}
}

func newMalformedInput(path string, line int, message string, cause error) *LoadError {
	return &LoadError{
		Kind:    KindMalformedInput,
		Path:    path,
		Line:    line,
		Message: message,
		Cause:   cause,
	}
}
