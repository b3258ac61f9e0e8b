package deck

import "fmt"

// Code is a machine-readable error code.
type Code string

const (
	// CodeWriteFailure means Save could not write the target path.
	CodeWriteFailure Code = "IO_WRITE_FAILURE"
	// CodeReadFailure means Load could not read the file.
	CodeReadFailure Code = "IO_READ_FAILURE"
	// CodeDecodeFailure means the file content is not an encoded deck.
	CodeDecodeFailure Code = "DECODE_FAILURE"
)

// Sentinels for errors.Is checks. They match any *Error with the same code.
var (
	ErrWriteFailure  = &Error{Code: CodeWriteFailure}
	ErrReadFailure   = &Error{Code: CodeReadFailure}
	ErrDecodeFailure = &Error{Code: CodeDecodeFailure}
)

// Error is returned by Save and Load.
type Error struct {
	Code  Code   // Machine-readable error code
	Path  string // File the operation touched
	Cause error  // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var op string
	switch e.Code {
	case CodeWriteFailure:
		op = "save deck"
	case CodeReadFailure:
		op = "load deck"
	case CodeDecodeFailure:
		op = "decode deck"
	default:
		op = "deck"
	}
	if e.Path != "" {
		op = fmt.Sprintf("%s %s", op, e.Path)
	}
	if e.Cause == nil {
		return op
	}
	return fmt.Sprintf("%s: %v", op, e.Cause)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func wrap(code Code, path string, cause error) *Error {
	return &Error{Code: code, Path: path, Cause: cause}
}
