// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
)

// ErrorCode classifies failures across the pipeline
// Values are stable; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodeInvalidArgument is for bad CLI input or unsupported file types
	ErrorCodeInvalidArgument

	// ErrorCodeNotFound is for missing input files
	ErrorCodeNotFound

	// ErrorCodeIO is for read, write and decompression failures
	ErrorCodeIO

	// ErrorCodeJSON is for malformed JSON input
	ErrorCodeJSON

	// ErrorCodeCSV is for malformed CSV input
	ErrorCodeCSV

	// ErrorCodeValidation is for missing or unparseable record fields
	ErrorCodeValidation

	// ErrorCodeTimezone is for timezone names the tz database does not know
	ErrorCodeTimezone

	// ErrorCodeEmptyDataset is for aggregators that need at least one record
	ErrorCodeEmptyDataset
)

var codeNames = map[ErrorCode]string{
	ErrorCodeUnknown:         "unknown",
	ErrorCodeInvalidArgument: "invalid_argument",
	ErrorCodeNotFound:        "not_found",
	ErrorCodeIO:              "io",
	ErrorCodeJSON:            "json",
	ErrorCodeCSV:             "csv",
	ErrorCodeValidation:      "validation",
	ErrorCodeTimezone:        "timezone",
	ErrorCodeEmptyDataset:    "empty_dataset",
}

// String returns the stable name of the code, used as a log field
func (c ErrorCode) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// ExitCode turns an ErrorCode into a process exit status
func ExitCode(c ErrorCode) int {
	switch c {
	case ErrorCodeInvalidArgument:
		return 2
	default:
		return 1
	}
}

// ErrEmptyDataset is the sentinel returned by aggregators fed no records
var ErrEmptyDataset = New(ErrorCodeEmptyDataset, "dataset is empty")

// Error is the structured error type with wrapping and metadata
// msg is human/developer facing; code is machine facing
// field is optional (offending input field); op is optional stage tag
// orig is the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Is matches another *Error by code and message so sentinels survive WithOp copies
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.code == t.code && e.msg == t.msg && t.orig == nil
}

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the stage label, if set
func (e *Error) Op() string { return e.op }

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// OpOf returns the outermost stage label found on err
func OpOf(err error) string {
	if e, ok := As(err); ok {
		return e.op
	}
	return ""
}

// ExitCodeOf returns the exit status for any error; nil maps to 0
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	return ExitCode(CodeOf(err))
}

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Mutators (copy-on-write)

// WithField attaches a field to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches a stage label to an *Error (copy-on-write)
// Foreign errors are wrapped with the Unknown code so the label is never lost
func WithOp(err error, op string) error {
	if err == nil {
		return nil
	}
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return &Error{code: ErrorCodeUnknown, msg: op, op: op, orig: err}
}

// Constructors

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only when err != nil (helper for 1-liners)
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// Sugar

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf returns an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// JSONErrf returns a JSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// CSVErrf returns a CSV error
func CSVErrf(format string, a ...any) error { return Newf(ErrorCodeCSV, format, a...) }

// Validationf returns a validation error
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// Timezonef returns a timezone error
func Timezonef(format string, a ...any) error { return Newf(ErrorCodeTimezone, format, a...) }
