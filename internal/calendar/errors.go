package calendar

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every failure returned by this package wraps exactly one of
// them and can be matched with errors.Is.
var (
	// ErrOutOfRange reports an argument or a computed result outside the
	// calendar's supported range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidEra reports an era identifier the calendar does not define.
	ErrInvalidEra = errors.New("invalid era")

	// ErrInvalidConfig reports a rejected configuration change.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrReadOnly is returned by Builder setters once Build has been called.
	ErrReadOnly = fmt.Errorf("%w: builder is read-only", ErrInvalidConfig)

	// ErrUnsupported reports an operation the calendar kind does not provide.
	ErrUnsupported = errors.New("operation not supported by calendar")
)

// Error describes a failed calendar operation.
type Error struct {
	Op    string // operation, e.g. "AddMonths"
	Param string // offending parameter, empty when not applicable
	Value int64  // offending value
	Err   error  // one of the sentinel errors
}

func (e *Error) Error() string {
	op := e.Op
	if op == "" {
		op = "calendar"
	}
	if e.Param == "" {
		return fmt.Sprintf("%s: %v", op, e.Err)
	}
	return fmt.Sprintf("%s: %s=%d: %v", op, e.Param, e.Value, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func rangeError(op, param string, value int64) error {
	return &Error{Op: op, Param: param, Value: value, Err: ErrOutOfRange}
}

func eraError(era int) error {
	return &Error{Param: "era", Value: int64(era), Err: ErrInvalidEra}
}

func configError(op, param string, value int64) error {
	return &Error{Op: op, Param: param, Value: value, Err: ErrInvalidConfig}
}

// withOp stamps the public operation name on errors raised by internal helpers.
func withOp(op string, err error) error {
	var e *Error
	if errors.As(err, &e) && e.Op == "" {
		e.Op = op
	}
	return err
}
