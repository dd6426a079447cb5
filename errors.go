package envspec

import (
	"fmt"
	"strings"
)

// ErrorCode defines string error
type ErrorCode string

// ErrorCode returns error message
func (e ErrorCode) Error() string {
	return string(e)
}

const (
	// ErrRequired indicates that the variable is not set or empty and no default is given
	ErrRequired = ErrorCode("value is required")
	// ErrInvalidNumber indicates that the value is not a finite number
	ErrInvalidNumber = ErrorCode("invalid number")
	// ErrInvalidChoice indicates that the value is not one of the enum choices
	ErrInvalidChoice = ErrorCode("invalid choice")
	// ErrInvalidSpec indicates that the spec itself cannot be used
	ErrInvalidSpec = ErrorCode("invalid spec")
	// ErrLookup indicates that the source failed to provide a value
	ErrLookup = ErrorCode("lookup failed")
)

// Error provides error details
type Error struct {
	VarName string
	Reason  string
	Cause   error
}

func (e Error) Error() string {
	sb := new(strings.Builder)
	sb.WriteString(fmt.Sprintf("variable %q", e.VarName))
	if e.Reason != "" {
		sb.WriteString(" " + e.Reason)
	}
	if e.Cause != nil {
		sb.WriteString(": " + e.Cause.Error())
	}
	return sb.String()
}

func (e Error) Unwrap() error {
	return e.Cause
}
