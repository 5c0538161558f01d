package app

import (
	"errors"
	"fmt"

	"github.com/godwinstewart/lifheader/internal/types"
)

// CommonError represents application-level errors
type CommonError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CommonError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CommonError) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeNoAction         = "NO_ACTION"
	ErrCodeUnknownAction    = "UNKNOWN_ACTION"
	ErrCodeInputAccess      = "INPUT_ACCESS"
	ErrCodeOutputAccess     = "OUTPUT_ACCESS"
	ErrCodeTruncatedInput   = "TRUNCATED_INPUT"
	ErrCodeNameFromStdin    = "NAME_FROM_STDIN"
	ErrCodeInvalidName      = "INVALID_NAME"
	ErrCodeMissingType      = "MISSING_TYPE"
	ErrCodeUnknownType      = "UNKNOWN_TYPE"
	ErrCodeIOFailure        = "IO_FAILURE"
	ErrCodeLengthOutOfRange = "LENGTH_OUT_OF_RANGE"
)

// NewError creates a new CommonError
func NewError(code, message string, cause error) *CommonError {
	return &CommonError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrap attaches a message to err and classifies it. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return NewError(ErrorCode(err), message, err)
}

// ErrorCode returns the code of the outermost CommonError in err's chain, or
// derives one from the LIF sentinel errors.
func ErrorCode(err error) string {
	var ce *CommonError
	if errors.As(err, &ce) {
		return ce.Code
	}
	switch {
	case errors.Is(err, types.ErrTruncatedInput):
		return ErrCodeTruncatedInput
	case errors.Is(err, types.ErrUnknownType):
		return ErrCodeUnknownType
	case errors.Is(err, types.ErrInvalidName):
		return ErrCodeInvalidName
	case errors.Is(err, types.ErrLengthOutOfRange):
		return ErrCodeLengthOutOfRange
	case errors.Is(err, types.ErrIOFailure):
		return ErrCodeIOFailure
	default:
		return ErrCodeInvalidInput
	}
}
