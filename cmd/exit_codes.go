package cmd

import (
	"github.com/godwinstewart/lifheader/pkg/app"
)

// Process exit statuses
const (
	ExitOK               = 0
	ExitUsage            = 1
	ExitNoAction         = 2
	ExitInputAccess      = 3
	ExitTruncatedInput   = 4
	ExitOutputAccess     = 5
	ExitUnknownAction    = 6
	ExitNameFromStdin    = 7
	ExitInvalidName      = 8
	ExitMissingType      = 10
	ExitWriteFailure     = 11
	ExitUnknownType      = 12
	ExitLengthOutOfRange = 14
)

var exitCodes = map[string]int{
	app.ErrCodeInvalidInput:     ExitUsage,
	app.ErrCodeNoAction:         ExitNoAction,
	app.ErrCodeInputAccess:      ExitInputAccess,
	app.ErrCodeTruncatedInput:   ExitTruncatedInput,
	app.ErrCodeOutputAccess:     ExitOutputAccess,
	app.ErrCodeUnknownAction:    ExitUnknownAction,
	app.ErrCodeNameFromStdin:    ExitNameFromStdin,
	app.ErrCodeInvalidName:      ExitInvalidName,
	app.ErrCodeMissingType:      ExitMissingType,
	app.ErrCodeIOFailure:        ExitWriteFailure,
	app.ErrCodeUnknownType:      ExitUnknownType,
	app.ErrCodeLengthOutOfRange: ExitLengthOutOfRange,
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if code, ok := exitCodes[app.ErrorCode(err)]; ok {
		return code
	}
	return ExitUsage
}
