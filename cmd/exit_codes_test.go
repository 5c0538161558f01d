package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/godwinstewart/lifheader/internal/types"
	"github.com/godwinstewart/lifheader/pkg/app"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "plain error", err: errors.New("boom"), want: ExitUsage},
		{name: "no action", err: app.NewError(app.ErrCodeNoAction, "x", nil), want: ExitNoAction},
		{name: "input", err: app.NewError(app.ErrCodeInputAccess, "x", nil), want: ExitInputAccess},
		{name: "output", err: app.NewError(app.ErrCodeOutputAccess, "x", nil), want: ExitOutputAccess},
		{name: "unknown action", err: app.NewError(app.ErrCodeUnknownAction, "x", nil), want: ExitUnknownAction},
		{name: "stdin name", err: app.NewError(app.ErrCodeNameFromStdin, "x", nil), want: ExitNameFromStdin},
		{name: "missing type", err: app.NewError(app.ErrCodeMissingType, "x", nil), want: ExitMissingType},
		{name: "unknown type", err: app.NewError(app.ErrCodeUnknownType, "x", nil), want: ExitUnknownType},
		{name: "bare truncated sentinel", err: fmt.Errorf("read: %w", types.ErrTruncatedInput), want: ExitTruncatedInput},
		{name: "bare name sentinel", err: types.ErrInvalidName, want: ExitInvalidName},
		{name: "wrapped io failure", err: app.Wrap(types.ErrIOFailure, "copy"), want: ExitWriteFailure},
		{name: "wrapped range", err: app.Wrap(types.ErrLengthOutOfRange, "pack"), want: ExitLengthOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestReportError(t *testing.T) {
	t.Cleanup(func() { quiet = false })

	var stderr bytes.Buffer
	code := reportError(&stderr, app.NewError(app.ErrCodeUnknownType, `unknown file type "zzz"`, nil))
	assert.Equal(t, ExitUnknownType, code)
	assert.Equal(t, "Error: unknown file type \"zzz\"\n", stderr.String())

	stderr.Reset()
	quiet = true
	code = reportError(&stderr, app.NewError(app.ErrCodeNoAction, "no action", nil))
	assert.Equal(t, ExitNoAction, code)
	assert.Empty(t, stderr.String())
}
