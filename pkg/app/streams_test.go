package app

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godwinstewart/lifheader/internal/types"
)

func newTestContext() (*Context, *bytes.Buffer) {
	var stdout bytes.Buffer
	return &Context{
		Stdout: &stdout,
		Stderr: &bytes.Buffer{},
		Stdin:  strings.NewReader("from stdin"),
	}, &stdout
}

func TestOpenInput(t *testing.T) {
	ctx, _ := newTestContext()

	in, err := OpenInput(ctx, "-")
	require.NoError(t, err)
	assert.True(t, in.IsStdin())
	assert.NoError(t, in.Close())

	path := filepath.Join(t.TempDir(), "in.bin")
	require.NoError(t, os.WriteFile(path, []byte("file"), 0o644))
	in, err = OpenInput(ctx, path)
	require.NoError(t, err)
	assert.False(t, in.IsStdin())
	assert.Equal(t, path, in.Path)
	assert.NoError(t, in.Close())

	_, err = OpenInput(ctx, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, ErrCodeInputAccess, ErrorCode(err))
}

func TestOutputCommit(t *testing.T) {
	ctx, _ := newTestContext()
	dir := t.TempDir()
	path := filepath.Join(dir, "out.lif")

	out, err := CreateOutput(ctx, path)
	require.NoError(t, err)
	_, err = out.Write([]byte("data"))
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "output must not appear before commit")

	require.NoError(t, out.Commit())
	require.NoError(t, out.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestOutputCloseWithoutCommit(t *testing.T) {
	ctx, _ := newTestContext()
	dir := t.TempDir()

	out, err := CreateOutput(ctx, filepath.Join(dir, "out.lif"))
	require.NoError(t, err)
	_, err = out.Write([]byte("partial"))
	require.NoError(t, err)

	require.NoError(t, out.Close())
	require.NoError(t, out.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOutputStdout(t *testing.T) {
	ctx, stdout := newTestContext()

	out, err := CreateOutput(ctx, "")
	require.NoError(t, err)
	_, err = out.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, out.Commit())
	require.NoError(t, out.Close())

	assert.Equal(t, "hello", stdout.String())
}

func TestCreateOutputMissingDirectory(t *testing.T) {
	ctx, _ := newTestContext()

	_, err := CreateOutput(ctx, filepath.Join(t.TempDir(), "no", "such", "out.lif"))
	require.Error(t, err)
	assert.Equal(t, ErrCodeOutputAccess, ErrorCode(err))
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "common error", err: NewError(ErrCodeMissingType, "x", nil), want: ErrCodeMissingType},
		{name: "truncated", err: fmt.Errorf("header: %w", types.ErrTruncatedInput), want: ErrCodeTruncatedInput},
		{name: "unknown type", err: types.ErrUnknownType, want: ErrCodeUnknownType},
		{name: "invalid name", err: types.ErrInvalidName, want: ErrCodeInvalidName},
		{name: "range", err: types.ErrLengthOutOfRange, want: ErrCodeLengthOutOfRange},
		{name: "io", err: types.ErrIOFailure, want: ErrCodeIOFailure},
		{name: "other", err: errors.New("other"), want: ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorCode(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "unused"))

	err := Wrap(fmt.Errorf("decode: %w", types.ErrTruncatedInput), "could not read LIF header")
	var ce *CommonError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrCodeTruncatedInput, ce.Code)
	assert.ErrorIs(t, err, types.ErrTruncatedInput)
	assert.Contains(t, err.Error(), "could not read LIF header: decode:")
}

func TestContextLogging(t *testing.T) {
	var stderr bytes.Buffer
	ctx := &Context{Stderr: &stderr}

	ctx.Log("hidden")
	assert.Empty(t, stderr.String())

	ctx.Verbose = true
	ctx.Logf("shown %d", 1)
	ctx.Error("bad")
	assert.Equal(t, "shown 1\nError: bad\n", stderr.String())

	stderr.Reset()
	ctx.Quiet = true
	ctx.Log("hidden")
	ctx.Error("hidden")
	assert.Empty(t, stderr.String())
}
