package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// StdStream is the path that selects standard input or output
const StdStream = "-"

// IsStdStream reports whether path selects a standard stream
func IsStdStream(path string) bool {
	return path == "" || path == StdStream
}

// Input is an opened source, either a file or standard input
type Input struct {
	io.Reader

	// File is nil when reading standard input
	File *os.File
	Path string
}

// OpenInput opens path for reading, or wraps ctx.Stdin for "" and "-"
func OpenInput(ctx *Context, path string) (*Input, error) {
	if IsStdStream(path) {
		return &Input{Reader: ctx.Stdin}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, NewError(ErrCodeInputAccess, "could not open input file", err)
	}
	return &Input{Reader: f, File: f, Path: path}, nil
}

// IsStdin reports whether the input is standard input
func (in *Input) IsStdin() bool {
	return in.File == nil
}

// Close closes the underlying file. Standard input is left open.
func (in *Input) Close() error {
	if in.File == nil {
		return nil
	}
	return in.File.Close()
}

// Output is a destination that only appears at its final path once
// committed. Writes go to a uniquely named temporary file in the same
// directory.
type Output struct {
	w         io.Writer
	file      *os.File
	path      string
	tmpPath   string
	committed bool
}

// CreateOutput prepares path for writing, or wraps ctx.Stdout for "" and "-"
func CreateOutput(ctx *Context, path string) (*Output, error) {
	if IsStdStream(path) {
		return &Output{w: ctx.Stdout}, nil
	}

	tmpPath := filepath.Join(filepath.Dir(path),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, NewError(ErrCodeOutputAccess, "could not open output file", err)
	}

	return &Output{
		w:       f,
		file:    f,
		path:    path,
		tmpPath: tmpPath,
	}, nil
}

func (o *Output) Write(p []byte) (int, error) {
	return o.w.Write(p)
}

// Commit moves the temporary file to its final path
func (o *Output) Commit() error {
	if o.file == nil {
		o.committed = true
		return nil
	}
	if err := o.file.Close(); err != nil {
		return NewError(ErrCodeIOFailure, "unable to write to output", err)
	}
	if err := os.Rename(o.tmpPath, o.path); err != nil {
		return NewError(ErrCodeOutputAccess, "could not create output file", err)
	}
	o.committed = true
	return nil
}

// Close discards the temporary file unless Commit succeeded. Safe to call
// more than once.
func (o *Output) Close() error {
	if o.file == nil || o.committed {
		return nil
	}
	o.file.Close()
	err := os.Remove(o.tmpPath)
	o.file = nil
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
