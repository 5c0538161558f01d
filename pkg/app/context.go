package app

import (
	"fmt"
	"io"
	"os"
)

// Context holds application-wide configuration and state
type Context struct {
	// Output preferences
	OutputFormat string
	Verbose      bool
	Quiet        bool

	// Stdout receives command results; Stderr receives logs and errors
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// NewContext creates a new application context bound to the process streams
func NewContext() *Context {
	return &Context{
		OutputFormat: "table",
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Stdin:        os.Stdin,
	}
}

// Log outputs a message based on verbosity settings
func (c *Context) Log(message string) {
	if !c.Quiet && c.Verbose {
		fmt.Fprintln(c.Stderr, message)
	}
}

// Logf formats and outputs a message based on verbosity settings
func (c *Context) Logf(format string, args ...interface{}) {
	c.Log(fmt.Sprintf(format, args...))
}

// Error outputs an error message unless quiet
func (c *Context) Error(message string) {
	if !c.Quiet {
		fmt.Fprintln(c.Stderr, "Error:", message)
	}
}
