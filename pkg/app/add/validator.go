package add

import (
	"path/filepath"

	"github.com/godwinstewart/lifheader/internal/managers/header"
	"github.com/godwinstewart/lifheader/internal/services"
	"github.com/godwinstewart/lifheader/pkg/app"
)

// Validate validates an add request. The name is checked before the type.
func (r *Request) Validate() error {
	if app.IsStdStream(r.InputPath) && r.Name == "" {
		return app.NewError(app.ErrCodeNameFromStdin, "a LIF file name is required when reading standard input", nil)
	}

	if _, err := header.ParseName(r.lifName()); err != nil {
		return app.NewError(app.ErrCodeInvalidName, "invalid LIF file name", err)
	}

	if r.TypeMnemonic == "" {
		return app.NewError(app.ErrCodeMissingType, "file type not specified", nil)
	}

	if !app.IsStdStream(r.InputPath) && !app.IsStdStream(r.OutputPath) {
		in, err := filepath.Abs(r.InputPath)
		if err != nil {
			return app.NewError(app.ErrCodeInvalidInput, "invalid input path", err)
		}
		out, err := filepath.Abs(r.OutputPath)
		if err != nil {
			return app.NewError(app.ErrCodeInvalidInput, "invalid output path", err)
		}
		if in == out {
			return app.NewError(app.ErrCodeInvalidInput, "input and output must be different files", nil)
		}
	}

	if _, err := services.ParseTimestampPolicy(r.TimestampPolicy); err != nil {
		return app.NewError(app.ErrCodeInvalidInput, "invalid timestamp policy", err)
	}

	return nil
}

// lifName returns the name to parse, falling back to the input path
func (r *Request) lifName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.InputPath
}
