package strip

import (
	"path/filepath"

	"github.com/godwinstewart/lifheader/pkg/app"
)

// Validate validates a strip request
func (r *Request) Validate() error {
	if app.IsStdStream(r.InputPath) || app.IsStdStream(r.OutputPath) {
		return nil
	}

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

	return nil
}
