package show

import (
	"fmt"
	"os"

	"github.com/godwinstewart/lifheader/pkg/app"
)

// Validate validates a show request
func (r *Request) Validate() error {
	if app.IsStdStream(r.InputPath) {
		return nil
	}

	info, err := os.Stat(r.InputPath)
	if err != nil {
		return app.NewError(app.ErrCodeInputAccess, "could not open input file", err)
	}
	if info.IsDir() {
		return app.NewError(app.ErrCodeInputAccess, "could not open input file",
			fmt.Errorf("%s is a directory", r.InputPath))
	}

	return nil
}
