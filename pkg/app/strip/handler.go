package strip

import (
	"github.com/godwinstewart/lifheader/internal/services"
	"github.com/godwinstewart/lifheader/pkg/app"
)

// Handle removes the LIF header from the input and writes the remaining
// payload to the output. The output file only appears once the whole
// payload has been written.
func Handle(ctx *app.Context, svc services.LifService, req *Request) (*Response, error) {
	in, err := app.OpenInput(ctx, req.InputPath)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	out, err := app.CreateOutput(ctx, req.OutputPath)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	n, err := svc.StripHeader(in, out)
	if err != nil {
		return nil, app.Wrap(err, "could not strip LIF header")
	}

	if err := out.Commit(); err != nil {
		return nil, err
	}

	ctx.Logf("Wrote %d payload bytes", n)

	return &Response{PayloadBytes: n}, nil
}
