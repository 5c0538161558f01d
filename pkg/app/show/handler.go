package show

import (
	"github.com/godwinstewart/lifheader/internal/services"
	"github.com/godwinstewart/lifheader/pkg/app"
)

// Handle processes a show request
func Handle(ctx *app.Context, svc services.LifService, req *Request) (*Response, error) {
	in, err := app.OpenInput(ctx, req.InputPath)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	source := req.InputPath
	if in.IsStdin() {
		source = "<stdin>"
	}
	ctx.Logf("Reading LIF header from: %s", source)

	report, err := svc.ShowHeader(in)
	if err != nil {
		return nil, app.Wrap(err, "could not read LIF header")
	}

	if !report.KnownType {
		ctx.Logf("File type 0x%04x is not in the registry", report.FileType)
	}

	return &Response{
		Source: source,
		Header: report,
	}, nil
}
