package add

import (
	"fmt"

	"github.com/godwinstewart/lifheader/internal/interfaces"
	"github.com/godwinstewart/lifheader/internal/parsers/lengths"
	"github.com/godwinstewart/lifheader/internal/parsers/lifheader"
	"github.com/godwinstewart/lifheader/internal/services"
	"github.com/godwinstewart/lifheader/pkg/app"
)

// Handle prepends a freshly built LIF header to the input and writes the
// result to the output
func Handle(ctx *app.Context, svc services.LifService, registry interfaces.FileTypeRegistry, req *Request) (*Response, error) {
	fileType, ok := registry.Resolve(req.TypeMnemonic)
	if !ok {
		return nil, app.NewError(app.ErrCodeUnknownType,
			fmt.Sprintf("unknown file type %q", req.TypeMnemonic), nil)
	}

	policy, err := services.ParseTimestampPolicy(req.TimestampPolicy)
	if err != nil {
		return nil, app.NewError(app.ErrCodeInvalidInput, "invalid timestamp policy", err)
	}

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

	ts := services.ResolveTimestamp(policy, in.File, req.Now)
	ctx.Logf("Adding %s header (type 0x%04x) with timestamp %s", req.TypeMnemonic, fileType, ts.Format("2006-01-02 15:04:05"))

	h, err := svc.AddHeader(services.AddRequest{
		FileType:    fileType,
		Name:        req.lifName(),
		StartSector: req.StartSector,
		Timestamp:   ts,
	}, in, out)
	if err != nil {
		return nil, app.Wrap(err, "could not add LIF header")
	}

	if err := out.Commit(); err != nil {
		return nil, err
	}

	// registered types always have a length family
	length, _ := lengths.TrueLength(h)
	description, _ := registry.Describe(h.FileType)

	return &Response{
		Name:           h.NameString(),
		FileType:       h.FileType,
		Description:    description,
		SectorCount:    h.SectorCount,
		RecordedLength: length,
		Timestamp:      lifheader.FormatTimestamp(h.Timestamp),
	}, nil
}
