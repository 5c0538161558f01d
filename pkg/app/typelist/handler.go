package typelist

import (
	"github.com/godwinstewart/lifheader/internal/managers/filetypes"
	"github.com/godwinstewart/lifheader/pkg/app"
)

// Handle lists the registered file types
func Handle(ctx *app.Context, registry *filetypes.StaticFileTypeRegistry, req *Request) (*Response, error) {
	infos := registry.ListMnemonics()
	if req.All {
		infos = registry.ListFileTypes()
	}
	ctx.Logf("Listing %d file types", len(infos))

	entries := make([]TypeEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, TypeEntry{
			Mnemonic:    info.Mnemonic,
			Type:        info.Type,
			Description: info.Description,
			Encoding:    info.Family.String(),
			Writable:    info.Mnemonic != "" && info.Family.Writable(),
		})
	}

	return &Response{Types: entries}, nil
}
