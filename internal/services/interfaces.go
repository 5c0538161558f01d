package services

import (
	"io"

	"github.com/godwinstewart/lifheader/internal/types"
)

// LifService provides the header operations behind the show, strip and add commands
type LifService interface {
	// ShowHeader decodes the header at the start of r
	ShowHeader(r io.Reader) (*HeaderReport, error)

	// StripHeader discards the header at the start of r and copies the rest to w
	StripHeader(r io.Reader, w io.Writer) (int64, error)

	// AddHeader reads the whole of r, then writes a new header followed by the payload to w
	AddHeader(req AddRequest, r io.Reader, w io.Writer) (*types.LifHeader, error)
}
