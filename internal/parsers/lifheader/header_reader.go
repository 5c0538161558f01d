package lifheader

import (
	"fmt"
	"strings"
	"time"

	"github.com/godwinstewart/lifheader/internal/interfaces"
	"github.com/godwinstewart/lifheader/internal/parsers/lengths"
	"github.com/godwinstewart/lifheader/internal/types"
)

// headerReader implements the HeaderReader interface
type headerReader struct {
	header    *types.LifHeader
	nameField [types.NameFieldLength]byte
	registry  interfaces.FileTypeRegistry
}

// NewHeaderReader decodes data and wraps it in a HeaderReader. registry may
// be nil, in which case no file type has a description.
func NewHeaderReader(data []byte, registry interfaces.FileTypeRegistry) (interfaces.HeaderReader, error) {
	h, err := DecodeHeader(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LIF header: %w", err)
	}

	hr := &headerReader{
		header:   h,
		registry: registry,
	}
	copy(hr.nameField[:], data[types.OffsetName:types.OffsetName+types.NameFieldLength])
	return hr, nil
}

func (hr *headerReader) Name() string {
	return hr.header.NameString()
}

func (hr *headerReader) NameField() string {
	return strings.TrimRight(string(hr.nameField[:]), " ")
}

func (hr *headerReader) FileType() uint16 {
	return hr.header.FileType
}

func (hr *headerReader) Description() (string, bool) {
	if hr.registry == nil {
		return "", false
	}
	return hr.registry.Describe(hr.header.FileType)
}

func (hr *headerReader) StartSector() uint32 {
	return hr.header.StartSector
}

func (hr *headerReader) SectorCount() uint32 {
	return hr.header.SectorCount
}

func (hr *headerReader) AllocatedBytes() uint64 {
	return hr.header.AllocatedBytes()
}

func (hr *headerReader) TrueLength() (uint64, error) {
	return lengths.TrueLength(hr.header)
}

func (hr *headerReader) Timestamp() time.Time {
	return TimestampToTime(hr.header.Timestamp)
}

func (hr *headerReader) FormattedTimestamp() string {
	return FormatTimestamp(hr.header.Timestamp)
}

func (hr *headerReader) VolumeID() uint16 {
	return hr.header.VolumeID
}

func (hr *headerReader) GeneralPurpose() uint32 {
	return hr.header.GeneralPurpose
}
