// Package types implements data structures for the HP Logical Interchange
// Format (LIF) file header as used by HP-71B and HP-41C peripherals.
package types

// LIF header layout
//
//	0x00-0x09: file name (8 significant characters, space padded to 10)
//	0x0a-0x0b: file type (big-endian)
//	0x0c-0x0f: start sector (big-endian)
//	0x10-0x13: file length in sectors (big-endian)
//	0x14-0x19: timestamp, BCD yy mm dd hh mm ss
//	0x1a-0x1b: volume id (big-endian)
//	0x1c-0x1f: general purpose, meaning depends on the file type
const (
	// HeaderLength is the size of a LIF header on the wire.
	HeaderLength = 32

	// BytesPerSector is the LIF sector size.
	BytesPerSector = 256

	// NameLength is the maximum number of significant characters in a LIF file name.
	NameLength = 8

	// NameFieldLength is the width of the name field on the wire.
	NameFieldLength = 10

	// TimestampLength is the number of BCD bytes in a LIF timestamp.
	TimestampLength = 6

	// DefaultVolumeID is written into every constructed header.
	DefaultVolumeID uint16 = 0x8001

	// NamePadding fills unused name bytes.
	NamePadding byte = 0x20
)

// Field offsets within the header
const (
	OffsetName           = 0x00
	OffsetFileType       = 0x0a
	OffsetStartSector    = 0x0c
	OffsetSectorCount    = 0x10
	OffsetTimestamp      = 0x14
	OffsetVolumeID       = 0x1a
	OffsetGeneralPurpose = 0x1c
)

// Timestamp is the BCD encoded creation time of a LIF file: year (two
// digits), month, day, hour, minute, second.
type Timestamp [TimestampLength]byte

// LifHeader represents a decoded LIF file header.
type LifHeader struct {
	// Name is left justified and padded with spaces. Never NUL terminated.
	Name [NameLength]byte

	// FileType selects the description and the length encoding.
	FileType uint16

	// StartSector is the first sector of the file within a LIF volume.
	StartSector uint32

	// SectorCount is the number of 256-byte sectors occupied by the file.
	SectorCount uint32

	// Timestamp is the BCD creation time.
	Timestamp Timestamp

	// VolumeID is 0x8001 for single-volume media.
	VolumeID uint16

	// GeneralPurpose is the big-endian value of wire bytes 0x1c-0x1f.
	GeneralPurpose uint32
}

// NewLifHeader returns a header with a blank name and the default volume id.
func NewLifHeader() *LifHeader {
	h := &LifHeader{VolumeID: DefaultVolumeID}
	for i := range h.Name {
		h.Name[i] = NamePadding
	}
	return h
}

// GeneralPurposeBytes returns the general purpose field in wire order.
func (h *LifHeader) GeneralPurposeBytes() [4]byte {
	return [4]byte{
		byte(h.GeneralPurpose >> 24),
		byte(h.GeneralPurpose >> 16),
		byte(h.GeneralPurpose >> 8),
		byte(h.GeneralPurpose),
	}
}

// SetGeneralPurposeBytes stores the general purpose field from wire order.
func (h *LifHeader) SetGeneralPurposeBytes(b [4]byte) {
	h.GeneralPurpose = uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// NameString returns the file name without its space padding.
func (h *LifHeader) NameString() string {
	end := len(h.Name)
	for end > 0 && h.Name[end-1] == NamePadding {
		end--
	}
	return string(h.Name[:end])
}

// AllocatedBytes returns the space reserved for the file on the medium.
func (h *LifHeader) AllocatedBytes() uint64 {
	return uint64(h.SectorCount) * BytesPerSector
}
