// File: internal/interfaces/lif.go
package interfaces

import (
	"time"
)

// HeaderReader provides read access to a decoded LIF header
type HeaderReader interface {
	// Name returns the 8-character file name without padding
	Name() string

	// NameField returns the whole 10-byte name field without trailing
	// padding. Media written by other LIF systems may use all ten bytes.
	NameField() string

	// FileType returns the raw file type identifier
	FileType() uint16

	// Description returns the file type description, if the type is known
	Description() (string, bool)

	// StartSector returns the first sector of the file within its volume
	StartSector() uint32

	// SectorCount returns the number of sectors occupied by the file
	SectorCount() uint32

	// AllocatedBytes returns the sector count expressed in bytes
	AllocatedBytes() uint64

	// TrueLength returns the payload length recorded in the header
	TrueLength() (uint64, error)

	// Timestamp returns the creation time
	Timestamp() time.Time

	// FormattedTimestamp returns the creation time exactly as stored
	FormattedTimestamp() string

	// VolumeID returns the volume identifier
	VolumeID() uint16

	// GeneralPurpose returns the type-specific general purpose field
	GeneralPurpose() uint32
}

// FileTypeRegistry maps LIF file type identifiers to mnemonics and descriptions
type FileTypeRegistry interface {
	// Describe returns the description of a file type
	Describe(fileType uint16) (string, bool)

	// Resolve returns the canonical file type for a command-line mnemonic
	Resolve(mnemonic string) (uint16, bool)
}
