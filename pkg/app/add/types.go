package add

import (
	"time"
)

// Request represents an add-header request
type Request struct {
	InputPath  string
	OutputPath string

	// TypeMnemonic selects the file type, e.g. "txt71"
	TypeMnemonic string

	// Name is the LIF file name. Defaults to the input file's base name.
	Name string

	// TimestampPolicy is "mtime" or "now"
	TimestampPolicy string

	// StartSector is recorded as-is in the header
	StartSector uint32

	// Now overrides the clock, for tests
	Now func() time.Time
}

// Response describes the header that was written
type Response struct {
	Name        string `json:"name" yaml:"name"`
	FileType    uint16 `json:"file_type" yaml:"file_type"`
	Description string `json:"description" yaml:"description"`
	SectorCount uint32 `json:"sector_count" yaml:"sector_count"`

	// RecordedLength is the payload length as read back from the new
	// header, which may be rounded up by the type's length encoding
	RecordedLength uint64 `json:"recorded_length" yaml:"recorded_length"`

	Timestamp string `json:"timestamp" yaml:"timestamp"`
}
