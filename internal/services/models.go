package services

import (
	"time"
)

// HeaderReport contains the decoded contents of a LIF header
type HeaderReport struct {
	Name           string `json:"name" yaml:"name"`
	NameField      string `json:"name_field" yaml:"name_field"`
	FileType       uint16 `json:"file_type" yaml:"file_type"`
	Description    string `json:"description,omitempty" yaml:"description,omitempty"`
	KnownType      bool   `json:"known_type" yaml:"known_type"`
	StartSector    uint32 `json:"start_sector" yaml:"start_sector"`
	SectorCount    uint32 `json:"sector_count" yaml:"sector_count"`
	AllocatedBytes uint64 `json:"allocated_bytes" yaml:"allocated_bytes"`
	TrueLength     uint64 `json:"true_length" yaml:"true_length"`
	LengthKnown    bool   `json:"length_known" yaml:"length_known"`
	Timestamp      string `json:"timestamp" yaml:"timestamp"`

	// RecordedAt is Timestamp as a local time; out-of-range BCD fields are
	// normalised
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`

	VolumeID       uint16 `json:"volume_id" yaml:"volume_id"`
	GeneralPurpose uint32 `json:"general_purpose" yaml:"general_purpose"`
}

// AddRequest describes the header to prepend to a payload
type AddRequest struct {
	FileType    uint16
	Name        string
	StartSector uint32
	Timestamp   time.Time
}
