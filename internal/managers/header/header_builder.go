package header

import (
	"fmt"
	"strings"
	"time"

	"github.com/godwinstewart/lifheader/internal/parsers/lengths"
	"github.com/godwinstewart/lifheader/internal/parsers/lifheader"
	"github.com/godwinstewart/lifheader/internal/types"
)

// BuildOptions describes a new LIF header
type BuildOptions struct {
	// File type identifier, normally resolved from a mnemonic
	FileType uint16

	// Raw name or path; the final path segment is used
	Name string

	// Payload length in bytes
	Length uint64

	// Start sector within a LIF volume, zero for standalone files
	StartSector uint32

	// Creation time recorded in the header
	Timestamp time.Time
}

// ParseName derives a LIF file name from a name or path. The first character
// must be a letter. Parsing stops at the first character that is not a
// letter, digit or underscore, or after eight characters.
func ParseName(raw string) ([types.NameLength]byte, error) {
	var name [types.NameLength]byte
	for i := range name {
		name[i] = types.NamePadding
	}

	if slash := strings.LastIndexByte(raw, '/'); slash >= 0 {
		raw = raw[slash+1:]
	}
	if raw == "" {
		return name, fmt.Errorf("the LIF file name cannot be empty: %w", types.ErrInvalidName)
	}

	for n := 0; n < types.NameLength && n < len(raw); n++ {
		c := upper(raw[n])
		if n == 0 && !isLetter(c) {
			return name, fmt.Errorf("first character %q must be a letter 'A'-'Z': %w", raw[0], types.ErrInvalidName)
		}
		if !isLetter(c) && !isDigit(c) && c != '_' {
			break
		}
		name[n] = c
	}

	return name, nil
}

// Build assembles a new header. The sector count always covers the whole
// payload; the general purpose field is filled according to the file type.
func Build(opts BuildOptions) (*types.LifHeader, error) {
	name, err := ParseName(opts.Name)
	if err != nil {
		return nil, err
	}

	h := types.NewLifHeader()
	h.Name = name
	h.FileType = opts.FileType
	h.StartSector = opts.StartSector
	h.SectorCount = lengths.SectorsFor(opts.Length)
	h.Timestamp = lifheader.TimestampFromTime(opts.Timestamp)

	if err := lengths.PackLength(h, opts.Length); err != nil {
		return nil, fmt.Errorf("failed to encode length of %q: %w", h.NameString(), err)
	}

	return h, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
