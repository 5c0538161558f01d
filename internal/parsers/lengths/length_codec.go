package lengths

import (
	"fmt"
	"math"

	"github.com/godwinstewart/lifheader/internal/types"
)

// Family identifies how a file type stores its true payload length.
type Family int

const (
	// FamilyUnknown has no length encoding.
	FamilyUnknown Family = iota
	// FamilySector stores whole sectors only (HP-71B text files).
	FamilySector
	// FamilySData stores the number of 8-byte registers in the upper 16 bits.
	FamilySData
	// FamilyFixedRecord stores record count and record length, little-endian.
	FamilyFixedRecord
	// FamilyNybble stores a 24-bit little-endian nybble count.
	FamilyNybble
	// FamilyFramSector stores whole sectors only (HP-71B FRAM files).
	FamilyFramSector
	// FamilyRegister41 stores (bytes-1)/8 in the upper 16 bits.
	FamilyRegister41
	// FamilyProgram41 stores bytes-1 in the upper 16 bits.
	FamilyProgram41
)

// encoding is the forward and inverse transform of one family. pack is nil
// for read-only families.
type encoding struct {
	name       string
	trueLength func(h *types.LifHeader) uint64
	pack       func(h *types.LifHeader, n uint64)
	maxLength  uint64
}

var encodings = map[Family]encoding{
	FamilySector: {
		name:       "sector",
		trueLength: sectorLength,
		pack: func(h *types.LifHeader, n uint64) {
			h.SectorCount = SectorsFor(n)
		},
		maxLength: uint64(math.MaxUint32) * types.BytesPerSector,
	},
	FamilySData: {
		name: "sdata",
		trueLength: func(h *types.LifHeader) uint64 {
			return 8 * uint64(h.GeneralPurpose>>16)
		},
		pack: func(h *types.LifHeader, n uint64) {
			h.GeneralPurpose = uint32(n>>3) << 16
		},
		maxLength: 0xffff<<3 | 7,
	},
	FamilyFixedRecord: {
		name: "fixed record",
		trueLength: func(h *types.LifHeader) uint64 {
			b := h.GeneralPurposeBytes()
			records := uint64(b[0]) | uint64(b[1])<<8
			recordLength := uint64(b[2]) | uint64(b[3])<<8
			return records * recordLength
		},
	},
	FamilyNybble: {
		name: "nybble",
		trueLength: func(h *types.LifHeader) uint64 {
			b := h.GeneralPurposeBytes()
			nybbles := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16
			return (nybbles + 1) >> 1
		},
		pack: func(h *types.LifHeader, n uint64) {
			nybbles := uint32(n << 1)
			h.SetGeneralPurposeBytes([4]byte{
				byte(nybbles),
				byte(nybbles >> 8),
				byte(nybbles >> 16),
				byte(nybbles >> 24),
			})
		},
		maxLength: 0xffffff >> 1,
	},
	FamilyFramSector: {
		name:       "FRAM sector",
		trueLength: sectorLength,
	},
	FamilyRegister41: {
		name: "41C register",
		trueLength: func(h *types.LifHeader) uint64 {
			return uint64(h.GeneralPurpose>>16)*8 + 1
		},
		pack: func(h *types.LifHeader, n uint64) {
			if n == 0 {
				return
			}
			h.GeneralPurpose = uint32((n-1)>>3) << 16
		},
		maxLength: (0xffff<<3 | 7) + 1,
	},
	FamilyProgram41: {
		name: "41C program",
		trueLength: func(h *types.LifHeader) uint64 {
			return uint64(h.GeneralPurpose>>16) + 1
		},
		pack: func(h *types.LifHeader, n uint64) {
			if n == 0 {
				return
			}
			h.GeneralPurpose = uint32(n-1) << 16
		},
		maxLength: 0xffff + 1,
	},
}

var families = map[uint16]Family{
	types.FileTypeText71:       FamilySector,
	types.FileTypeText71Secure: FamilySector,

	types.FileTypeSData: FamilySData,

	types.FileTypeData71:       FamilyFixedRecord,
	types.FileTypeData71Secure: FamilyFixedRecord,

	types.FileTypeLexDisabled:        FamilyNybble,
	types.FileTypeBin71:              FamilyNybble,
	types.FileTypeBin71Secure:        FamilyNybble,
	types.FileTypeBin71Private:       FamilyNybble,
	types.FileTypeBin71SecurePrivate: FamilyNybble,
	types.FileTypeLex71:              FamilyNybble,
	types.FileTypeLex71Secure:        FamilyNybble,
	types.FileTypeLex71Private:       FamilyNybble,
	types.FileTypeLex71SecurePrivate: FamilyNybble,
	types.FileTypeKey71:              FamilyNybble,
	types.FileTypeKey71Secure:        FamilyNybble,
	types.FileTypeBasic71:            FamilyNybble,
	types.FileTypeBasic71Secure:      FamilyNybble,
	types.FileTypeBasic71Private:     FamilyNybble,
	types.FileTypeBasic71SecPrivate:  FamilyNybble,
	types.FileTypeRom71:              FamilyNybble,
	types.FileTypeGraphics71:         FamilyNybble,
	types.FileTypeAddress71:          FamilyNybble,
	types.FileTypeSymbol71:           FamilyNybble,

	types.FileTypeFram71:           FamilyFramSector,
	types.FileTypeFram71Secure:     FamilyFramSector,
	types.FileTypeFram71Private:    FamilyFramSector,
	types.FileTypeFram71SecPrivate: FamilyFramSector,

	types.FileTypeWallXMem41A: FamilyRegister41,
	types.FileTypeWallXMem41B: FamilyRegister41,
	types.FileTypeWall41:      FamilyRegister41,
	types.FileTypeKeys41:      FamilyRegister41,
	types.FileTypeStatus41:    FamilyRegister41,
	types.FileTypeRomDump41:   FamilyRegister41,

	types.FileTypeProgram41: FamilyProgram41,
}

// FamilyOf returns the length encoding family of a file type.
func FamilyOf(fileType uint16) (Family, bool) {
	f, ok := families[fileType]
	return f, ok
}

// String returns the family name.
func (f Family) String() string {
	if e, ok := encodings[f]; ok {
		return e.name
	}
	return "unknown"
}

// Writable reports whether a length can be packed for the family.
func (f Family) Writable() bool {
	return encodings[f].pack != nil
}

// MaxLength returns the largest payload the family can record. Zero for
// read-only and unknown families.
func (f Family) MaxLength() uint64 {
	return encodings[f].maxLength
}

// TrueLength derives the payload length recorded in a header.
func TrueLength(h *types.LifHeader) (uint64, error) {
	f, ok := families[h.FileType]
	if !ok {
		return 0, fmt.Errorf("file type 0x%04x: %w", h.FileType, types.ErrUnknownType)
	}
	return encodings[f].trueLength(h), nil
}

// PackLength records a payload length in the general purpose field of h,
// and in the sector count for the text family. The field is cleared first.
// File types with no inverse encoding are left with a zero general purpose
// field.
func PackLength(h *types.LifHeader, length uint64) error {
	e := encodings[families[h.FileType]]
	if e.pack == nil {
		h.GeneralPurpose = 0
		return nil
	}
	if length > e.maxLength {
		return fmt.Errorf("%d bytes exceeds %d for %s encoding: %w",
			length, e.maxLength, e.name, types.ErrLengthOutOfRange)
	}
	h.GeneralPurpose = 0
	e.pack(h, length)
	return nil
}

// SectorsFor returns the number of whole sectors needed for n bytes.
func SectorsFor(n uint64) uint32 {
	return uint32((n + types.BytesPerSector - 1) / types.BytesPerSector)
}

func sectorLength(h *types.LifHeader) uint64 {
	return h.AllocatedBytes()
}
