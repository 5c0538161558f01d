package lifheader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/godwinstewart/lifheader/internal/types"
)

// DecodeHeader parses the first 32 bytes of data into a LifHeader. Field
// contents are not validated; unknown file types decode successfully.
func DecodeHeader(data []byte) (*types.LifHeader, error) {
	if len(data) < types.HeaderLength {
		return nil, fmt.Errorf("got %d bytes: %w", len(data), types.ErrTruncatedInput)
	}

	h := &types.LifHeader{}
	copy(h.Name[:], data[types.OffsetName:types.OffsetName+types.NameLength])
	h.FileType = binary.BigEndian.Uint16(data[types.OffsetFileType : types.OffsetFileType+2])
	h.StartSector = binary.BigEndian.Uint32(data[types.OffsetStartSector : types.OffsetStartSector+4])
	h.SectorCount = binary.BigEndian.Uint32(data[types.OffsetSectorCount : types.OffsetSectorCount+4])
	copy(h.Timestamp[:], data[types.OffsetTimestamp:types.OffsetTimestamp+types.TimestampLength])
	h.VolumeID = binary.BigEndian.Uint16(data[types.OffsetVolumeID : types.OffsetVolumeID+2])
	h.GeneralPurpose = binary.BigEndian.Uint32(data[types.OffsetGeneralPurpose : types.OffsetGeneralPurpose+4])

	return h, nil
}

// EncodeHeader serialises h into exactly 32 bytes. The two bytes following
// the 8-character name are always written as spaces.
func EncodeHeader(h *types.LifHeader) []byte {
	data := make([]byte, types.HeaderLength)

	copy(data[types.OffsetName:], h.Name[:])
	for i := types.NameLength; i < types.NameFieldLength; i++ {
		data[types.OffsetName+i] = types.NamePadding
	}
	binary.BigEndian.PutUint16(data[types.OffsetFileType:], h.FileType)
	binary.BigEndian.PutUint32(data[types.OffsetStartSector:], h.StartSector)
	binary.BigEndian.PutUint32(data[types.OffsetSectorCount:], h.SectorCount)
	copy(data[types.OffsetTimestamp:], h.Timestamp[:])
	binary.BigEndian.PutUint16(data[types.OffsetVolumeID:], h.VolumeID)
	binary.BigEndian.PutUint32(data[types.OffsetGeneralPurpose:], h.GeneralPurpose)

	return data
}

// ReadHeader reads exactly one header from r. A stream that ends before 32
// bytes yields ErrTruncatedInput; any other read error yields ErrIOFailure.
func ReadHeader(r io.Reader) (*types.LifHeader, error) {
	data, err := ReadHeaderBytes(r)
	if err != nil {
		return nil, err
	}
	return DecodeHeader(data)
}

// ReadHeaderBytes reads the raw 32 header bytes from r, failing like ReadHeader.
func ReadHeaderBytes(r io.Reader) ([]byte, error) {
	buf := make([]byte, types.HeaderLength)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("read %d bytes: %w", n, types.ErrTruncatedInput)
		}
		return nil, fmt.Errorf("failed to read LIF header: %v: %w", err, types.ErrIOFailure)
	}
	return buf, nil
}

// WriteHeader writes the encoded header to w.
func WriteHeader(w io.Writer, h *types.LifHeader) error {
	n, err := w.Write(EncodeHeader(h))
	if err != nil {
		return fmt.Errorf("failed to write LIF header: %v: %w", err, types.ErrIOFailure)
	}
	if n != types.HeaderLength {
		return fmt.Errorf("wrote %d of %d header bytes: %w", n, types.HeaderLength, types.ErrIOFailure)
	}
	return nil
}
