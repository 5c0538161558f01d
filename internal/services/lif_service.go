package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/godwinstewart/lifheader/internal/interfaces"
	"github.com/godwinstewart/lifheader/internal/managers/header"
	"github.com/godwinstewart/lifheader/internal/parsers/lifheader"
	"github.com/godwinstewart/lifheader/internal/types"
)

// lifService implements the LifService interface
type lifService struct {
	registry   interfaces.FileTypeRegistry
	bufferSize int
}

// NewLifService creates a LIF service. bufferSize is the copy buffer used by
// StripHeader; values below one sector are raised to one sector.
func NewLifService(registry interfaces.FileTypeRegistry, bufferSize int) LifService {
	if bufferSize < types.BytesPerSector {
		bufferSize = types.BytesPerSector
	}
	return &lifService{
		registry:   registry,
		bufferSize: bufferSize,
	}
}

// ShowHeader decodes the header at the start of r
func (s *lifService) ShowHeader(r io.Reader) (*HeaderReport, error) {
	data, err := lifheader.ReadHeaderBytes(r)
	if err != nil {
		return nil, err
	}

	reader, err := lifheader.NewHeaderReader(data, s.registry)
	if err != nil {
		return nil, err
	}
	report := &HeaderReport{
		Name:           reader.Name(),
		NameField:      reader.NameField(),
		FileType:       reader.FileType(),
		StartSector:    reader.StartSector(),
		SectorCount:    reader.SectorCount(),
		AllocatedBytes: reader.AllocatedBytes(),
		Timestamp:      reader.FormattedTimestamp(),
		RecordedAt:     reader.Timestamp(),
		VolumeID:       reader.VolumeID(),
		GeneralPurpose: reader.GeneralPurpose(),
	}
	report.Description, report.KnownType = reader.Description()

	length, err := reader.TrueLength()
	switch {
	case err == nil:
		report.TrueLength = length
		report.LengthKnown = true
	case !errors.Is(err, types.ErrUnknownType):
		return nil, err
	}

	return report, nil
}

// StripHeader discards the header at the start of r and copies the rest to w
func (s *lifService) StripHeader(r io.Reader, w io.Writer) (int64, error) {
	if _, err := lifheader.ReadHeader(r); err != nil {
		return 0, err
	}

	n, err := io.CopyBuffer(w, r, make([]byte, s.bufferSize))
	if err != nil {
		return n, fmt.Errorf("copied %d bytes: %v: %w", n, err, types.ErrIOFailure)
	}
	return n, nil
}

// AddHeader reads the whole of r, then writes a new header followed by the payload to w
func (s *lifService) AddHeader(req AddRequest, r io.Reader, w io.Writer) (*types.LifHeader, error) {
	var payload bytes.Buffer
	if _, err := payload.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to read source data: %v: %w", err, types.ErrIOFailure)
	}

	h, err := header.Build(header.BuildOptions{
		FileType:    req.FileType,
		Name:        req.Name,
		Length:      uint64(payload.Len()),
		StartSector: req.StartSector,
		Timestamp:   req.Timestamp,
	})
	if err != nil {
		return nil, err
	}

	if err := lifheader.WriteHeader(w, h); err != nil {
		return nil, err
	}

	size := payload.Len()
	n, err := w.Write(payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to write payload: %v: %w", err, types.ErrIOFailure)
	}
	if n != size {
		return nil, fmt.Errorf("wrote %d of %d payload bytes: %w", n, size, types.ErrIOFailure)
	}

	return h, nil
}
