package services

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godwinstewart/lifheader/internal/managers/filetypes"
	"github.com/godwinstewart/lifheader/internal/parsers/lifheader"
	"github.com/godwinstewart/lifheader/internal/types"
)

func newTestService() LifService {
	return NewLifService(filetypes.NewStaticFileTypeRegistry(), 0)
}

func TestAddThenShow(t *testing.T) {
	svc := newTestService()
	payload := bytes.Repeat([]byte{0x5a}, 300)
	ts := time.Date(2021, time.June, 7, 13, 45, 9, 0, time.Local)

	var out bytes.Buffer
	h, err := svc.AddHeader(AddRequest{
		FileType:  types.FileTypeBasic71,
		Name:      "games/hangman.bas",
		Timestamp: ts,
	}, bytes.NewReader(payload), &out)
	require.NoError(t, err)

	assert.Equal(t, "HANGMAN", h.NameString())
	assert.Equal(t, types.HeaderLength+len(payload), out.Len())
	assert.Equal(t, payload, out.Bytes()[types.HeaderLength:])

	report, err := svc.ShowHeader(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, "HANGMAN", report.Name)
	assert.Equal(t, types.FileTypeBasic71, report.FileType)
	assert.Equal(t, "HP-71B BASIC file", report.Description)
	assert.True(t, report.KnownType)
	assert.Equal(t, uint32(2), report.SectorCount)
	assert.Equal(t, uint64(512), report.AllocatedBytes)
	assert.True(t, report.LengthKnown)
	assert.Equal(t, uint64(300), report.TrueLength)
	assert.Equal(t, "2021-06-07 13:45:09", report.Timestamp)
	assert.True(t, ts.Equal(report.RecordedAt))
	assert.Equal(t, "HANGMAN", report.NameField)
	assert.Equal(t, types.DefaultVolumeID, report.VolumeID)
}

func TestShowUnknownType(t *testing.T) {
	h := types.NewLifHeader()
	copy(h.Name[:], "MYSTERY")
	h.FileType = 0xffff
	h.SectorCount = 1

	report, err := newTestService().ShowHeader(bytes.NewReader(lifheader.EncodeHeader(h)))
	require.NoError(t, err)

	assert.False(t, report.KnownType)
	assert.Empty(t, report.Description)
	assert.False(t, report.LengthKnown)
	assert.Zero(t, report.TrueLength)
}

func TestShowTenCharacterNameField(t *testing.T) {
	h := types.NewLifHeader()
	copy(h.Name[:], "SYSTEM_A")
	h.FileType = types.FileTypeText71
	h.SectorCount = 1
	data := lifheader.EncodeHeader(h)
	copy(data[types.NameLength:types.NameFieldLength], "01")

	report, err := newTestService().ShowHeader(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, "SYSTEM_A", report.Name)
	assert.Equal(t, "SYSTEM_A01", report.NameField)
}

func TestShowTruncated(t *testing.T) {
	_, err := newTestService().ShowHeader(bytes.NewReader(make([]byte, 12)))
	assert.ErrorIs(t, err, types.ErrTruncatedInput)
}

func TestStripHeader(t *testing.T) {
	svc := newTestService()
	payload := bytes.Repeat([]byte("0123456789"), 100)

	var added bytes.Buffer
	_, err := svc.AddHeader(AddRequest{
		FileType: types.FileTypeText71,
		Name:     "notes",
	}, bytes.NewReader(payload), &added)
	require.NoError(t, err)

	var stripped bytes.Buffer
	n, err := svc.StripHeader(bytes.NewReader(added.Bytes()), &stripped)
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), n)
	assert.Equal(t, payload, stripped.Bytes())
}

func TestStripHeaderOnly(t *testing.T) {
	var out bytes.Buffer
	n, err := newTestService().StripHeader(bytes.NewReader(lifheader.EncodeHeader(types.NewLifHeader())), &out)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, out.Len())
}

func TestStripHeaderTruncated(t *testing.T) {
	var out bytes.Buffer
	_, err := newTestService().StripHeader(bytes.NewReader([]byte("short")), &out)
	assert.ErrorIs(t, err, types.ErrTruncatedInput)
	assert.Zero(t, out.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestStripHeaderWriteFailure(t *testing.T) {
	data := append(lifheader.EncodeHeader(types.NewLifHeader()), []byte("payload")...)
	_, err := newTestService().StripHeader(bytes.NewReader(data), failingWriter{})
	assert.ErrorIs(t, err, types.ErrIOFailure)
}

func TestAddHeaderErrors(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name    string
		req     AddRequest
		payload []byte
		wantErr error
	}{
		{
			name:    "invalid name",
			req:     AddRequest{FileType: types.FileTypeLex71, Name: "9lives"},
			payload: []byte("x"),
			wantErr: types.ErrInvalidName,
		},
		{
			name:    "program too long",
			req:     AddRequest{FileType: types.FileTypeProgram41, Name: "prog"},
			payload: make([]byte, 0x10001),
			wantErr: types.ErrLengthOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := svc.AddHeader(tt.req, bytes.NewReader(tt.payload), &out)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, out.Len(), "nothing is written when the header cannot be built")
		})
	}
}

func TestAddHeaderWriteFailure(t *testing.T) {
	_, err := newTestService().AddHeader(AddRequest{
		FileType: types.FileTypeLex71,
		Name:     "lex",
	}, bytes.NewReader([]byte("data")), failingWriter{})
	assert.ErrorIs(t, err, types.ErrIOFailure)
}

func TestAddHeaderEmptyPayload(t *testing.T) {
	var out bytes.Buffer
	h, err := newTestService().AddHeader(AddRequest{
		FileType: types.FileTypeText71,
		Name:     "empty",
	}, bytes.NewReader(nil), &out)
	require.NoError(t, err)
	assert.Zero(t, h.SectorCount)
	assert.Equal(t, types.HeaderLength, out.Len())
}

func TestParseTimestampPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    TimestampPolicy
		wantErr bool
	}{
		{"now", TimestampNow, false},
		{"NOW", TimestampNow, false},
		{"mtime", TimestampModTime, false},
		{"", TimestampModTime, false},
		{"yesterday", "", true},
	}

	for _, tt := range tests {
		got, err := ParseTimestampPolicy(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestResolveTimestamp(t *testing.T) {
	fixed := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.Local)
	now := func() time.Time { return fixed }

	path := filepath.Join(t.TempDir(), "source.bin")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	mtime := time.Date(1999, time.December, 31, 23, 59, 0, 0, time.Local)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	assert.True(t, ResolveTimestamp(TimestampModTime, f, now).Equal(mtime))
	assert.True(t, ResolveTimestamp(TimestampNow, f, now).Equal(fixed))
	assert.True(t, ResolveTimestamp(TimestampModTime, nil, now).Equal(fixed))
}
