package lifheader

import (
	"fmt"
	"time"

	"github.com/godwinstewart/lifheader/internal/types"
)

// centuryPivot splits two-digit years between the 1900s and the 2000s.
const centuryPivot = 70

// BCDToInt converts a packed BCD byte to its decimal value. Nybbles above 9
// are not rejected: 0xa5 decodes to 105.
func BCDToInt(b byte) int {
	return int(b>>4)*10 + int(b&0x0f)
}

// IntToBCD packs a decimal value in the range 0-99 into a BCD byte.
func IntToBCD(d int) byte {
	return byte((d/10)<<4 + d%10)
}

// YearFromBCD expands a two-digit BCD year using the 1970 pivot.
func YearFromBCD(b byte) int {
	yr := 1900 + BCDToInt(b)
	if yr < 1900+centuryPivot {
		yr += 100
	}
	return yr
}

// TimestampFromTime encodes t as a LIF BCD timestamp.
func TimestampFromTime(t time.Time) types.Timestamp {
	return types.Timestamp{
		IntToBCD(t.Year() % 100),
		IntToBCD(int(t.Month())),
		IntToBCD(t.Day()),
		IntToBCD(t.Hour()),
		IntToBCD(t.Minute()),
		IntToBCD(t.Second()),
	}
}

// TimestampToTime decodes a LIF BCD timestamp in the local time zone.
// Out-of-range fields are normalised by time.Date.
func TimestampToTime(ts types.Timestamp) time.Time {
	return time.Date(
		YearFromBCD(ts[0]),
		time.Month(BCDToInt(ts[1])),
		BCDToInt(ts[2]),
		BCDToInt(ts[3]),
		BCDToInt(ts[4]),
		BCDToInt(ts[5]),
		0,
		time.Local,
	)
}

// FormatTimestamp renders a timestamp field by field, without normalising
// out-of-range values the way TimestampToTime does.
func FormatTimestamp(ts types.Timestamp) string {
	return fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d",
		YearFromBCD(ts[0]),
		BCDToInt(ts[1]),
		BCDToInt(ts[2]),
		BCDToInt(ts[3]),
		BCDToInt(ts[4]),
		BCDToInt(ts[5]),
	)
}
