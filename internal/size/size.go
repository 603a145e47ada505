package size

import (
	"math"
	"strconv"
)

// Size is a byte count. Adds and compares like the integer it wraps,
// displays with the largest unit that keeps the value below 1024.
type Size uint64

// units past EB are unreachable with 64-bit byte counts
var units = [...]string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// New returns a Size of the given number of bytes.
func New(bytes uint64) Size {
	return Size(bytes)
}

// Bytes returns the raw byte count.
func (s Size) Bytes() uint64 {
	return uint64(s)
}

// Add returns the combined size of s and other.
func (s Size) Add(other Size) Size {
	return s + other
}

// String formats the size with two-decimal rounding, dropping the fraction
// entirely when it rounds away: "1 KB", "2.3 MB", "1.25 GB", "0 B".
func (s Size) String() string {
	value := float64(s)
	unit := 0
	for value >= 1024 && unit < len(units)-1 {
		value /= 1024
		unit++
	}
	value = math.Round(value*100) / 100

	return strconv.FormatFloat(value, 'f', -1, 64) + " " + units[unit]
}
