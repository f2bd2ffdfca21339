package stream

// Endianness selects which end of a byte is filled first when a multi-bit
// value spans partial bytes.
type Endianness uint8

const (
	// LittleEndian packs the first bits read or written into the low-order
	// bits of the value. This is the default.
	LittleEndian Endianness = 0

	// BigEndian packs bits starting from the most-significant end of the
	// value within the current byte.
	BigEndian Endianness = 1
)

func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "Little"
	case BigEndian:
		return "Big"
	default:
		return "Unknown"
	}
}
