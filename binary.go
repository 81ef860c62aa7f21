package int24

import "github.com/calebcase/int24/raw"

// Size is the encoded width of a value in bytes.
const Size = 3

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// fixed 3 byte little-endian record described in the package
// documentation.
func (v Int24) MarshalBinary() (data []byte, err error) {
	return []byte{v.p[0], v.p[1], v.p[2]}, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Int24) UnmarshalBinary(data []byte) (err error) {
	if len(data) != Size {
		return Error.New("invalid length: %d", len(data))
	}

	v.p = raw.Pattern{data[0], data[1], data[2]}

	return nil
}
