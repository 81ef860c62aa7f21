package int24

import (
	"errors"
	"io"

	"github.com/calebcase/int24/raw"
)

// Decoder reads successive values from a stream of fixed 3 byte records.
type Decoder struct {
	r   io.Reader
	buf [Size]byte
}

// NewDecoder returns a new decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Decode reads the next value from the stream. A clean end of stream
// returns io.EOF untouched. A record truncated mid value is an error.
func (d *Decoder) Decode(v *Int24) (err error) {
	_, err = io.ReadFull(d.r, d.buf[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}

		return Error.Wrap(err)
	}

	v.p = raw.Pattern{d.buf[0], d.buf[1], d.buf[2]}

	return nil
}
