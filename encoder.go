package int24

import "io"

// Encoder writes successive values to a stream as fixed 3 byte records.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes a single value to the stream.
func (e *Encoder) Encode(v Int24) (err error) {
	_, err = e.w.Write([]byte{v.p[0], v.p[1], v.p[2]})
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}
