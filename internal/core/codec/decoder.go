package codec

import (
	"encoding/binary"
	"errors"
	"io"

	"go.trai.ch/zerr"
)

// maxLength bounds any length prefix so a corrupt prefix cannot force a huge allocation.
const maxLength = 1 << 30

var (
	// ErrTruncated is returned when the input ends before a value is complete.
	ErrTruncated = zerr.New("unexpected end of encoded data")

	// ErrInvalidLength is returned when a length prefix is negative or too large.
	ErrInvalidLength = zerr.New("invalid length prefix")

	// ErrTrailingData is returned when bytes remain after a value was decoded.
	ErrTrailingData = zerr.New("trailing data after encoded value")
)

// Decoder reads primitive values written by an Encoder.
type Decoder struct {
	r   io.Reader
	buf [8]byte
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadLong reads an 8-byte signed integer.
func (d *Decoder) ReadLong() (int64, error) {
	if err := d.readFull(d.buf[:8]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(d.buf[:8])), nil //nolint:gosec // two's complement round trip
}

// ReadInt reads a 4-byte signed integer.
func (d *Decoder) ReadInt() (int32, error) {
	if err := d.readFull(d.buf[:4]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(d.buf[:4])), nil //nolint:gosec // two's complement round trip
}

// ReadBinary reads a length-prefixed byte sequence.
func (d *Decoder) ReadBinary() ([]byte, error) {
	n, err := d.ReadInt()
	if err != nil {
		return nil, err
	}
	if n < 0 || n > maxLength {
		return nil, zerr.With(ErrInvalidLength, "length", n)
	}
	b := make([]byte, n)
	if err := d.readFull(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadString reads a length-prefixed string.
func (d *Decoder) ReadString() (string, error) {
	b, err := d.ReadBinary()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (d *Decoder) readFull(b []byte) error {
	if _, err := io.ReadFull(d.r, b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncated
		}
		return err
	}
	return nil
}
