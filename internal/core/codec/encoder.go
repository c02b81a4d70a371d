// Package codec implements the fixed binary layout used to persist fingerprints.
//
// All integers are big-endian. Byte sequences and strings carry a 4-byte
// signed length prefix.
package codec

import (
	"encoding/binary"
	"io"
)

// Encoder writes primitive values to an underlying writer.
// The first write error is kept and returned by every later call.
type Encoder struct {
	w   io.Writer
	buf [8]byte
	err error
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// WriteLong writes an 8-byte signed integer.
func (e *Encoder) WriteLong(v int64) error {
	binary.BigEndian.PutUint64(e.buf[:8], uint64(v))
	return e.write(e.buf[:8])
}

// WriteInt writes a 4-byte signed integer.
func (e *Encoder) WriteInt(v int32) error {
	binary.BigEndian.PutUint32(e.buf[:4], uint32(v))
	return e.write(e.buf[:4])
}

// WriteBinary writes a length-prefixed byte sequence.
func (e *Encoder) WriteBinary(b []byte) error {
	if len(b) > maxLength {
		return ErrInvalidLength
	}
	if err := e.WriteInt(int32(len(b))); err != nil { //nolint:gosec // bounded by maxLength
		return err
	}
	return e.write(b)
}

// WriteString writes a length-prefixed UTF-8 string.
func (e *Encoder) WriteString(s string) error {
	return e.WriteBinary([]byte(s))
}

// Err returns the first error encountered while writing.
func (e *Encoder) Err() error {
	return e.err
}

func (e *Encoder) write(b []byte) error {
	if e.err != nil {
		return e.err
	}
	if len(b) == 0 {
		return nil
	}
	_, e.err = e.w.Write(b)
	return e.err
}
