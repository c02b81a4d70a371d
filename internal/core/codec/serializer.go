package codec

import (
	"bytes"

	"go.trai.ch/filehash/internal/core/domain"
)

// Serializer converts values of type V to and from the binary layout.
type Serializer[V any] interface {
	// Write encodes v.
	Write(e *Encoder, v V) error
	// Read decodes a value previously written by Write.
	Read(d *Decoder) (V, error)
}

// FingerprintSerializer encodes a Fingerprint as:
//
//	hash     4-byte length + bytes
//	modTime  8 bytes
//	size     8 bytes
//
// The order is the persisted contract and must not follow field order.
type FingerprintSerializer struct{}

var _ Serializer[*domain.Fingerprint] = FingerprintSerializer{}

// Write encodes fp.
func (FingerprintSerializer) Write(e *Encoder, fp *domain.Fingerprint) error {
	if err := e.WriteBinary(fp.Hash()); err != nil {
		return err
	}
	if err := e.WriteLong(fp.ModTime()); err != nil {
		return err
	}
	return e.WriteLong(fp.Size())
}

// Read decodes a Fingerprint.
func (FingerprintSerializer) Read(d *Decoder) (*domain.Fingerprint, error) {
	hash, err := d.ReadBinary()
	if err != nil {
		return nil, err
	}
	modTime, err := d.ReadLong()
	if err != nil {
		return nil, err
	}
	size, err := d.ReadLong()
	if err != nil {
		return nil, err
	}
	return domain.NewFingerprint(hash, size, modTime), nil
}

// Marshal encodes v into a new byte slice.
func Marshal[V any](s Serializer[V], v V) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Write(NewEncoder(&buf), v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a value from data. Trailing bytes are an error.
func Unmarshal[V any](s Serializer[V], data []byte) (V, error) {
	r := bytes.NewReader(data)
	v, err := s.Read(NewDecoder(r))
	if err != nil {
		var zero V
		return zero, err
	}
	if r.Len() != 0 {
		var zero V
		return zero, ErrTrailingData
	}
	return v, nil
}
