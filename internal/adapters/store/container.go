package store

import (
	"bytes"
	"errors"
	"slices"

	"go.trai.ch/filehash/internal/core/codec"
	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// containerMagic opens every cache file ("FHC\x00").
	containerMagic int32 = 0x46484300

	// containerVersion is the only cache file layout this build reads and writes.
	containerVersion int32 = 1
)

// encodeContainer writes entries, ordered by key, as a cache file body.
func encodeContainer(entries map[string][]byte) ([]byte, error) {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	e := codec.NewEncoder(&buf)
	_ = e.WriteInt(containerMagic)
	_ = e.WriteInt(containerVersion)
	_ = e.WriteInt(int32(len(keys))) //nolint:gosec // entry count fits the format
	for _, k := range keys {
		_ = e.WriteString(k)
		_ = e.WriteBinary(entries[k])
	}
	if err := e.Err(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeContainer parses a cache file body into raw entry values.
func decodeContainer(data []byte) (map[string][]byte, error) {
	r := bytes.NewReader(data)
	d := codec.NewDecoder(r)

	magic, err := d.ReadInt()
	if err != nil {
		return nil, corrupt(err)
	}
	if magic != containerMagic {
		return nil, zerr.With(domain.ErrStoreCorrupt, "reason", "bad magic")
	}

	version, err := d.ReadInt()
	if err != nil {
		return nil, corrupt(err)
	}
	if version != containerVersion {
		return nil, zerr.With(domain.ErrStoreVersionUnsupported, "version", version)
	}

	count, err := d.ReadInt()
	if err != nil {
		return nil, corrupt(err)
	}
	if count < 0 {
		return nil, zerr.With(domain.ErrStoreCorrupt, "reason", "negative entry count")
	}

	entries := make(map[string][]byte, min(int(count), r.Len()))
	for range count {
		key, err := d.ReadString()
		if err != nil {
			return nil, corrupt(err)
		}
		value, err := d.ReadBinary()
		if err != nil {
			return nil, corrupt(err)
		}
		entries[key] = value
	}

	if r.Len() != 0 {
		return nil, zerr.With(domain.ErrStoreCorrupt, "reason", "trailing data")
	}
	return entries, nil
}

func corrupt(err error) error {
	if errors.Is(err, codec.ErrTruncated) {
		return zerr.With(domain.ErrStoreCorrupt, "reason", "truncated")
	}
	return zerr.Wrap(err, domain.ErrStoreCorrupt.Error())
}
