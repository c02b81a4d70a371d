package codec_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/filehash/internal/core/codec"
	"go.trai.ch/filehash/internal/core/domain"
)

func TestFingerprintSerializer_WireLayout(t *testing.T) {
	fp := domain.NewFingerprint([]byte{0xde, 0xad}, 10, 1000)

	data, err := codec.Marshal(codec.FingerprintSerializer{}, fp)
	require.NoError(t, err)

	want := []byte{
		0x00, 0x00, 0x00, 0x02, // hash length
		0xde, 0xad, // hash
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe8, // modTime = 1000
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0a, // size = 10
	}
	assert.Equal(t, want, data)
}

func TestFingerprintSerializer_DecodesTimeBeforeSize(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x01,
		0x7f,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x64, // modTime = 100
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05, // size = 5
	}

	fp, err := codec.Unmarshal(codec.FingerprintSerializer{}, data)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x7f}, fp.Hash())
	assert.Equal(t, int64(100), fp.ModTime())
	assert.Equal(t, int64(5), fp.Size())
}

func TestFingerprintSerializer_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fp   *domain.Fingerprint
	}{
		{name: "typical", fp: domain.NewFingerprint([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 12, 1001)},
		{name: "empty hash", fp: domain.NewFingerprint(nil, 0, 0)},
		{name: "negative time", fp: domain.NewFingerprint([]byte{9}, 1, -42)},
		{name: "extremes", fp: domain.NewFingerprint(bytes.Repeat([]byte{0xff}, 32), math.MaxInt64, math.MinInt64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := codec.Marshal(codec.FingerprintSerializer{}, tt.fp)
			require.NoError(t, err)

			got, err := codec.Unmarshal(codec.FingerprintSerializer{}, data)
			require.NoError(t, err)
			assert.True(t, tt.fp.Equal(got), "round trip changed the record")
		})
	}
}

func TestFingerprintSerializer_Truncated(t *testing.T) {
	fp := domain.NewFingerprint([]byte{1, 2, 3}, 10, 1000)
	data, err := codec.Marshal(codec.FingerprintSerializer{}, fp)
	require.NoError(t, err)

	for n := 0; n < len(data); n++ {
		_, err := codec.Unmarshal(codec.FingerprintSerializer{}, data[:n])
		require.ErrorIs(t, err, codec.ErrTruncated, "prefix of length %d", n)
	}
}

func TestUnmarshal_TrailingData(t *testing.T) {
	fp := domain.NewFingerprint([]byte{1}, 1, 1)
	data, err := codec.Marshal(codec.FingerprintSerializer{}, fp)
	require.NoError(t, err)

	_, err = codec.Unmarshal(codec.FingerprintSerializer{}, append(data, 0))
	require.ErrorIs(t, err, codec.ErrTrailingData)
}

func TestDecoder_NegativeLength(t *testing.T) {
	d := codec.NewDecoder(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff}))
	_, err := d.ReadBinary()
	require.Error(t, err)
	assert.ErrorContains(t, err, codec.ErrInvalidLength.Error())
}

func TestEncoderDecoder_Primitives(t *testing.T) {
	var buf bytes.Buffer
	e := codec.NewEncoder(&buf)
	require.NoError(t, e.WriteInt(-7))
	require.NoError(t, e.WriteLong(1<<40))
	require.NoError(t, e.WriteString("/data/a.bin"))
	require.NoError(t, e.WriteBinary([]byte{}))

	d := codec.NewDecoder(&buf)
	i, err := d.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, int32(-7), i)

	l, err := d.ReadLong()
	require.NoError(t, err)
	assert.Equal(t, int64(1<<40), l)

	s, err := d.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "/data/a.bin", s)

	b, err := d.ReadBinary()
	require.NoError(t, err)
	assert.Empty(t, b)
}

type failingWriter struct{ calls int }

func (w *failingWriter) Write([]byte) (int, error) {
	w.calls++
	return 0, errors.New("disk full")
}

func TestEncoder_StickyError(t *testing.T) {
	w := &failingWriter{}
	e := codec.NewEncoder(w)

	require.EqualError(t, e.WriteLong(1), "disk full")
	require.EqualError(t, e.WriteInt(2), "disk full")
	assert.Equal(t, 1, w.calls, "writes after the first failure must be skipped")
	assert.EqualError(t, e.Err(), "disk full")
}
