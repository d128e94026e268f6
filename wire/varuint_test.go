package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// helper: bytes.Buffer doesn't implement io.Seeker, so wrap it like the
// round-trip tests in writer.rs do with an in-memory Cursor.
type seekBuf struct {
	bytes.Buffer
	pos int64
}

func (s *seekBuf) Write(p []byte) (int, error) {
	n, err := s.Buffer.Write(p)
	s.pos += int64(n)
	return n, err
}

func (s *seekBuf) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		s.pos = offset
	case 1:
		s.pos += offset
	case 2:
		s.pos = int64(s.Buffer.Len()) + offset
	}
	return s.pos, nil
}

func TestVarUint_KnownEncodings(t *testing.T) {
	// Scenario 3 (spec §8): exact byte sequences for representative values.
	tests := []struct {
		v    uint32
		want []byte
	}{
		{12, []byte{0x0C}},
		{81, []byte{0x51}},
		{4321, []byte{0x90, 0xE1}},
		{123456, []byte{0xC0, 0x01, 0xE2, 0x40}},
		{87654321, []byte{0xC5, 0x39, 0x7F, 0xB1}},
	}
	for _, tt := range tests {
		buf := &seekBuf{}
		w := NewWriter(buf)
		require.NoError(t, w.EncodeVarUint(tt.v))
		require.Equal(t, tt.want, buf.Bytes())

		r := NewReader(bytes.NewReader(buf.Bytes()))
		got, err := r.DecodeVarUint()
		require.NoError(t, err)
		require.Equal(t, tt.v, got)
	}
}

func TestVarUint_WidthBoundaries(t *testing.T) {
	tests := []struct {
		v         uint32
		wantWidth int
	}{
		{0, 1},
		{0x7F, 1},
		{0x80, 2},
		{0x3FFF, 2},
		{0x4000, 4},
		{MaxVarUint, 4},
	}
	for _, tt := range tests {
		buf := &seekBuf{}
		w := NewWriter(buf)
		require.NoError(t, w.EncodeVarUint(tt.v))
		require.Len(t, buf.Bytes(), tt.wantWidth, "value %d", tt.v)

		r := NewReader(bytes.NewReader(buf.Bytes()))
		got, err := r.DecodeVarUint()
		require.NoError(t, err)
		require.Equal(t, tt.v, got)
	}
}

func TestVarUint_TooLarge(t *testing.T) {
	buf := &seekBuf{}
	w := NewWriter(buf)
	err := w.EncodeVarUint(MaxVarUint + 1)
	require.Error(t, err)

	var wireErr *Error
	require.ErrorAs(t, err, &wireErr)
	require.Equal(t, KindInvalidVarUint, wireErr.Kind)
}

func TestVarUint_Roundtrip(t *testing.T) {
	values := []uint32{0, 1, 12, 81, 255, 4321, 16383, 16384, 123456, 87654321, MaxVarUint}
	for _, v := range values {
		buf := &seekBuf{}
		w := NewWriter(buf)
		require.NoError(t, w.EncodeVarUint(v))

		r := NewReader(bytes.NewReader(buf.Bytes()))
		got, err := r.DecodeVarUint()
		require.NoError(t, err)
		require.Equal(t, v, got, "roundtrip for %d", v)
	}
}
