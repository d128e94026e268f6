package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUTF8_Roundtrip(t *testing.T) {
	tests := []string{"", "hello", "test😵"}
	for _, s := range tests {
		buf := &seekBuf{}
		w := NewWriter(buf)
		require.NoError(t, w.WriteUTF8(s))

		r := NewReader(bytes.NewReader(buf.Bytes()))
		got, err := r.ReadUTF8()
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}

func TestMagic_Mismatch(t *testing.T) {
	buf := &seekBuf{}
	w := NewWriter(buf)
	require.NoError(t, w.WriteMagic([]byte{0x90, 0xAB, 0xCD, 0xEE}))

	r := NewReader(bytes.NewReader(buf.Bytes()))
	err := r.ReadMagic([]byte{0x90, 0xAB, 0xCD, 0xEF})
	require.Error(t, err)

	var wireErr *Error
	require.ErrorAs(t, err, &wireErr)
	require.Equal(t, KindWrongMagic, wireErr.Kind)
}

func TestOption_Roundtrip(t *testing.T) {
	encode := func(w *Writer, v uint32) error { return w.WriteU32(v) }
	decode := func(r *Reader) (uint32, error) { return r.ReadU32() }

	buf := &seekBuf{}
	w := NewWriter(buf)
	require.NoError(t, WriteOption(w, (*uint32)(nil), encode))
	v := uint32(42)
	require.NoError(t, WriteOption(w, &v, encode))

	r := NewReader(bytes.NewReader(buf.Bytes()))
	got, err := ReadOption(r, decode)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = ReadOption(r, decode)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, v, *got)
}

func TestOption_InvalidTag(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x02}))
	_, err := ReadOption(r, func(r *Reader) (uint32, error) { return r.ReadU32() })
	require.Error(t, err)

	var wireErr *Error
	require.ErrorAs(t, err, &wireErr)
	require.Equal(t, KindInvalidOption, wireErr.Kind)
}

func TestList_Roundtrip(t *testing.T) {
	encode := func(w *Writer, v uint32) error { return w.EncodeVarUint(v) }
	decode := func(r *Reader) (uint32, error) { return r.DecodeVarUint() }

	values := []uint32{1, 2, 3, 4321}
	buf := &seekBuf{}
	w := NewWriter(buf)
	require.NoError(t, WriteList(w, values, encode))

	r := NewReader(bytes.NewReader(buf.Bytes()))
	got, err := ReadList(r, decode)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestList_Empty(t *testing.T) {
	encode := func(w *Writer, v uint32) error { return w.EncodeVarUint(v) }
	decode := func(r *Reader) (uint32, error) { return r.DecodeVarUint() }

	buf := &seekBuf{}
	w := NewWriter(buf)
	require.NoError(t, WriteList(w, []uint32(nil), encode))
	require.Equal(t, []byte{0x00}, buf.Bytes())

	r := NewReader(bytes.NewReader(buf.Bytes()))
	got, err := ReadList(r, decode)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReadByte_ShortRead(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	_, err := r.ReadByte()
	require.Error(t, err)

	var wireErr *Error
	require.ErrorAs(t, err, &wireErr)
	require.Equal(t, KindShortRead, wireErr.Kind)
}

func TestPos_TracksWrites(t *testing.T) {
	buf := &seekBuf{}
	w := NewWriter(buf)
	p0, err := w.Pos()
	require.NoError(t, err)
	require.Equal(t, uint32(0), p0)

	require.NoError(t, w.WriteU32(1))
	p1, err := w.Pos()
	require.NoError(t, err)
	require.Equal(t, uint32(4), p1)
}
