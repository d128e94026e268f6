package wire

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer encodes to a seekable byte sink, capturing the stream position
// on demand so callers can record offsets the way the two-pass writer does
// for every nested entity (spec §4.5).
type Writer struct {
	w io.WriteSeeker
}

// NewWriter wraps a seekable sink for encoding.
func NewWriter(w io.WriteSeeker) *Writer {
	return &Writer{w: w}
}

// Pos returns the current absolute write position.
func (w *Writer) Pos() (uint32, error) {
	pos, err := w.w.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, wrapIO(err)
	}
	if pos < 0 || pos > math.MaxUint32 {
		return 0, newErr(KindIO, "stream position %d exceeds 32-bit offset space", pos)
	}
	return uint32(pos), nil
}

func (w *Writer) writeBytes(b []byte) error {
	n, err := w.w.Write(b)
	if err != nil {
		return ShortWrite(err)
	}
	if n != len(b) {
		return ShortWrite(io.ErrShortWrite)
	}
	return nil
}

// WriteByte writes a single raw byte.
func (w *Writer) WriteByte(b byte) error {
	return w.writeBytes([]byte{b})
}

// WriteBytes writes raw bytes verbatim (the "bytes" container codec, §4.1).
func (w *Writer) WriteBytes(b []byte) error {
	return w.writeBytes(b)
}

// WriteU8 writes a fixed-width u8.
func (w *Writer) WriteU8(v uint8) error {
	return w.WriteByte(v)
}

// WriteU32 writes a fixed-width big-endian u32.
func (w *Writer) WriteU32(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return w.writeBytes(b[:])
}

// WriteF64 writes a fixed-width big-endian IEEE-754 double.
func (w *Writer) WriteF64(v float64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(v))
	return w.writeBytes(b[:])
}

// WriteMagic writes a compile-time byte pattern verbatim.
func (w *Writer) WriteMagic(tag []byte) error {
	return w.writeBytes(tag)
}

// WriteUTF8 writes a VarUint byte-length prefix followed by the UTF-8 bytes.
func (w *Writer) WriteUTF8(s string) error {
	b := []byte(s)
	if err := w.EncodeVarUint(uint32(len(b))); err != nil {
		return err
	}
	return w.writeBytes(b)
}

// WriteOption writes the option container: 0x00 for nil, or 0x01 followed by
// the payload encoded with encode.
func WriteOption[T any](w *Writer, item *T, encode func(*Writer, T) error) error {
	if item == nil {
		return w.WriteByte(0x00)
	}
	if err := w.WriteByte(0x01); err != nil {
		return err
	}
	return encode(w, *item)
}

// WriteList writes the length-prefixed sequence container: a VarUint count
// followed by each element encoded with encode, in order.
func WriteList[T any](w *Writer, items []T, encode func(*Writer, T) error) error {
	if err := w.EncodeVarUint(uint32(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if err := encode(w, item); err != nil {
			return err
		}
	}
	return nil
}

// WriteU32Array writes a raw sequence of u32s with no length prefix — used
// for the trailing offset arrays in libraries and classes, where the count is
// implied by context rather than self-described.
func WriteU32Array(w *Writer, values []uint32) error {
	for _, v := range values {
		if err := w.WriteU32(v); err != nil {
			return err
		}
	}
	return nil
}

// ReadU32Array reads n raw u32s with no length prefix.
func ReadU32Array(r *Reader, n int) ([]uint32, error) {
	out := make([]uint32, n)
	for i := range out {
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
