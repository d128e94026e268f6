package wire

import (
	"encoding/binary"
	"io"
	"math"
)

// Reader decodes from a seekable byte source, tracking nothing but the
// source itself — every absolute position query goes straight to Seek, the
// way a component.File re-seeks for each random-access operation (spec §4.6).
type Reader struct {
	r io.ReadSeeker
}

// NewReader wraps a seekable source for decoding.
func NewReader(r io.ReadSeeker) *Reader {
	return &Reader{r: r}
}

// Pos returns the current absolute read position.
func (r *Reader) Pos() (int64, error) {
	return r.r.Seek(0, io.SeekCurrent)
}

// SeekAbs repositions to an absolute byte offset from the start of the source.
func (r *Reader) SeekAbs(offset int64) error {
	_, err := r.r.Seek(offset, io.SeekStart)
	if err != nil {
		return wrapIO(err)
	}
	return nil
}

// SeekFromEnd repositions to offset bytes before the end of the source.
func (r *Reader) SeekFromEnd(offset int64) error {
	_, err := r.r.Seek(offset, io.SeekEnd)
	if err != nil {
		return wrapIO(err)
	}
	return nil
}

func (r *Reader) readBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ShortRead(n, 0)
		}
		return nil, wrapIO(err)
	}
	return buf, nil
}

// ReadByte reads a single raw byte.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.readBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBytes reads exactly n raw bytes (the "bytes" container codec, §4.1).
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	return r.readBytes(n)
}

// ReadU8 reads a fixed-width u8.
func (r *Reader) ReadU8() (uint8, error) {
	return r.ReadByte()
}

// ReadU32 reads a fixed-width big-endian u32.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadF64 reads a fixed-width big-endian IEEE-754 double.
func (r *Reader) ReadF64() (float64, error) {
	b, err := r.readBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

// ReadMagic reads len(expected) bytes and compares them for equality.
func (r *Reader) ReadMagic(expected []byte) error {
	actual, err := r.readBytes(len(expected))
	if err != nil {
		return err
	}
	for i := range expected {
		if actual[i] != expected[i] {
			return WrongMagic(expected, actual)
		}
	}
	return nil
}

// ReadUTF8 reads a VarUint byte-length prefix followed by that many UTF-8 bytes.
func (r *Reader) ReadUTF8() (string, error) {
	n, err := r.DecodeVarUint()
	if err != nil {
		return "", err
	}
	raw, err := r.readBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ReadOption reads the option container: a 0x00/0x01 presence byte followed,
// when present, by the payload decoded with decode.
func ReadOption[T any](r *Reader, decode func(*Reader) (T, error)) (*T, error) {
	b, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	switch b {
	case 0x00:
		return nil, nil
	case 0x01:
		v, err := decode(r)
		if err != nil {
			return nil, err
		}
		return &v, nil
	default:
		return nil, InvalidOption(b)
	}
}

// ReadList reads the length-prefixed sequence container: a VarUint count
// followed by that many elements decoded with decode.
func ReadList[T any](r *Reader, decode func(*Reader) (T, error)) ([]T, error) {
	n, err := r.DecodeVarUint()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]T, n)
	for i := range out {
		v, err := decode(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
