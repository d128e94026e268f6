package component

import "github.com/nullshade/dartkernel/wire"

// StringTable stores every interned string back to back, indexed by an
// end-offset list rather than individual length prefixes: entry i spans
// bytes [end_offsets[i-1], end_offsets[i]) (0 for i == 0).
type StringTable struct {
	EndOffsets []uint32
	Bytes      []byte
}

func ReadStringTable(r *wire.Reader) (StringTable, error) {
	var t StringTable
	var err error
	if t.EndOffsets, err = wire.ReadList(r, readVarU32); err != nil {
		return StringTable{}, err
	}
	n := uint32(0)
	if len(t.EndOffsets) > 0 {
		n = t.EndOffsets[len(t.EndOffsets)-1]
	}
	raw, err := r.ReadBytes(int(n))
	if err != nil {
		return StringTable{}, err
	}
	t.Bytes = raw
	return t, nil
}

func WriteStringTable(w *wire.Writer, t StringTable) error {
	if err := wire.WriteList(w, t.EndOffsets, writeVarU32); err != nil {
		return err
	}
	return w.WriteBytes(t.Bytes)
}

func readVarU32(r *wire.Reader) (uint32, error) { return r.DecodeVarUint() }
func writeVarU32(w *wire.Writer, v uint32) error { return w.EncodeVarUint(v) }

// NewStringTable packs strs back to back in order, the layout Get expects.
func NewStringTable(strs []string) StringTable {
	t := StringTable{EndOffsets: make([]uint32, 0, len(strs))}
	var buf []byte
	for _, s := range strs {
		buf = append(buf, s...)
		t.EndOffsets = append(t.EndOffsets, uint32(len(buf)))
	}
	t.Bytes = buf
	return t
}

// Get returns the i-th interned string, or false if i is out of range.
func (t StringTable) Get(i int) (string, bool) {
	if i < 0 || i >= len(t.EndOffsets) {
		return "", false
	}
	start := uint32(0)
	if i > 0 {
		start = t.EndOffsets[i-1]
	}
	end := t.EndOffsets[i]
	if end > uint32(len(t.Bytes)) || start > end {
		return "", false
	}
	return string(t.Bytes[start:end]), true
}

// Len reports how many strings are interned.
func (t StringTable) Len() int { return len(t.EndOffsets) }
