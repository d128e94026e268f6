// Package component implements the container format around a compiled
// program: the fixed header, the tail index that makes every section
// random-accessible, and the library/class/member records those offsets
// point at. Grounded on original_source/src/component.rs and node.rs.
package component

import "github.com/nullshade/dartkernel/wire"

// HeaderMagic is the four-byte tag that opens every container.
var HeaderMagic = []byte{0x90, 0xAB, 0xCD, 0xEF}

// Header identifies the format version and the SDK build that produced it.
type Header struct {
	Version uint32
	SdkHash [10]byte
}

// Known (version, sdk_hash) pairs seen in the wild, preserved for callers
// that need to stamp a header without sourcing one from an existing file.
// sdk_hash is the SDK git commit's short hash, stored as its own ASCII hex
// digits rather than as binary — ten bytes spelling out ten hex characters.
var (
	Dart2151   = Header{Version: 74, SdkHash: [10]byte{'3', '1', '2', '7', '8', 'b', 'd', '5', 'a', 'd'}}
	Dart216134 = Header{Version: 75, SdkHash: [10]byte{'4', '5', '5', 'f', 'e', '9', 'd', '1', '8', '0'}}
	Dart2171   = Header{Version: 75, SdkHash: [10]byte{'3', '5', 'd', '6', '6', '8', '0', '0', '4', '7'}}
)

func ReadHeader(r *wire.Reader) (Header, error) {
	var h Header
	if err := r.ReadMagic(HeaderMagic); err != nil {
		return Header{}, err
	}
	var err error
	if h.Version, err = r.ReadU32(); err != nil {
		return Header{}, err
	}
	raw, err := r.ReadBytes(10)
	if err != nil {
		return Header{}, err
	}
	copy(h.SdkHash[:], raw)
	return h, nil
}

func WriteHeader(w *wire.Writer, h Header) error {
	if err := w.WriteMagic(HeaderMagic); err != nil {
		return err
	}
	if err := w.WriteU32(h.Version); err != nil {
		return err
	}
	return w.WriteBytes(h.SdkHash[:])
}
