// Package ref defines the stable index references used throughout a
// component to point at entries in shared tables without embedding them
// inline — strings, canonical names, source URIs, constants and library
// dependencies. Each is a distinct type over uint32 so a StringRef can never
// be passed where a ConstantRef is expected, even though both decode as a
// VarUint on the wire.
package ref

import "github.com/nullshade/dartkernel/wire"

// StringRef indexes the shared string table, 0-based.
type StringRef uint32

// UriRef indexes the source-URI table, 0-based.
type UriRef uint32

// ConstantRef indexes the constant table, 0-based.
type ConstantRef uint32

// DependencyRef indexes a library's dependency list, 0-based.
type DependencyRef uint32

// CanonicalNameRef indexes the canonical-name table, shifted by one so that
// zero means "undefined" (no name) rather than the table's first entry.
type CanonicalNameRef uint32

// Undefined is the CanonicalNameRef wire value denoting no canonical name.
const Undefined CanonicalNameRef = 0

// IsUndefined reports whether this reference denotes "no name".
func (r CanonicalNameRef) IsUndefined() bool { return r == Undefined }

// Index returns the 0-based table index this reference names. Calling it on
// an undefined reference is a caller error; check IsUndefined first.
func (r CanonicalNameRef) Index() uint32 { return uint32(r) - 1 }

// CanonicalNameRefFromIndex shifts a 0-based table index into wire form.
func CanonicalNameRefFromIndex(i uint32) CanonicalNameRef { return CanonicalNameRef(i + 1) }

// VarRef names a local variable or parameter by its position within the
// enclosing function's scope. Unlike the other references it is never
// globally stored — it is only meaningful while decoding/encoding the body
// that declared it.
type VarRef uint32

func ReadStringRef(r *wire.Reader) (StringRef, error) {
	v, err := r.DecodeVarUint()
	return StringRef(v), err
}

func WriteStringRef(w *wire.Writer, ref StringRef) error {
	return w.EncodeVarUint(uint32(ref))
}

func ReadUriRef(r *wire.Reader) (UriRef, error) {
	v, err := r.DecodeVarUint()
	return UriRef(v), err
}

func WriteUriRef(w *wire.Writer, ref UriRef) error {
	return w.EncodeVarUint(uint32(ref))
}

func ReadConstantRef(r *wire.Reader) (ConstantRef, error) {
	v, err := r.DecodeVarUint()
	return ConstantRef(v), err
}

func WriteConstantRef(w *wire.Writer, ref ConstantRef) error {
	return w.EncodeVarUint(uint32(ref))
}

func ReadDependencyRef(r *wire.Reader) (DependencyRef, error) {
	v, err := r.DecodeVarUint()
	return DependencyRef(v), err
}

func WriteDependencyRef(w *wire.Writer, ref DependencyRef) error {
	return w.EncodeVarUint(uint32(ref))
}

func ReadCanonicalNameRef(r *wire.Reader) (CanonicalNameRef, error) {
	v, err := r.DecodeVarUint()
	return CanonicalNameRef(v), err
}

func WriteCanonicalNameRef(w *wire.Writer, ref CanonicalNameRef) error {
	return w.EncodeVarUint(uint32(ref))
}

func ReadVarRef(r *wire.Reader) (VarRef, error) {
	v, err := r.DecodeVarUint()
	return VarRef(v), err
}

func WriteVarRef(w *wire.Writer, ref VarRef) error {
	return w.EncodeVarUint(uint32(ref))
}
