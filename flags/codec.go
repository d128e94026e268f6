package flags

import "github.com/nullshade/dartkernel/wire"

// Every flag word round-trips through the fixed-width u8/u16 primitives, not
// VarUint — flags.rs encodes each word's raw byte representation directly.

func ReadLibraryFlags(r *wire.Reader) (LibraryFlags, error) {
	b, err := r.ReadU8()
	return LibraryFlagsFromRaw(b), err
}

func WriteLibraryFlags(w *wire.Writer, f LibraryFlags) error {
	return w.WriteU8(f.Raw())
}

func ReadDependencyFlags(r *wire.Reader) (DependencyFlags, error) {
	b, err := r.ReadU8()
	return DependencyFlagsFromRaw(b), err
}

func WriteDependencyFlags(w *wire.Writer, f DependencyFlags) error {
	return w.WriteU8(f.Raw())
}

func ReadCombinatorFlags(r *wire.Reader) (CombinatorFlags, error) {
	b, err := r.ReadU8()
	return CombinatorFlagsFromRaw(b), err
}

func WriteCombinatorFlags(w *wire.Writer, f CombinatorFlags) error {
	return w.WriteU8(f.Raw())
}

func ReadClassFlags(r *wire.Reader) (ClassFlags, error) {
	b, err := r.ReadU8()
	return ClassFlagsFromRaw(b), err
}

func WriteClassFlags(w *wire.Writer, f ClassFlags) error {
	return w.WriteU8(f.Raw())
}

// ReadFieldFlags decodes the sole two-byte word as a big-endian u16, matching
// every other fixed-width field in the container.
func ReadFieldFlags(r *wire.Reader) (FieldFlags, error) {
	hi, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	lo, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	return FieldFlagsFromRaw(uint16(hi)<<8 | uint16(lo)), nil
}

func WriteFieldFlags(w *wire.Writer, f FieldFlags) error {
	raw := f.Raw()
	if err := w.WriteU8(uint8(raw >> 8)); err != nil {
		return err
	}
	return w.WriteU8(uint8(raw))
}

func ReadConstructorFlags(r *wire.Reader) (ConstructorFlags, error) {
	b, err := r.ReadU8()
	return ConstructorFlagsFromRaw(b), err
}

func WriteConstructorFlags(w *wire.Writer, f ConstructorFlags) error {
	return w.WriteU8(f.Raw())
}

func ReadProcedureFlags(r *wire.Reader) (ProcedureFlags, error) {
	b, err := r.ReadU8()
	return ProcedureFlagsFromRaw(b), err
}

func WriteProcedureFlags(w *wire.Writer, f ProcedureFlags) error {
	return w.WriteU8(f.Raw())
}

func ReadInvocationFlags(r *wire.Reader) (InvocationFlags, error) {
	b, err := r.ReadU8()
	return InvocationFlagsFromRaw(b), err
}

func WriteInvocationFlags(w *wire.Writer, f InvocationFlags) error {
	return w.WriteU8(f.Raw())
}

func ReadDynamicCastFlags(r *wire.Reader) (DynamicCastFlags, error) {
	b, err := r.ReadU8()
	return DynamicCastFlagsFromRaw(b), err
}

func WriteDynamicCastFlags(w *wire.Writer, f DynamicCastFlags) error {
	return w.WriteU8(f.Raw())
}

func ReadVarDeclFlags(r *wire.Reader) (VarDeclFlags, error) {
	b, err := r.ReadU8()
	return VarDeclFlagsFromRaw(b), err
}

func WriteVarDeclFlags(w *wire.Writer, f VarDeclFlags) error {
	return w.WriteU8(f.Raw())
}
