// Package flags implements the bit-packed flag words attached to libraries,
// classes, members and a handful of expression/initializer nodes. Each word
// is a single fixed-width integer with named boolean (or 2-bit enum) fields
// packed LSB-first, the way modular_bitfield lays out original_source/src/flags.rs.
//
// No third-party bitfield library appears anywhere in the retrieval pack, so
// these are hand-rolled bit accessors; see DESIGN.md for that justification.
// Every word preserves unrecognized/reserved bits verbatim across a
// decode-then-encode round trip — a word is never masked down to only the
// bits this package names.
package flags

func getBit[T ~uint8 | ~uint16](v T, pos uint) bool {
	return v&(1<<pos) != 0
}

func withBit[T ~uint8 | ~uint16](v T, pos uint, set bool) T {
	if set {
		return v | (1 << pos)
	}
	return v &^ (1 << pos)
}

func getBits[T ~uint8 | ~uint16](v T, pos uint, width uint) T {
	mask := T((1 << width) - 1)
	return (v >> pos) & mask
}

func withBits[T ~uint8 | ~uint16](v T, pos uint, width uint, val T) T {
	mask := T((1 << width) - 1)
	return (v &^ (mask << pos)) | ((val & mask) << pos)
}

// LibraryFlags holds per-library bits (spec §4.3): synthetic-ness and the
// non-nullable-by-default mode, which occupies a 2-bit enum rather than a
// single flag.
type LibraryFlags uint8

func (f LibraryFlags) IsSynthetic() bool                { return getBit(uint8(f), 0) }
func (f LibraryFlags) WithIsSynthetic(v bool) LibraryFlags {
	return LibraryFlags(withBit(uint8(f), 0, v))
}

func (f LibraryFlags) IsNonNullableByDefault() bool { return getBit(uint8(f), 1) }
func (f LibraryFlags) WithIsNonNullableByDefault(v bool) LibraryFlags {
	return LibraryFlags(withBit(uint8(f), 1, v))
}

// NNBMode returns the 2-bit non-nullable-by-default mode at bits 2-3.
func (f LibraryFlags) NNBMode() uint8 { return uint8(getBits(uint8(f), 2, 2)) }
func (f LibraryFlags) WithNNBMode(mode uint8) LibraryFlags {
	return LibraryFlags(withBits(uint8(f), 2, 2, mode))
}

func (f LibraryFlags) Raw() uint8        { return uint8(f) }
func LibraryFlagsFromRaw(b uint8) LibraryFlags { return LibraryFlags(b) }

// DependencyFlags holds per-import/export bits (spec §4.3).
type DependencyFlags uint8

func (f DependencyFlags) IsExport() bool { return getBit(uint8(f), 0) }
func (f DependencyFlags) WithIsExport(v bool) DependencyFlags {
	return DependencyFlags(withBit(uint8(f), 0, v))
}

func (f DependencyFlags) IsDeferred() bool { return getBit(uint8(f), 1) }
func (f DependencyFlags) WithIsDeferred(v bool) DependencyFlags {
	return DependencyFlags(withBit(uint8(f), 1, v))
}

func (f DependencyFlags) Raw() uint8            { return uint8(f) }
func DependencyFlagsFromRaw(b uint8) DependencyFlags { return DependencyFlags(b) }

// CombinatorFlags distinguishes a show-combinator from a hide-combinator.
type CombinatorFlags uint8

func (f CombinatorFlags) IsShow() bool { return getBit(uint8(f), 0) }
func (f CombinatorFlags) WithIsShow(v bool) CombinatorFlags {
	return CombinatorFlags(withBit(uint8(f), 0, v))
}

func (f CombinatorFlags) Raw() uint8             { return uint8(f) }
func CombinatorFlagsFromRaw(b uint8) CombinatorFlags { return CombinatorFlags(b) }

// ClassFlags holds per-class bits (spec §4.3).
type ClassFlags uint8

func (f ClassFlags) IsAbstract() bool { return getBit(uint8(f), 0) }
func (f ClassFlags) WithIsAbstract(v bool) ClassFlags {
	return ClassFlags(withBit(uint8(f), 0, v))
}

func (f ClassFlags) IsEnum() bool { return getBit(uint8(f), 1) }
func (f ClassFlags) WithIsEnum(v bool) ClassFlags {
	return ClassFlags(withBit(uint8(f), 1, v))
}

func (f ClassFlags) IsAnonymousMixin() bool { return getBit(uint8(f), 2) }
func (f ClassFlags) WithIsAnonymousMixin(v bool) ClassFlags {
	return ClassFlags(withBit(uint8(f), 2, v))
}

func (f ClassFlags) IsEliminatedMixin() bool { return getBit(uint8(f), 3) }
func (f ClassFlags) WithIsEliminatedMixin(v bool) ClassFlags {
	return ClassFlags(withBit(uint8(f), 3, v))
}

func (f ClassFlags) IsMixinDeclaration() bool { return getBit(uint8(f), 4) }
func (f ClassFlags) WithIsMixinDeclaration(v bool) ClassFlags {
	return ClassFlags(withBit(uint8(f), 4, v))
}

func (f ClassFlags) HasConstConstructor() bool { return getBit(uint8(f), 5) }
func (f ClassFlags) WithHasConstConstructor(v bool) ClassFlags {
	return ClassFlags(withBit(uint8(f), 5, v))
}

func (f ClassFlags) IsMacro() bool { return getBit(uint8(f), 6) }
func (f ClassFlags) WithIsMacro(v bool) ClassFlags {
	return ClassFlags(withBit(uint8(f), 6, v))
}

func (f ClassFlags) Raw() uint8        { return uint8(f) }
func ClassFlagsFromRaw(b uint8) ClassFlags { return ClassFlags(b) }

// FieldFlags is the sole two-byte flag word, matching flags.rs's 16-bit
// FieldFlags layout exactly: bit 0 and bits 7-15 are named, bits 1-6 are a
// reserved gap that must survive round-tripping untouched.
type FieldFlags uint16

func (f FieldFlags) IsInternalImpl() bool { return getBit(uint16(f), 0) }
func (f FieldFlags) WithIsInternalImpl(v bool) FieldFlags {
	return FieldFlags(withBit(uint16(f), 0, v))
}

// UintExtension is the single bit at position 7, named B1 in flags.rs.
func (f FieldFlags) UintExtension() uint8 { return uint8(getBits(uint16(f), 7, 1)) }
func (f FieldFlags) WithUintExtension(v uint8) FieldFlags {
	return FieldFlags(withBits(uint16(f), 7, 1, uint16(v)))
}

func (f FieldFlags) IsFinal() bool { return getBit(uint16(f), 8) }
func (f FieldFlags) WithIsFinal(v bool) FieldFlags {
	return FieldFlags(withBit(uint16(f), 8, v))
}

func (f FieldFlags) IsConst() bool { return getBit(uint16(f), 9) }
func (f FieldFlags) WithIsConst(v bool) FieldFlags {
	return FieldFlags(withBit(uint16(f), 9, v))
}

func (f FieldFlags) IsStatic() bool { return getBit(uint16(f), 10) }
func (f FieldFlags) WithIsStatic(v bool) FieldFlags {
	return FieldFlags(withBit(uint16(f), 10, v))
}

func (f FieldFlags) IsCovariantByDecl() bool { return getBit(uint16(f), 11) }
func (f FieldFlags) WithIsCovariantByDecl(v bool) FieldFlags {
	return FieldFlags(withBit(uint16(f), 11, v))
}

func (f FieldFlags) IsCovariantByClass() bool { return getBit(uint16(f), 12) }
func (f FieldFlags) WithIsCovariantByClass(v bool) FieldFlags {
	return FieldFlags(withBit(uint16(f), 12, v))
}

func (f FieldFlags) IsLate() bool { return getBit(uint16(f), 13) }
func (f FieldFlags) WithIsLate(v bool) FieldFlags {
	return FieldFlags(withBit(uint16(f), 13, v))
}

func (f FieldFlags) IsExtensionMember() bool { return getBit(uint16(f), 14) }
func (f FieldFlags) WithIsExtensionMember(v bool) FieldFlags {
	return FieldFlags(withBit(uint16(f), 14, v))
}

func (f FieldFlags) IsNonNullableByDefault() bool { return getBit(uint16(f), 15) }
func (f FieldFlags) WithIsNonNullableByDefault(v bool) FieldFlags {
	return FieldFlags(withBit(uint16(f), 15, v))
}

func (f FieldFlags) Raw() uint16        { return uint16(f) }
func FieldFlagsFromRaw(b uint16) FieldFlags { return FieldFlags(b) }

// ConstructorFlags holds per-constructor bits (spec §4.3).
type ConstructorFlags uint8

func (f ConstructorFlags) IsConst() bool { return getBit(uint8(f), 0) }
func (f ConstructorFlags) WithIsConst(v bool) ConstructorFlags {
	return ConstructorFlags(withBit(uint8(f), 0, v))
}

func (f ConstructorFlags) IsExternal() bool { return getBit(uint8(f), 1) }
func (f ConstructorFlags) WithIsExternal(v bool) ConstructorFlags {
	return ConstructorFlags(withBit(uint8(f), 1, v))
}

func (f ConstructorFlags) IsSynthetic() bool { return getBit(uint8(f), 2) }
func (f ConstructorFlags) WithIsSynthetic(v bool) ConstructorFlags {
	return ConstructorFlags(withBit(uint8(f), 2, v))
}

func (f ConstructorFlags) IsNonNullableByDefault() bool { return getBit(uint8(f), 3) }
func (f ConstructorFlags) WithIsNonNullableByDefault(v bool) ConstructorFlags {
	return ConstructorFlags(withBit(uint8(f), 3, v))
}

func (f ConstructorFlags) Raw() uint8              { return uint8(f) }
func ConstructorFlagsFromRaw(b uint8) ConstructorFlags { return ConstructorFlags(b) }

// ProcedureFlags holds per-procedure bits (spec §4.3).
type ProcedureFlags uint8

func (f ProcedureFlags) IsStatic() bool { return getBit(uint8(f), 0) }
func (f ProcedureFlags) WithIsStatic(v bool) ProcedureFlags {
	return ProcedureFlags(withBit(uint8(f), 0, v))
}

func (f ProcedureFlags) IsAbstract() bool { return getBit(uint8(f), 1) }
func (f ProcedureFlags) WithIsAbstract(v bool) ProcedureFlags {
	return ProcedureFlags(withBit(uint8(f), 1, v))
}

func (f ProcedureFlags) IsExternal() bool { return getBit(uint8(f), 2) }
func (f ProcedureFlags) WithIsExternal(v bool) ProcedureFlags {
	return ProcedureFlags(withBit(uint8(f), 2, v))
}

func (f ProcedureFlags) IsConst() bool { return getBit(uint8(f), 3) }
func (f ProcedureFlags) WithIsConst(v bool) ProcedureFlags {
	return ProcedureFlags(withBit(uint8(f), 3, v))
}

func (f ProcedureFlags) IsRedirectingFactory() bool { return getBit(uint8(f), 4) }
func (f ProcedureFlags) WithIsRedirectingFactory(v bool) ProcedureFlags {
	return ProcedureFlags(withBit(uint8(f), 4, v))
}

func (f ProcedureFlags) IsExtensionMember() bool { return getBit(uint8(f), 5) }
func (f ProcedureFlags) WithIsExtensionMember(v bool) ProcedureFlags {
	return ProcedureFlags(withBit(uint8(f), 5, v))
}

func (f ProcedureFlags) IsNonNullableByDefault() bool { return getBit(uint8(f), 6) }
func (f ProcedureFlags) WithIsNonNullableByDefault(v bool) ProcedureFlags {
	return ProcedureFlags(withBit(uint8(f), 6, v))
}

func (f ProcedureFlags) Raw() uint8            { return uint8(f) }
func ProcedureFlagsFromRaw(b uint8) ProcedureFlags { return ProcedureFlags(b) }

// InvocationFlags qualifies a dynamic/instance invocation (spec §4.4).
type InvocationFlags uint8

func (f InvocationFlags) IsInvariant() bool { return getBit(uint8(f), 0) }
func (f InvocationFlags) WithIsInvariant(v bool) InvocationFlags {
	return InvocationFlags(withBit(uint8(f), 0, v))
}

func (f InvocationFlags) IsBoundsSafe() bool { return getBit(uint8(f), 1) }
func (f InvocationFlags) WithIsBoundsSafe(v bool) InvocationFlags {
	return InvocationFlags(withBit(uint8(f), 1, v))
}

func (f InvocationFlags) Raw() uint8             { return uint8(f) }
func InvocationFlagsFromRaw(b uint8) InvocationFlags { return InvocationFlags(b) }

// DynamicCastFlags qualifies an as-expression (spec §4.4).
type DynamicCastFlags uint8

func (f DynamicCastFlags) IsTypeError() bool { return getBit(uint8(f), 0) }
func (f DynamicCastFlags) WithIsTypeError(v bool) DynamicCastFlags {
	return DynamicCastFlags(withBit(uint8(f), 0, v))
}

func (f DynamicCastFlags) IsCovarianceCheck() bool { return getBit(uint8(f), 1) }
func (f DynamicCastFlags) WithIsCovarianceCheck(v bool) DynamicCastFlags {
	return DynamicCastFlags(withBit(uint8(f), 1, v))
}

func (f DynamicCastFlags) IsForDynamic() bool { return getBit(uint8(f), 2) }
func (f DynamicCastFlags) WithIsForDynamic(v bool) DynamicCastFlags {
	return DynamicCastFlags(withBit(uint8(f), 2, v))
}

func (f DynamicCastFlags) IsForNonNullableByDefault() bool { return getBit(uint8(f), 3) }
func (f DynamicCastFlags) WithIsForNonNullableByDefault(v bool) DynamicCastFlags {
	return DynamicCastFlags(withBit(uint8(f), 3, v))
}

func (f DynamicCastFlags) Raw() uint8               { return uint8(f) }
func DynamicCastFlagsFromRaw(b uint8) DynamicCastFlags { return DynamicCastFlags(b) }

// VarDeclFlags holds per-local-variable bits (spec §4.4). All 8 bits are
// named; there is no reserved gap.
type VarDeclFlags uint8

func (f VarDeclFlags) IsFinal() bool { return getBit(uint8(f), 0) }
func (f VarDeclFlags) WithIsFinal(v bool) VarDeclFlags {
	return VarDeclFlags(withBit(uint8(f), 0, v))
}

func (f VarDeclFlags) IsConst() bool { return getBit(uint8(f), 1) }
func (f VarDeclFlags) WithIsConst(v bool) VarDeclFlags {
	return VarDeclFlags(withBit(uint8(f), 1, v))
}

func (f VarDeclFlags) IsInitializingFormal() bool { return getBit(uint8(f), 2) }
func (f VarDeclFlags) WithIsInitializingFormal(v bool) VarDeclFlags {
	return VarDeclFlags(withBit(uint8(f), 2, v))
}

func (f VarDeclFlags) IsCovariantByDecl() bool { return getBit(uint8(f), 3) }
func (f VarDeclFlags) WithIsCovariantByDecl(v bool) VarDeclFlags {
	return VarDeclFlags(withBit(uint8(f), 3, v))
}

func (f VarDeclFlags) IsCovariantByClass() bool { return getBit(uint8(f), 4) }
func (f VarDeclFlags) WithIsCovariantByClass(v bool) VarDeclFlags {
	return VarDeclFlags(withBit(uint8(f), 4, v))
}

func (f VarDeclFlags) IsLate() bool { return getBit(uint8(f), 5) }
func (f VarDeclFlags) WithIsLate(v bool) VarDeclFlags {
	return VarDeclFlags(withBit(uint8(f), 5, v))
}

func (f VarDeclFlags) IsRequired() bool { return getBit(uint8(f), 6) }
func (f VarDeclFlags) WithIsRequired(v bool) VarDeclFlags {
	return VarDeclFlags(withBit(uint8(f), 6, v))
}

func (f VarDeclFlags) IsLowered() bool { return getBit(uint8(f), 7) }
func (f VarDeclFlags) WithIsLowered(v bool) VarDeclFlags {
	return VarDeclFlags(withBit(uint8(f), 7, v))
}

func (f VarDeclFlags) Raw() uint8           { return uint8(f) }
func VarDeclFlagsFromRaw(b uint8) VarDeclFlags { return VarDeclFlags(b) }
