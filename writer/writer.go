// Package writer implements the two-pass encoder that turns an in-memory
// component.Component back into the container format: every entity is
// written once, in file order, while the offsets needed for random access
// (per-library class/procedure tables, the top-level library table, the
// tail Index) are recorded as they go and only ever written out after the
// entities they point at. Grounded on original_source/src/writer.rs.
package writer

import (
	"io"

	"github.com/nullshade/dartkernel/ast"
	"github.com/nullshade/dartkernel/component"
	"github.com/nullshade/dartkernel/flags"
	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

// WriteComponent encodes header and comp to out in the container's on-disk
// layout, finishing with the tail Index and Metadata a reader seeks to
// first.
func WriteComponent(header component.Header, comp *component.Component, out io.WriteSeeker) error {
	w := wire.NewWriter(out)

	if err := component.WriteHeader(w, header); err != nil {
		return err
	}
	if err := wire.WriteList(w, comp.Problems, (*wire.Writer).WriteUTF8); err != nil {
		return err
	}

	libraryOffsets, err := writeKeepingOffsets(w, comp.Libraries, writeLibrary)
	if err != nil {
		return err
	}
	end, err := w.Pos()
	if err != nil {
		return err
	}
	libraryOffsets = append(libraryOffsets, end)

	sourceTableOffset, err := w.Pos()
	if err != nil {
		return err
	}
	if err := w.WriteU32(uint32(len(comp.SourceMap))); err != nil {
		return err
	}
	sourceOffsets, err := writeKeepingOffsets(w, comp.SourceMap, component.WriteSourceInfo)
	if err != nil {
		return err
	}
	if err := wire.WriteU32Array(w, sourceOffsets); err != nil {
		return err
	}

	constantTableOffset, err := w.Pos()
	if err != nil {
		return err
	}
	if err := w.EncodeVarUint(uint32(len(comp.Constants))); err != nil {
		return err
	}
	constantTableIndexOffset, err := w.Pos()
	if err != nil {
		return err
	}
	constantOffsets, err := writeKeepingOffsets(w, comp.Constants, ast.WriteConstant)
	if err != nil {
		return err
	}
	if err := w.WriteU32(uint32(len(constantOffsets))); err != nil {
		return err
	}

	canonicalNamesOffset, err := w.Pos()
	if err != nil {
		return err
	}
	if err := wire.WriteList(w, comp.CanonicalNames, component.WriteCanonicalName); err != nil {
		return err
	}

	metadataPayloadsOffset, err := w.Pos()
	if err != nil {
		return err
	}
	payloadOffsets, err := writeKeepingOffsets(w, comp.Payloads, func(w *wire.Writer, p []byte) error {
		return w.WriteBytes(p)
	})
	if err != nil {
		return err
	}
	metadataMappingsOffset, err := w.Pos()
	if err != nil {
		return err
	}
	if err := wire.WriteU32Array(w, payloadOffsets); err != nil {
		return err
	}
	if err := w.WriteU32(uint32(len(payloadOffsets))); err != nil {
		return err
	}

	stringTableOffset, err := w.Pos()
	if err != nil {
		return err
	}
	if err := component.WriteStringTable(w, component.NewStringTable(comp.Strings)); err != nil {
		return err
	}

	componentIndexOffset, err := w.Pos()
	if err != nil {
		return err
	}
	idx := component.Index{
		SourceTableOffset:        sourceTableOffset,
		ConstantTableOffset:      constantTableOffset,
		ConstantTableIndexOffset: constantTableIndexOffset,
		CanonicalNamesOffset:     canonicalNamesOffset,
		MetadataPayloadsOffset:   metadataPayloadsOffset,
		MetadataMappingsOffset:   metadataMappingsOffset,
		StringTableOffset:        stringTableOffset,
		ComponentIndexOffset:     componentIndexOffset,
		MainMethodReference:      uint32(comp.MainMethod),
		CompilationMode:          comp.NonNullableMode,
		LibraryOffsets:           libraryOffsets,
	}
	if err := component.WriteIndex(w, idx); err != nil {
		return err
	}

	pos, err := w.Pos()
	if err != nil {
		return err
	}
	meta := component.Metadata{
		LibraryCount: uint32(len(comp.Libraries)),
		FileSize:     pos + component.MetadataSize,
	}
	return component.WriteMetadata(w, meta)
}

func writeLibrary(w *wire.Writer, lib component.Library) error {
	if err := writeLibraryHeader(w, lib); err != nil {
		return err
	}

	if err := w.EncodeVarUint(uint32(len(lib.Classes))); err != nil {
		return err
	}
	classOffsets, err := writeKeepingOffsets(w, lib.Classes, writeClass)
	if err != nil {
		return err
	}
	end, err := w.Pos()
	if err != nil {
		return err
	}
	classOffsets = append(classOffsets, end)

	if err := wire.WriteList(w, lib.Extensions, component.WriteExtension); err != nil {
		return err
	}
	if err := wire.WriteList(w, lib.Fields, component.WriteField); err != nil {
		return err
	}

	if err := w.EncodeVarUint(uint32(len(lib.Procedures))); err != nil {
		return err
	}
	procOffsets, err := writeKeepingOffsets(w, lib.Procedures, component.WriteProcedure)
	if err != nil {
		return err
	}
	end, err = w.Pos()
	if err != nil {
		return err
	}
	procOffsets = append(procOffsets, end)

	sourceRefsOffset, err := w.Pos()
	if err != nil {
		return err
	}
	if err := wire.WriteList(w, lib.SourceRefs, writeVarU32); err != nil {
		return err
	}

	if err := w.WriteU32(sourceRefsOffset); err != nil {
		return err
	}
	if err := writeOffsets(w, classOffsets); err != nil {
		return err
	}
	return writeOffsets(w, procOffsets)
}

func writeLibraryHeader(w *wire.Writer, lib component.Library) error {
	if err := flags.WriteLibraryFlags(w, lib.Flags); err != nil {
		return err
	}
	if err := w.EncodeVarUint(lib.VersionMajor); err != nil {
		return err
	}
	if err := w.EncodeVarUint(lib.VersionMinor); err != nil {
		return err
	}
	if err := ref.WriteCanonicalNameRef(w, lib.CanonicalName); err != nil {
		return err
	}
	if err := ref.WriteStringRef(w, lib.Name); err != nil {
		return err
	}
	if err := ref.WriteUriRef(w, lib.FileURI); err != nil {
		return err
	}
	if err := wire.WriteList(w, lib.Problems, (*wire.Writer).WriteUTF8); err != nil {
		return err
	}
	if err := wire.WriteList(w, lib.Annotations, ast.WriteExpr); err != nil {
		return err
	}
	if err := wire.WriteList(w, lib.Dependencies, component.WriteLibraryDependency); err != nil {
		return err
	}
	if err := wire.WriteList(w, lib.AdditionalExports, ref.WriteCanonicalNameRef); err != nil {
		return err
	}
	if err := wire.WriteList(w, lib.LibraryParts, component.WriteLibraryPart); err != nil {
		return err
	}
	return wire.WriteList(w, lib.Typedefs, component.WriteTypedef)
}

func writeClass(w *wire.Writer, c component.Class) error {
	if err := w.WriteMagic(component.ClassTag); err != nil {
		return err
	}
	if err := ref.WriteCanonicalNameRef(w, c.CanonicalName); err != nil {
		return err
	}
	if err := ref.WriteUriRef(w, c.FileURI); err != nil {
		return err
	}
	if err := ast.WriteFileOffset(w, c.StartOffset); err != nil {
		return err
	}
	if err := ast.WriteFileRange(w, c.DefinitionRange); err != nil {
		return err
	}
	if err := flags.WriteClassFlags(w, c.Flags); err != nil {
		return err
	}
	if err := ref.WriteStringRef(w, c.Name); err != nil {
		return err
	}
	if err := wire.WriteList(w, c.Annotations, ast.WriteExpr); err != nil {
		return err
	}
	if err := wire.WriteList(w, c.TypeParams, ast.WriteTypeParameter); err != nil {
		return err
	}
	if err := wire.WriteOption(w, c.SuperClass, ast.WriteType); err != nil {
		return err
	}
	if err := wire.WriteOption(w, c.MixedInType, ast.WriteType); err != nil {
		return err
	}
	if err := wire.WriteList(w, c.ImplementedClasses, ast.WriteType); err != nil {
		return err
	}
	if err := wire.WriteList(w, c.Fields, component.WriteField); err != nil {
		return err
	}
	if err := wire.WriteList(w, c.Constructors, component.WriteConstructor); err != nil {
		return err
	}

	if err := w.EncodeVarUint(uint32(len(c.Procedures))); err != nil {
		return err
	}
	procOffsets, err := writeKeepingOffsets(w, c.Procedures, component.WriteProcedure)
	if err != nil {
		return err
	}
	end, err := w.Pos()
	if err != nil {
		return err
	}
	procOffsets = append(procOffsets, end)

	if err := wire.WriteList(w, c.RedirectingFactories, component.WriteRedirectingFactory); err != nil {
		return err
	}
	return writeOffsets(w, procOffsets)
}

// writeKeepingOffsets writes each item in order, recording the absolute
// stream position it started at — the offset table a reader uses to jump
// straight to the n-th element instead of decoding every one before it.
func writeKeepingOffsets[A any](w *wire.Writer, items []A, encode func(*wire.Writer, A) error) ([]uint32, error) {
	offsets := make([]uint32, 0, len(items))
	for _, item := range items {
		pos, err := w.Pos()
		if err != nil {
			return nil, err
		}
		offsets = append(offsets, pos)
		if err := encode(w, item); err != nil {
			return nil, err
		}
	}
	return offsets, nil
}

// writeOffsets writes a raw (already includes its own trailing sentinel)
// offset array followed by a u32 replay of the entry count minus one — the
// original element count before the sentinel was appended.
func writeOffsets(w *wire.Writer, offsets []uint32) error {
	if err := wire.WriteU32Array(w, offsets); err != nil {
		return err
	}
	return w.WriteU32(uint32(len(offsets)) - 1)
}

func writeVarU32(w *wire.Writer, v uint32) error { return w.EncodeVarUint(v) }
