// Package builder assembles a component.Component incrementally: add
// libraries, then share the string and canonical-name tables between them
// by adding through the builder rather than indexing the tables directly.
// Grounded on original_source/src/builder.rs's ComponentBuilder/IndexMap.
package builder

import (
	"github.com/cespare/xxhash/v2"

	"github.com/nullshade/dartkernel/ast"
	"github.com/nullshade/dartkernel/component"
	"github.com/nullshade/dartkernel/ref"
)

// Builder accumulates the shared tables (strings, canonical names,
// constants, sources) a Component needs, deduplicating strings and
// canonical names as they're added so two identical names collapse to one
// table entry instead of two.
type Builder struct {
	libraries      []component.Library
	sources        []component.SourceInfo
	constants      []ast.Constant
	canonicalNames []component.CanonicalName
	canonicalIndex map[canonicalKey]uint32
	strings        []string
	stringIndex    map[uint64][]uint32
}

type canonicalKey struct {
	parent ref.CanonicalNameRef
	name   ref.StringRef
}

// New returns a Builder with its string table seeded with the empty string
// at index 0, matching every reference into an otherwise-unpopulated table
// resolving to "" rather than an out-of-range index.
func New() *Builder {
	b := &Builder{
		canonicalIndex: make(map[canonicalKey]uint32),
		stringIndex:    make(map[uint64][]uint32),
	}
	b.AddString("")
	return b
}

// AddString interns name, returning the existing reference if an identical
// string was already added.
func (b *Builder) AddString(name string) ref.StringRef {
	h := xxhash.Sum64String(name)
	for _, idx := range b.stringIndex[h] {
		if b.strings[idx] == name {
			return ref.StringRef(idx)
		}
	}
	idx := uint32(len(b.strings))
	b.strings = append(b.strings, name)
	b.stringIndex[h] = append(b.stringIndex[h], idx)
	return ref.StringRef(idx)
}

// AddName interns a single canonical-name segment under parent, returning
// its reference. Use Path to intern a whole dotted path at once.
func (b *Builder) AddName(name ref.StringRef, parent ref.CanonicalNameRef) ref.CanonicalNameRef {
	key := canonicalKey{parent: parent, name: name}
	if idx, ok := b.canonicalIndex[key]; ok {
		return ref.CanonicalNameRefFromIndex(idx)
	}
	idx := uint32(len(b.canonicalNames))
	b.canonicalNames = append(b.canonicalNames, component.CanonicalName{Parent: parent, Name: name})
	b.canonicalIndex[key] = idx
	return ref.CanonicalNameRefFromIndex(idx)
}

// Path interns a dotted sequence of name segments (e.g. a library URI split
// on '.', or a class name under its enclosing library) and returns the
// reference to the final segment.
func (b *Builder) Path(parts ...string) ref.CanonicalNameRef {
	parent := ref.Undefined
	for _, part := range parts {
		name := b.AddString(part)
		parent = b.AddName(name, parent)
	}
	return parent
}

// AddSource appends a source-map entry and returns its reference.
func (b *Builder) AddSource(s component.SourceInfo) ref.UriRef {
	idx := ref.UriRef(len(b.sources))
	b.sources = append(b.sources, s)
	return idx
}

// AddConstant appends a constant-pool entry and returns its reference.
// Unlike strings and canonical names, constants are never deduplicated —
// two structurally-equal constants still get distinct table entries.
func (b *Builder) AddConstant(c ast.Constant) ref.ConstantRef {
	idx := ref.ConstantRef(len(b.constants))
	b.constants = append(b.constants, c)
	return idx
}

// AddLibrary appends a fully-built library to the component.
func (b *Builder) AddLibrary(lib component.Library) {
	b.libraries = append(b.libraries, lib)
}

// CanonicalName resolves a previously-added reference back to its entry.
func (b *Builder) CanonicalName(r ref.CanonicalNameRef) component.CanonicalName {
	return b.canonicalNames[r.Index()]
}

// String resolves a previously-added reference back to its text.
func (b *Builder) String(r ref.StringRef) string {
	return b.strings[uint32(r)]
}

// Build finalizes the accumulated tables into a Component, consuming the
// Builder.
func (b *Builder) Build(mainMethod ref.CanonicalNameRef, mode component.NonNullableMode) *component.Component {
	return &component.Component{
		Libraries:       b.libraries,
		SourceMap:       b.sources,
		Constants:       b.constants,
		CanonicalNames:  b.canonicalNames,
		Strings:         b.strings,
		MainMethod:      mainMethod,
		NonNullableMode: mode,
	}
}
