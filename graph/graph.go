// Package graph turns a component.Component's canonical-name tree and
// library dependency list into a lattice.Graph for visualization, the way
// internal/callgraph turns disassembled functions into one.
package graph

import (
	"strings"

	"github.com/zboralski/lattice"
	"github.com/zboralski/lattice/render"

	"github.com/nullshade/dartkernel/component"
	"github.com/nullshade/dartkernel/ref"
)

// Path reconstructs the dotted name a CanonicalNameRef denotes by walking
// its parent chain back to a root.
func Path(names []component.CanonicalName, r ref.CanonicalNameRef, strings_ []string) string {
	var segs []string
	for !r.IsUndefined() {
		entry := names[r.Index()]
		segs = append([]string{strings_[uint32(entry.Name)]}, segs...)
		r = entry.Parent
	}
	return strings.Join(segs, ".")
}

// BuildNameGraph builds a lattice.Graph whose nodes are the dotted paths of
// every canonical name and whose edges connect each name to its parent.
// Roots (Parent == ref.Undefined) have no outgoing edge.
func BuildNameGraph(comp *component.Component) *lattice.Graph {
	g := &lattice.Graph{}
	paths := make([]string, len(comp.CanonicalNames))
	for i := range comp.CanonicalNames {
		paths[i] = Path(comp.CanonicalNames, ref.CanonicalNameRefFromIndex(uint32(i)), comp.Strings)
	}
	for i, entry := range comp.CanonicalNames {
		g.Nodes = append(g.Nodes, paths[i])
		if entry.Parent.IsUndefined() {
			continue
		}
		g.Edges = append(g.Edges, lattice.Edge{
			Caller: paths[entry.Parent.Index()],
			Callee: paths[i],
		})
	}
	g.Dedup()
	return g
}

// BuildLibraryGraph builds a lattice.Graph of library import/export edges:
// one node per library (keyed by its URI), one edge per dependency.
func BuildLibraryGraph(comp *component.Component) *lattice.Graph {
	g := &lattice.Graph{}
	uriOf := func(lib component.Library) string {
		return comp.Strings[uint32(lib.Name)]
	}
	for _, lib := range comp.Libraries {
		g.Nodes = append(g.Nodes, uriOf(lib))
		for _, dep := range lib.Dependencies {
			target := Path(comp.CanonicalNames, dep.TargetLibrary, comp.Strings)
			if target == "" {
				continue
			}
			g.Edges = append(g.Edges, lattice.Edge{
				Caller: uriOf(lib),
				Callee: target,
			})
		}
	}
	g.Dedup()
	return g
}

// NameGraphDOT renders the canonical-name tree as DOT source.
func NameGraphDOT(comp *component.Component, title string) string {
	return render.DOT(BuildNameGraph(comp), title)
}

// LibraryGraphDOT renders the library dependency graph as DOT source.
func LibraryGraphDOT(comp *component.Component, title string) string {
	return render.DOT(BuildLibraryGraph(comp), title)
}
