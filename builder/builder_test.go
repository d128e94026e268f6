package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullshade/dartkernel/component"
	"github.com/nullshade/dartkernel/ref"
)

func TestNew_SeedsEmptyString(t *testing.T) {
	b := New()
	require.Equal(t, ref.StringRef(0), b.AddString(""))
}

func TestAddString_Dedups(t *testing.T) {
	b := New()
	a := b.AddString("hello")
	c := b.AddString("hello")
	require.Equal(t, a, c)

	other := b.AddString("world")
	require.NotEqual(t, a, other)
}

func TestPath_SharesCommonPrefix(t *testing.T) {
	b := New()
	main1 := b.Path("my_lib", "@methods", "main")
	main2 := b.Path("my_lib", "@methods", "main")
	require.Equal(t, main1, main2)

	other := b.Path("my_lib", "@methods", "helper")
	require.NotEqual(t, main1, other)

	name := b.CanonicalName(main1)
	require.Equal(t, "main", b.String(name.Name))
}

func TestAddConstant_NeverDedups(t *testing.T) {
	b := New()
	c1 := b.AddConstant(nil)
	c2 := b.AddConstant(nil)
	require.NotEqual(t, c1, c2)
}

func TestBuild_PopulatesComponent(t *testing.T) {
	b := New()
	libName := b.Path("my_lib")
	b.AddLibrary(component.Library{CanonicalName: libName, VersionMajor: 2, VersionMinor: 15})

	comp := b.Build(ref.Undefined, component.NonNullableModeStrong)
	require.Len(t, comp.Libraries, 1)
	require.Equal(t, component.NonNullableModeStrong, comp.NonNullableMode)
}
