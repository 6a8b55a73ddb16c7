package configtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureMap_CreatesNestedMappings verifies that missing segments are
// created as empty mappings and the final mapping is returned.
func TestEnsureMap_CreatesNestedMappings(t *testing.T) {
	root := Tree{}

	providers := EnsureMap(root, "models", "providers")
	providers["ollama"] = Tree{}

	value, ok := Lookup(root, "models", "providers", "ollama")
	require.True(t, ok)
	assert.Equal(t, Tree{}, value)
}

// TestEnsureMap_ReturnsExistingMapping verifies that an existing mapping is
// returned as-is, with its contents intact.
func TestEnsureMap_ReturnsExistingMapping(t *testing.T) {
	root := Tree{"gateway": Tree{"mode": "local"}}

	gateway := EnsureMap(root, "gateway")

	assert.Equal(t, "local", gateway["mode"])
}

// TestEnsureMap_ReplacesNonMapping verifies that a scalar in the path is
// replaced by an empty mapping.
func TestEnsureMap_ReplacesNonMapping(t *testing.T) {
	root := Tree{"models": "oops"}

	providers := EnsureMap(root, "models", "providers")

	require.NotNil(t, providers)
	assert.IsType(t, Tree{}, root["models"])
}

// TestEnsureMap_NoPathReturnsRoot verifies the degenerate zero-segment call.
func TestEnsureMap_NoPathReturnsRoot(t *testing.T) {
	root := Tree{"key": "value"}
	assert.Equal(t, root, EnsureMap(root))
}

// TestLookup_ResolvesNestedValue verifies path resolution through nested
// mappings.
func TestLookup_ResolvesNestedValue(t *testing.T) {
	root := Tree{"agents": Tree{"defaults": Tree{"model": Tree{"primary": "ollama/m"}}}}

	value, ok := Lookup(root, "agents", "defaults", "model", "primary")
	require.True(t, ok)
	assert.Equal(t, "ollama/m", value)
}

// TestLookup_MissingSegment verifies that an unresolved segment reports
// not-found rather than panicking.
func TestLookup_MissingSegment(t *testing.T) {
	root := Tree{"agents": Tree{}}

	_, ok := Lookup(root, "agents", "defaults", "model")
	assert.False(t, ok)
}

// TestLookup_ScalarInTheMiddle verifies that a scalar at an intermediate
// segment stops resolution.
func TestLookup_ScalarInTheMiddle(t *testing.T) {
	root := Tree{"agents": "scalar"}

	_, ok := Lookup(root, "agents", "defaults")
	assert.False(t, ok)
}

// TestLookup_NilValueIsFound verifies that an explicit nil value resolves
// with ok=true, distinguishing presence from absence.
func TestLookup_NilValueIsFound(t *testing.T) {
	root := Tree{"token": nil}

	value, ok := Lookup(root, "token")
	assert.True(t, ok)
	assert.Nil(t, value)
}

// TestLookupString_TypeMismatch verifies "" is returned for non-strings.
func TestLookupString_TypeMismatch(t *testing.T) {
	root := Tree{"port": float64(8080)}

	assert.Equal(t, "", LookupString(root, "port"))
	assert.Equal(t, "", LookupString(root, "missing"))
}
