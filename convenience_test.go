package incfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests exercise the package-level functions against the default
// registry; names are prefixed to avoid clashing with other declarations.
func TestDefaultRegistryFunctions(t *testing.T) {
	t.Cleanup(func() { Default().Reset() })

	port := Require("conv_port", 80, "listen port")
	debug := Require("conv_debug", false, "")

	require.NoError(t, LoadString("conv_port=8080\n"))
	assert.Equal(t, 8080, port.Get())

	require.NoError(t, LoadArgs([]string{"exe", "--conv_debug"}))
	assert.True(t, debug.Get())

	assert.GreaterOrEqual(t, Len(), 2)
	assert.Contains(t, Names(), "conv_port")

	opt, ok := Lookup("conv_port")
	require.True(t, ok)
	assert.False(t, opt.IsDefault())

	assert.Contains(t, ConfigString(), "conv_port=8080")
}
