package incfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireIn(t *testing.T) {
	t.Run("DeclaresWithDefault", func(t *testing.T) {
		r := New()
		v := RequireIn(r, "buffer_size", 4096, "write buffer size")

		assert.Equal(t, "buffer_size", v.Name())
		assert.Equal(t, 4096, v.Get())
		assert.True(t, v.IsDefault())
		assert.Equal(t, 1, r.Len())

		opt, ok := r.Lookup("buffer_size")
		require.True(t, ok)
		assert.Equal(t, "write buffer size", opt.Description())
	})

	t.Run("DuplicateDeclarationReusesFirst", func(t *testing.T) {
		r := New()
		v1 := RequireIn(r, "dup", 1, "first")
		v1.Set(9)

		v2 := RequireIn(r, "dup", 100, "second")
		assert.Equal(t, 9, v2.Get())
		assert.Equal(t, 1, r.Len())

		opt, _ := r.Lookup("dup")
		assert.Equal(t, "first", opt.Description())
	})

	t.Run("TypeConflictPanics", func(t *testing.T) {
		r := New()
		RequireIn(r, "conflicted", 1, "")
		assert.Panics(t, func() {
			RequireIn(r, "conflicted", "text", "")
		})
	})

	t.Run("InvalidNamePanics", func(t *testing.T) {
		r := New()
		assert.Panics(t, func() { RequireIn(r, "", 1, "") })
		assert.Panics(t, func() { RequireIn(r, "has space", 1, "") })
		assert.Panics(t, func() { RequireIn(r, "has=eq", 1, "") })
	})
}

func TestDefaultFlagLifecycle(t *testing.T) {
	r := New()
	v := RequireIn(r, "opt", 1, "")

	// Assigning the current value keeps the default flag.
	v.Set(1)
	assert.True(t, v.IsDefault())

	v.Set(5)
	assert.False(t, v.IsDefault())

	// Restoring the original default does not restore the flag.
	v.Set(1)
	assert.False(t, v.IsDefault())
}

func TestOptionParse(t *testing.T) {
	r := New()
	v := RequireIn(r, "opt", 10, "")
	opt, ok := r.Lookup("opt")
	require.True(t, ok)

	require.NoError(t, opt.Parse("20"))
	assert.Equal(t, 20, v.Get())
	assert.False(t, opt.IsDefault())

	err := opt.Parse("not-a-number")
	assert.ErrorIs(t, err, ErrParse)
	// Value is untouched on a failed parse.
	assert.Equal(t, 20, v.Get())
}

func TestIsBool(t *testing.T) {
	r := New()
	b := RequireIn(r, "flag", false, "")
	i := RequireIn(r, "num", 0, "")

	assert.True(t, b.Option().IsBool())
	assert.False(t, i.Option().IsBool())
}

func TestVarStringEncoding(t *testing.T) {
	r := New()
	s := RequireIn(r, "name", "log.txt", "")
	assert.Equal(t, `"log.txt"`, s.Option().String())
	assert.Equal(t, "log.txt", s.Option().Value())
}

func TestRequireDefaultRegistry(t *testing.T) {
	v := Require("register_test_global", 7, "lives in the default registry")
	t.Cleanup(func() { Default().Reset() })

	opt, ok := Lookup("register_test_global")
	require.True(t, ok)
	assert.Equal(t, 7, opt.Value())

	// A second declaration binds to the same instance.
	v2 := Require("register_test_global", 0, "")
	v.Set(11)
	assert.Equal(t, 11, v2.Get())
}
