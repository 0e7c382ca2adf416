package incfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	type appConfig struct {
		BufferSize int           `incfg:"BUFFER_SIZE"`
		LogFile    string        `incfg:"LOGFILENAME"`
		Debug      bool          `incfg:"DEBUG_LOG"`
		Timeout    time.Duration `incfg:"TIMEOUT"`
		Tags       []string      `incfg:"TAGS"`
	}

	t.Run("DecodesCurrentValues", func(t *testing.T) {
		r := New()
		RequireIn(r, "BUFFER_SIZE", 4096, "")
		logFile := RequireIn(r, "LOGFILENAME", "log.txt", "")
		debug := RequireIn(r, "DEBUG_LOG", false, "")
		RequireIn(r, "TIMEOUT", "5s", "")
		RequireIn(r, "TAGS", "a,b,c", "")

		logFile.Set("out.txt")
		debug.Set(true)

		var cfg appConfig
		require.NoError(t, r.Unmarshal(&cfg))

		assert.Equal(t, 4096, cfg.BufferSize)
		assert.Equal(t, "out.txt", cfg.LogFile)
		assert.True(t, cfg.Debug)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
	})

	t.Run("IgnoresUndeclaredFields", func(t *testing.T) {
		r := New()
		RequireIn(r, "BUFFER_SIZE", 1024, "")

		var cfg appConfig
		require.NoError(t, r.Unmarshal(&cfg))
		assert.Equal(t, 1024, cfg.BufferSize)
		assert.Empty(t, cfg.LogFile)
	})

	t.Run("RejectsNonPointerTarget", func(t *testing.T) {
		r := New()
		var cfg appConfig
		assert.Error(t, r.Unmarshal(cfg))
		assert.Error(t, r.Unmarshal(nil))
	})
}
