package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
)

func TestSettingsStore(t *testing.T) {
	t.Run("missing file loads defaults", func(t *testing.T) {
		store, err := NewSettingsStore(t.TempDir())
		require.NoError(t, err)

		settings, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSettings(), settings)
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		store, err := NewSettingsStore(t.TempDir())
		require.NoError(t, err)

		want := domain.Settings{
			TrendingBaseURL:        "http://localhost:9000",
			RawContentBaseURL:      "http://localhost:9001",
			UserAgent:              "gitscout-test",
			TrendingTimeoutSeconds: 3,
			ReadmeTimeoutSeconds:   2,
			MaxReadmeLength:        1000,
		}
		require.NoError(t, store.Save(want))

		got, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("partial file fills unset fields from defaults", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewSettingsStore(dir)
		require.NoError(t, err)

		content := "trending_base_url = \"http://localhost:9000\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

		got, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000", got.TrendingBaseURL)
		assert.Equal(t, domain.DefaultRawContentBaseURL, got.RawContentBaseURL)
		assert.Equal(t, domain.DefaultTrendingTimeoutSeconds, got.TrendingTimeoutSeconds)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewSettingsStore(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("{not toml"), 0600))

		_, err = store.Load()
		assert.Error(t, err)
	})
}
