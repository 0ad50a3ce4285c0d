package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ssargent/maparr/pkg/config"
	"github.com/ssargent/maparr/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommand(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testConfig(t, tmpDir)
	withContainer(t)

	dir := filepath.Join(tmpDir, "days")
	declPath := filepath.Join(dir, "maparr.yaml")
	configPath := filepath.Join(dir, ".maparr.yaml")

	t.Run("Successful initialization", func(t *testing.T) {
		out, err := executeCommand(t, "init", "--config", cfgPath, "--dir", dir, "--package", "days")
		require.NoError(t, err)
		assert.Contains(t, out, "Declaration file written to "+declPath)
		assert.Contains(t, out, "Config written to "+configPath)

		f, err := schema.Load(declPath)
		require.NoError(t, err)
		assert.Equal(t, "days", f.Package)
		require.NoError(t, schema.Validate(f))

		cfg, err := config.LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfig(), cfg)
	})

	t.Run("Example declaration generates", func(t *testing.T) {
		_, err := executeCommand(t, "gen", "--config", cfgPath, "-f", declPath)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "maparr_maparr.go"))
	})

	t.Run("Existing files are kept", func(t *testing.T) {
		require.NoError(t, os.WriteFile(declPath, []byte("# mine\n"), 0644))

		out, err := executeCommand(t, "init", "--config", cfgPath, "--dir", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "Declaration file already exists")
		assert.Contains(t, out, "Config already exists")

		data, err := os.ReadFile(declPath)
		require.NoError(t, err)
		assert.Equal(t, "# mine\n", string(data))
	})

	t.Run("Force reinitialization", func(t *testing.T) {
		_, err := executeCommand(t, "init", "--config", cfgPath, "--dir", dir, "--force", "--no-config")
		require.NoError(t, err)

		f, err := schema.Load(declPath)
		require.NoError(t, err)
		assert.Empty(t, f.Package)
		assert.Equal(t, "Weekdays", f.Maps[0].Name)
	})
}
