package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
}

func TestFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "7000")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.AppPort)

	require.NoError(t, serveCmd.Flags().Set("port", "7100"))
	t.Cleanup(func() {
		f := serveCmd.Flags().Lookup("port")
		_ = f.Value.Set("")
		f.Changed = false
	})

	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "7100", cfg.AppPort)
}

func TestMigrateCommand(t *testing.T) {
	t.Setenv("DATABASE_DSN", "file::memory:")
	rootCmd.SetArgs([]string{"migrate", "--env-file", t.TempDir() + "/missing.env"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	assert.NoError(t, rootCmd.Execute())
}
