package root_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/creditlens/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	root.Init()
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "creditlens", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "credit analyses")
	assert.Contains(t, root.Cmd.Long, "structured findings")
	assert.NotNil(t, root.Cmd.RunE)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
}

func TestRootCommand_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
	}{
		{"input", "i"},
		{"output", "o"},
		{"config", ""},
		{"log-level", ""},
		{"log-format", ""},
	}
	for _, tt := range tests {
		flag := root.Cmd.PersistentFlags().Lookup(tt.name)
		require.NotNil(t, flag, tt.name)
		assert.Equal(t, tt.shorthand, flag.Shorthand)
	}
}

func TestRootCommand_InitializesContainer(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("api:\n  base_url: https://api.example.com\nsession:\n  token_file: "+filepath.Join(dir, "s.yaml")+"\n"), 0600))

	root.SharedFlags.ConfigFile = cfgPath
	root.SharedFlags.LogLevel = "error"
	t.Cleanup(func() {
		root.SharedFlags.ConfigFile = ""
		root.SharedFlags.LogLevel = ""
	})

	cmd := &cobra.Command{}
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	require.NoError(t, root.Cmd.PersistentPreRunE(cmd, nil))

	c, err := root.GetContainer()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", c.GetAPIClient().BaseURL())
	assert.Equal(t, "error", c.GetConfig().Log.Level)

	c.GetLogger().Error("logged to stderr")
	assert.Contains(t, stderr.String(), "logged to stderr")
}

func TestRootCommand_BadConfig(t *testing.T) {
	root.SharedFlags.ConfigFile = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() { root.SharedFlags.ConfigFile = "" })

	err := root.Cmd.PersistentPreRunE(&cobra.Command{}, nil)
	assert.ErrorContains(t, err, "failed to read config file")
}
