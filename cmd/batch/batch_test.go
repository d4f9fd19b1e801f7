package batch_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/creditlens/cmd/batch"
	"fjacquet/creditlens/internal/config"
	"fjacquet/creditlens/internal/container"
	"fjacquet/creditlens/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContainer(t *testing.T) *container.Container {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "error"
	cfg.Log.Format = "text"
	cfg.API.BaseURL = "http://localhost:3000"
	cfg.API.TimeoutSeconds = 5
	cfg.API.RequestsPerMinute = 60
	cfg.Session.TokenFile = filepath.Join(t.TempDir(), "session.yaml")
	cfg.Output.Format = "text"
	cfg.CSV.Delimiter = ";"
	cfg.Batch.Workers = 3

	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	return c
}

func TestBatchCommand_Metadata(t *testing.T) {
	assert.Equal(t, "batch", batch.Cmd.Use)
	assert.Contains(t, batch.Cmd.Long, "Example")
	assert.NotNil(t, batch.Cmd.RunE)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.md"), []byte("**Positive Factors:** - Stable income\nExperian: 720"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.txt"), []byte("nothing here"), 0600))
	outPath := filepath.Join(t.TempDir(), "summary.csv")

	c := newContainer(t)
	var stdout bytes.Buffer
	require.NoError(t, batch.Run(context.Background(), c, dir, outPath, &stdout))
	assert.Empty(t, stdout.String())
	assert.True(t, c.GetLogger().(*logging.MockLogger).HasEntry("INFO", "Wrote CSV file"))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "one.md;fallback;;;720;0;1;0;0.00", lines[1])
	assert.Equal(t, "two.txt;unrecognized;;;;0;0;0;0.00", lines[2])
}

func TestRun_Stdout(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.md"), []byte("TransUnion: 690"), 0600))

	var stdout bytes.Buffer
	require.NoError(t, batch.Run(context.Background(), newContainer(t), dir, "", &stdout))
	assert.Equal(t, "file;format;transunion;equifax;experian;negative_items;positive_factors;negative_factors;total_balance\n"+
		"one.md;unrecognized;690;;;0;0;0;0.00\n", stdout.String())
}

func TestRun_Errors(t *testing.T) {
	c := newContainer(t)

	err := batch.Run(context.Background(), c, "", "", &bytes.Buffer{})
	assert.ErrorContains(t, err, "input directory is required")

	err = batch.Run(context.Background(), c, filepath.Join(t.TempDir(), "missing"), "", &bytes.Buffer{})
	assert.ErrorContains(t, err, "directory does not exist")
}
