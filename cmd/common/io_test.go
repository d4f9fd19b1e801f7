package common

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/creditlens/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.md")
	require.NoError(t, os.WriteFile(path, []byte("Equifax: 700"), 0600))

	got, err := ReadInput(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "Equifax: 700", got)

	got, err = ReadInput(Stdin, strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	_, err = ReadInput("", nil)
	assert.ErrorContains(t, err, "input file is required")

	_, err = ReadInput(path+".missing", nil)
	assert.ErrorContains(t, err, "file does not exist")
}

func TestWriteOutput(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, WriteOutput("", []byte("hello"), &stdout, logging.NewMockLogger()))
	assert.Equal(t, "hello", stdout.String())

	path := filepath.Join(t.TempDir(), "out", "report.json")
	logger := logging.NewMockLogger()
	require.NoError(t, WriteOutput(path, []byte("{}"), &stdout, logger))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
	assert.True(t, logger.HasEntry("INFO", "Wrote output"))
}

func TestPasswordFromEnv(t *testing.T) {
	t.Setenv("CREDITLENS_PASSWORD", "from-env")
	assert.Equal(t, "flag", PasswordFromEnv("flag"))
	assert.Equal(t, "from-env", PasswordFromEnv(""))
}
