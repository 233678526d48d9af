package platform

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Stderr(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := NewLogger(LogOptions{Stderr: &buf})
	logger.Debug("hidden")
	logger.Info("shown", "key", "value")
	require.NoError(t, closer.Close())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown key=value")
}

func TestNewLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := NewLogger(LogOptions{Stderr: &buf, Verbose: true})
	logger.Debug("details")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestNewLogger_File(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "capstone.log")

	logger, closer := NewLogger(LogOptions{Stderr: &console, File: path})
	logger.Info("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"written to file"`)
	assert.Empty(t, console.String())
}
