package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and restores the flag variables
// afterwards, since cobra binds them to package globals.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		port, seedFile, seedDB = "", "", ""
		reportOut, reportSearch, reportSort = "-", "", ""
		rootCmd.SetArgs(nil)
	})
	t.Setenv("SEED_FILE", "")
	t.Setenv("SEED_DB", "")
	t.Setenv("LOG_LEVEL", "error")

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestReportCommand_WritesPDF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "roster.pdf")
	require.NoError(t, runCLI(t, "report", "--sort", "department", "-o", out))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestReportCommand_MissingSeedFile(t *testing.T) {
	err := runCLI(t, "report", "--seed-file", filepath.Join(t.TempDir(), "absent.yaml"), "-o", os.DevNull)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load seed records")
}

func TestRunCLI_RestoresFlags(t *testing.T) {
	t.Run("sets", func(t *testing.T) {
		require.NoError(t, runCLI(t, "report", "--sort", "firstName", "--search", "a", "-o", os.DevNull))
		assert.Equal(t, "firstName", reportSort)
	})
	assert.Empty(t, reportSort)
	assert.Empty(t, reportSearch)
	assert.Equal(t, "-", reportOut)
}
