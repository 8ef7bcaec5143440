package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.csv")
	output := filepath.Join(dir, "output.csv")
	require.NoError(t, os.WriteFile(input, []byte("1,2023-01-15,2023-01-15 10:30:00\n"), 0o644))

	code := run([]string{
		"--input_file", input,
		"--output_file", output,
		"--bucket_interval", "month",
		"--column_index", "1",
	})
	require.Equal(t, 0, code)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "1,2023-01-01,2023-01-15 10:30:00\n", string(written))
}

func TestRunConflictingModesExitBeforeAnyIO(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "output.csv")

	code := run([]string{
		"--input_file", filepath.Join(dir, "input.csv"),
		"--output_file", output,
		"--shift_days", "5",
		"--bucket_interval", "week",
	})
	assert.Equal(t, 1, code)

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestRunRequiresInputAndOutputPaths(t *testing.T) {
	assert.Equal(t, 1, run([]string{"--randomize_time"}))
}

func TestRunRejectsUnknownBucketInterval(t *testing.T) {
	dir := t.TempDir()
	code := run([]string{
		"--input_file", filepath.Join(dir, "in.csv"),
		"--output_file", filepath.Join(dir, "out.csv"),
		"--bucket_interval", "year",
	})
	assert.Equal(t, 1, code)
}
