package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/stocksim/internal/dynamo"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	preset, configFile = "", ""
	cmd := &cobra.Command{Use: "test"}
	addParamFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := resolveConfig(parse(t))
	require.NoError(t, err)
	assert.Equal(t, "euler", cfg.Scheme)
	assert.Equal(t, 1000, cfg.Samples)
}

func TestResolveConfigPresetWithOverrides(t *testing.T) {
	cfg, err := resolveConfig(parse(t, "--preset", "example", "--scheme", "rk", "--samples", "3"))
	require.NoError(t, err)

	assert.Equal(t, "rk", cfg.Scheme)
	assert.Equal(t, 3, cfg.Samples)
	assert.Equal(t, 0.15, cfg.Xi0)
	assert.Equal(t, 2.0, cfg.Alpha)
}

func TestResolveConfigFileBeatsPresetFlagsBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("alpha: 3\np: 0\nseed: 9\n"), 0644))

	cfg, err := resolveConfig(parse(t, "--preset", "example", "--config", path, "--seed", "11"))
	require.NoError(t, err)

	assert.Equal(t, 3.0, cfg.Alpha)
	assert.Zero(t, cfg.P)
	assert.Equal(t, int64(11), cfg.Seed)
	assert.Equal(t, 0.15, cfg.Xi0)
	assert.Equal(t, 2, cfg.Samples)
}

func TestResolveConfigErrors(t *testing.T) {
	_, err := resolveConfig(parse(t, "--preset", "missing"))
	assert.Error(t, err)

	_, err = resolveConfig(parse(t, "--alpha", "0"))
	assert.ErrorIs(t, err, dynamo.ErrInvalidParameter)

	_, err = resolveConfig(parse(t, "--mode", "parallel"))
	assert.ErrorIs(t, err, dynamo.ErrInvalidParameter)
}

func TestResolveConfigFileKeepsPresetValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 9\n"), 0644))

	cfg, err := resolveConfig(parse(t, "--preset", "example", "--config", path))
	require.NoError(t, err)

	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 2, cfg.Samples)
	assert.Equal(t, 0.15, cfg.Xi0)
	assert.Equal(t, 2.0, cfg.Alpha)
	assert.Equal(t, 0.05, cfg.Time)
}

func TestResolveConfigFlagRepairsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("alpha: 0\n"), 0644))

	cfg, err := resolveConfig(parse(t, "--config", path, "--alpha", "1.5"))
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.Alpha)

	_, err = resolveConfig(parse(t, "--config", path))
	assert.ErrorIs(t, err, dynamo.ErrInvalidParameter)
}

type closeRecorder struct {
	bytes.Buffer
	closed   bool
	closeErr error
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return c.closeErr
}

func TestWriteAndClose(t *testing.T) {
	ok := func(w io.Writer) error {
		_, err := io.WriteString(w, "a,b\n")
		return err
	}

	wc := &closeRecorder{}
	require.NoError(t, writeAndClose(wc, ok))
	assert.True(t, wc.closed)
	assert.Equal(t, "a,b\n", wc.String())

	flushErr := errors.New("disk full")
	wc = &closeRecorder{closeErr: flushErr}
	assert.ErrorIs(t, writeAndClose(wc, ok), flushErr)

	writeErr := errors.New("encode failed")
	wc = &closeRecorder{closeErr: flushErr}
	err := writeAndClose(wc, func(io.Writer) error { return writeErr })
	assert.ErrorIs(t, err, writeErr)
	assert.True(t, wc.closed)
}
