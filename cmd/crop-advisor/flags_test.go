// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/crop-advisor/internal/catalog"
	"github.com/pdiddy/crop-advisor/internal/fixture"
	"github.com/pdiddy/crop-advisor/pkg/types"
)

func newEnvFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	addEnvironmentFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestEnvironmentFromFlags(t *testing.T) {
	fs := newEnvFlags(t,
		"--temperature=25", "--humidity=60", "--rainfall=200",
		"--soil-ph=6.5", "--soil-moisture=0.35", "--pest-risk=3")

	env, err := environmentFromFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, fixture.SampleEnvironment(), env)
}

func TestEnvironmentFromFlagsExplicitZero(t *testing.T) {
	fs := newEnvFlags(t,
		"--temperature=0", "--humidity=0", "--rainfall=0",
		"--soil-ph=0", "--soil-moisture=0", "--pest-risk=0")

	env, err := environmentFromFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, types.EnvironmentalData{}, env)
}

func TestEnvironmentFromFlagsMissing(t *testing.T) {
	fs := newEnvFlags(t, "--temperature=25", "--humidity=60")

	_, err := environmentFromFlags(fs)
	var mfe *types.MissingFieldError
	require.True(t, errors.As(err, &mfe), "got %v", err)
	assert.Equal(t, "rainfall", mfe.Field)
}

func TestEnvironmentFromFlagsInvalidMoisture(t *testing.T) {
	fs := newEnvFlags(t,
		"--temperature=25", "--humidity=60", "--rainfall=200",
		"--soil-ph=6.5", "--soil-moisture=35", "--pest-risk=3")

	_, err := environmentFromFlags(fs)
	var ife *types.InvalidFieldError
	assert.True(t, errors.As(err, &ife))
}

func TestEnvironmentFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	content := "temperature: 25\nhumidity: 60\nrainfall: 200\nsoil_ph: 6.5\nsoil_moisture: 0.35\npest_risk: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	env, err := environmentFromFlags(newEnvFlags(t, "--env", path, "--temperature=99"))
	require.NoError(t, err)
	assert.Equal(t, 25.0, env.Temperature)
}

func TestLoadCatalogPrefersDatabase(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "crops.db")

	store, err := catalog.NewStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Import(ctx, fixture.SampleCatalog()[:2]))
	require.NoError(t, store.Close())

	crops, err := loadCatalog(ctx, types.CatalogConfig{Path: filepath.Join(dir, "absent.yaml"), Database: dbPath})
	require.NoError(t, err)
	assert.Len(t, crops, 2)

	_, err = loadCatalog(ctx, types.CatalogConfig{Path: filepath.Join(dir, "absent.yaml")})
	assert.Error(t, err)
}

func TestOpenOutput(t *testing.T) {
	w, err := openOutput("")
	require.NoError(t, err)
	assert.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "report.txt")
	w, err = openOutput(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("ok"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}
