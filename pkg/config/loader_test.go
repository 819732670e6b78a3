package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namesmith/pkg/config"
)

type defaultsConfig struct {
	MaxLength int     `env:"MAX_LENGTH" envDefault:"15"`
	Base      float64 `env:"BASE_WEIGHT" envDefault:"0.8"`
}

type prefixedConfig struct {
	MaxLength int `env:"MAX_LENGTH" envDefault:"15"`
}

type requiredConfig struct {
	Path string `env:"NAMESMITH_REQUIRED_PATH,required"`
}

type fileConfig struct {
	Value string `env:"NAMESMITH_FILE_VALUE"`
}

func TestLoad_Defaults(t *testing.T) {
	config.Reset()
	os.Unsetenv("MAX_LENGTH")
	os.Unsetenv("BASE_WEIGHT")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 15, cfg.MaxLength)
	assert.Equal(t, 0.8, cfg.Base)
}

func TestLoad_Prefix(t *testing.T) {
	config.Reset()
	t.Setenv("WORDGEN_MAX_LENGTH", "9")

	var cfg prefixedConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("WORDGEN_")))
	assert.Equal(t, 9, cfg.MaxLength)
}

func TestLoad_Cached(t *testing.T) {
	config.Reset()
	t.Setenv("WORDGEN_MAX_LENGTH", "9")

	var first prefixedConfig
	require.NoError(t, config.Load(&first, config.WithPrefix("WORDGEN_")))

	t.Setenv("WORDGEN_MAX_LENGTH", "11")

	var cached prefixedConfig
	require.NoError(t, config.Load(&cached, config.WithPrefix("WORDGEN_")))
	assert.Equal(t, 9, cached.MaxLength)

	var fresh prefixedConfig
	require.NoError(t, config.Load(&fresh, config.WithPrefix("WORDGEN_"), config.WithoutCache()))
	assert.Equal(t, 11, fresh.MaxLength)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.Reset()
	os.Unsetenv("NAMESMITH_REQUIRED_PATH")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoad_EnvFile(t *testing.T) {
	config.Reset()
	os.Unsetenv("NAMESMITH_FILE_VALUE")
	t.Cleanup(func() { os.Unsetenv("NAMESMITH_FILE_VALUE") })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("NAMESMITH_FILE_VALUE=from-file\n"), 0o600))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path)))
	assert.Equal(t, "from-file", cfg.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}
