package config_test

import (
	"github.com/davejbax/go-datetimeparse/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PDTPARSE_FORMAT", "PDTPARSE_PROFILE", "PDTPARSE_STRICT", "PDTPARSE_LABEL", "PDTPARSE_VERBOSE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err, "Load should not fail when there is no .env file")
	assert.Equal(t, config.Config{Format: config.FormatText, Profile: config.ProfileRFC3339, Label: config.DefaultLabel}, cfg, "Load should fall back to defaults")
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("PDTPARSE_FORMAT", "JSON")
	t.Setenv("PDTPARSE_PROFILE", "ISO8601")
	t.Setenv("PDTPARSE_STRICT", "yes")
	t.Setenv("PDTPARSE_LABEL", "ingest")
	t.Setenv("PDTPARSE_VERBOSE", "1")

	cfg, err := config.Load()
	require.NoError(t, err, "Load should not fail for valid settings")
	assert.Equal(t, config.Config{Format: config.FormatJSON, Profile: config.ProfileISO8601, Strict: true, Label: "ingest", Verbose: true}, cfg, "Load should read settings from the environment")
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	envPath := filepath.Join(t.TempDir(), "pdtparse.env")
	require.NoError(t, os.WriteFile(envPath, []byte("PDTPARSE_FORMAT=binary\nPDTPARSE_STRICT=true\n"), 0o600))

	cfg, err := config.Load(envPath)
	require.NoError(t, err, "Load should read a named env file")
	assert.Equal(t, config.FormatBinary, cfg.Format, "Load should take the format from the env file")
	assert.True(t, cfg.Strict, "Load should take strict mode from the env file")
}

func TestLoad_MissingNamedFile(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err, "Load should fail when a named env file does not exist")
}

func TestLoad_UnknownFormat(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("PDTPARSE_FORMAT", "xml")

	cfg, err := config.Load()
	require.NoError(t, err, "Load should leave validation to the caller")
	assert.ErrorIs(t, cfg.Validate(), config.ErrUnknownFormat, "Validate should reject an unknown format")

	cfg.Format = config.FormatJSON
	assert.NoError(t, cfg.Validate(), "an override applied after Load should make the configuration valid")
}

func TestValidate_UnknownProfile(t *testing.T) {
	cfg := config.Config{Format: config.FormatText, Profile: "rfc2822"}
	assert.ErrorIs(t, cfg.Validate(), config.ErrUnknownProfile, "Validate should reject an unknown profile")

	for _, profile := range []string{config.ProfileRFC3339, config.ProfileStrictRFC3339, config.ProfileISO8601} {
		cfg.Profile = profile
		assert.NoError(t, cfg.Validate(), "Validate should accept profile %q", profile)
	}
}
