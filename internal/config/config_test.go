package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("conf", "", "")
	flags.String("profiles-dir", "", "")
	flags.StringP("output", "o", "", "")
	flags.BoolP("verbose", "v", false, "")
	flags.Bool("strict", false, "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Conf)
	assert.Equal(t, "profiles", cfg.ProfilesDir)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Projection.Strict)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := "profiles_dir: data/profiles\noutput: json\nprojection:\n  strict: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "qlcdict.yaml"), []byte(content), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "data/profiles", cfg.ProfilesDir)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.True(t, cfg.Projection.Strict)
	assert.Contains(t, GetConfigFileUsed(), "qlcdict.yaml")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "qlcdict.yaml"),
		[]byte("output: json\n"), 0o644))
	t.Setenv("QLCDICT_OUTPUT", "csv")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.OutputFormat)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("QLCDICT_OUTPUT", "csv")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--output", "markdown", "--strict"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.True(t, cfg.Projection.Strict, "--strict maps to projection.strict")
}

func TestLoad_UnchangedFlagsAreIgnored(t *testing.T) {
	t.Chdir(t.TempDir())

	flags := testFlags()
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat, "unset flags keep defaults")
}
