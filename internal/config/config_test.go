package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SCHOLARFORM_CONFIG", "")
	t.Setenv("SCHOLARFORM_DATABASE_PATH", "")
	t.Setenv("SCHOLARFORM_LOG_LEVEL", "")
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".scholarform", "scholarform.db"), cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.File)
	assert.True(t, cfg.UI.ShowHelp)
}

func TestLoad_FileThenEnv(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[database]
path = "~/forms.db"

[log]
level = "debug"

[ui]
show_help = false
`), 0o644))
	t.Setenv("SCHOLARFORM_CONFIG", path)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "forms.db"), cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.UI.ShowHelp)

	t.Setenv("SCHOLARFORM_LOG_LEVEL", "warn")
	cfg, err = Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_DefaultConfigLocation(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "scholarform")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[log]\nfile = \"/tmp/sf.log\"\n"), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/sf.log", cfg.Log.File)
}

func TestLoad_FlagsOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SCHOLARFORM_LOG_LEVEL", "warn")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db", "", "")
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse([]string{"--db", "/data/x.db"}))

	cfg, err := Load(flags)
	require.NoError(t, err)
	assert.Equal(t, "/data/x.db", cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Log.Level, "unset flags do not shadow env")
}

func TestLoad_MalformedFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log\nlevel ="), 0o644))
	t.Setenv("SCHOLARFORM_CONFIG", path)

	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/h", expandHome("~", "/h"))
	assert.Equal(t, "/h/a/b", expandHome("~/a/b", "/h"))
	assert.Equal(t, "/abs", expandHome("/abs", "/h"))
}
