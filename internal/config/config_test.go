package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "acctbal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, NewDefault(), cfg)
	assert.Equal(t, "account.json", cfg.Account.File)
	assert.Equal(t, "json", cfg.Account.Source)
	assert.Empty(t, cfg.ConfigPath)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
account:
  source: sqlite
  database: /tmp/acct.db
  id: acct-9
display:
  minor_units: 2
log:
  level: debug
metrics:
  textfile: /tmp/acctbal.prom
`)

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Account.Source)
	assert.Equal(t, "/tmp/acct.db", cfg.Account.Database)
	assert.Equal(t, "acct-9", cfg.Account.ID)
	assert.Equal(t, "account.json", cfg.Account.File)
	assert.Equal(t, int32(2), cfg.Display.MinorUnits)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/acctbal.prom", cfg.Metrics.Textfile)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestLoadFindsConfigInWorkingDir(t *testing.T) {
	dir := filepath.Dir(writeConfig(t, "account:\n  file: other.json\n"))
	t.Chdir(dir)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "other.json", cfg.Account.File)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "account:\n  file: from-file.json\n  id: file-id\n")

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("ACCTBAL_ACCOUNT_FILE", "from-env.json")

		cfg, err := Load(viper.New(), path)
		require.NoError(t, err)
		assert.Equal(t, "from-env.json", cfg.Account.File)
		assert.Equal(t, "file-id", cfg.Account.ID)
	})

	t.Run("flag overrides env", func(t *testing.T) {
		t.Setenv("ACCTBAL_ACCOUNT_FILE", "from-env.json")

		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String("file", "account.json", "")
		require.NoError(t, fs.Parse([]string{"--file", "from-flag.json"}))

		v := viper.New()
		require.NoError(t, v.BindPFlag("account.file", fs.Lookup("file")))

		cfg, err := Load(v, path)
		require.NoError(t, err)
		assert.Equal(t, "from-flag.json", cfg.Account.File)
	})

	t.Run("unchanged flag keeps file value", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String("file", "account.json", "")
		require.NoError(t, fs.Parse(nil))

		v := viper.New()
		require.NoError(t, v.BindPFlag("account.file", fs.Lookup("file")))

		cfg, err := Load(v, path)
		require.NoError(t, err)
		assert.Equal(t, "from-file.json", cfg.Account.File)
	})
}
