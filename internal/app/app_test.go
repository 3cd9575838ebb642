package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/magni-/trm6-ch3-professional-accounting/internal/config"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/model"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "account.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"acct-1","transactions":[{"id":"t1","amount":42}]}`), 0o644))

	cfg := config.NewDefault()
	cfg.Account.File = path
	cfg.Metrics.Textfile = filepath.Join(dir, "acctbal.prom")

	a, cleanup, err := NewApp(cfg, io.Discard)
	require.NoError(t, err)

	assert.IsType(t, &store.JSONSource{}, a.Source)

	report, err := a.Service.Account.Check()
	require.NoError(t, err)
	assert.Equal(t, int64(42), report.Balance)

	cleanup()

	data, err := os.ReadFile(cfg.Metrics.Textfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `account_balance{account_id="acct-1"} 42`)
}

func TestNewAppSQLiteMissingDatabase(t *testing.T) {
	dir := t.TempDir()

	cfg := config.NewDefault()
	cfg.Account.Source = "sqlite"
	cfg.Account.Database = filepath.Join(dir, "none.db")
	cfg.Account.ID = "acct-1"
	cfg.Metrics.Textfile = filepath.Join(dir, "acctbal.prom")

	_, _, err := NewApp(cfg, io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrIO)

	data, err := os.ReadFile(cfg.Metrics.Textfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `account_check_failures_total{kind="io"} 1`)
}

func TestNewAppInvalidLogLevel(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Log.Level = "chatty"

	_, _, err := NewApp(cfg, io.Discard)
	assert.Error(t, err)
}

func TestNewSource(t *testing.T) {
	src, err := NewSource(config.AccountConfig{Source: "JSON", File: "account.json"})
	require.NoError(t, err)
	assert.IsType(t, &store.JSONSource{}, src)

	_, err = NewSource(config.AccountConfig{Source: "csv"})
	assert.Error(t, err)
}
