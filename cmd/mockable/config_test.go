package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. (testing.T.Chdir needs Go 1.24.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	a := assert.New(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	a.Equal("iface", cfg.Lang)
	a.Equal("_mock", cfg.Suffix)
	a.Equal("mocks", cfg.GoPackage)
	a.NoError(cfg.Validate())
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	err := os.WriteFile(filepath.Join(dir, configFile), []byte(`
lang = "go"
suffix = "_double"
helper = "fail"
go_package = "doubles"
`), 0o644)
	require.NoError(t, err)

	a := assert.New(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	a.Equal("go", cfg.Lang)
	a.Equal("_double", cfg.Suffix)
	a.Equal("fail", cfg.Helper)
	a.Equal("doubles", cfg.GoPackage)
}

func TestConfigValidate(t *testing.T) {
	a := assert.New(t)

	cfg := DefaultConfig()
	cfg.Lang = "rust"
	a.Error(cfg.Validate())

	cfg = DefaultConfig()
	cfg.Suffix = ""
	a.Error(cfg.Validate())

	cfg = DefaultConfig()
	cfg.Lang = "go"
	cfg.GoPackage = ""
	a.Error(cfg.Validate())
}
