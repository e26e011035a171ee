package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/powerman/check"
)

func writeConfig(t *check.C, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sidh.toml")
	t.Must(t.Nil(os.WriteFile(path, []byte(content), 0644)))
	return path
}

func TestConfigLoad(tt *testing.T) {
	t := check.T(tt)
	path := writeConfig(t, `
parameter_set = 'p751'
key_dir = '/var/lib/sidh'
lanes = 4
lock_memory = true

[seal]
enabled = true
passphrase_file = '/etc/sidh/passphrase'
argon2_time = 2

[operation_log]
file = 'ops.log'
format = 'ltsv'
`)
	config, err := ConfigLoad(path, true)
	t.Must(t.Nil(err))
	t.Equal(config.ParameterSet, "p751")
	t.Equal(config.KeyDir, "/var/lib/sidh")
	t.Equal(config.Lanes, 4)
	t.True(config.LockMemory)
	t.True(config.Seal.Enabled)
	t.Equal(config.Seal.Argon2Time, uint32(2))
	t.Equal(config.Seal.Argon2MemoryKiB, uint32(64*1024))
	t.Equal(config.OperationLog.Format, "ltsv")
	t.Equal(config.LogMaxSize, 10)
	t.Nil(config.LogFile)
}

func TestConfigDefaults(tt *testing.T) {
	t := check.T(tt)
	missing := filepath.Join(t.TempDir(), "missing.toml")
	config, err := ConfigLoad(missing, false)
	t.Nil(err)
	t.DeepEqual(config, newConfig())

	_, err = ConfigLoad(missing, true)
	t.NotNil(err)
}

func TestConfigErrors(tt *testing.T) {
	t := check.T(tt)
	for _, content := range []string{
		"parameter_set = 'p512'",
		"parameter_sets = 'p434'",
		"lanes = -2",
		"key_dir = ''",
		"lanes = 'many'",
		"[operation_log]\nformat = 'json'",
		"[seal]\nenabled = true",
		"[seal]\nenabled = true\npassphrase_file = 'p'\nargon2_time = 0",
		"[seal]\nenabled = true\npassphrase_file = 'p'\nargon2_memory_kib = 4",
		"[seal]\nenabled = true\npassphrase_file = 'p'\nargon2_time = 65",
		"[seal]\nenabled = true\npassphrase_file = 'p'\nargon2_memory_kib = 4194305",
	} {
		_, err := ConfigLoad(writeConfig(t, content), true)
		t.NotNil(err, content)
	}
}

func TestReadPassphrase(tt *testing.T) {
	t := check.T(tt)
	dir := t.TempDir()
	path := filepath.Join(dir, "passphrase")
	t.Must(t.Nil(os.WriteFile(path, []byte("secret words\r\n"), 0600)))
	passphrase, err := readPassphrase(path)
	t.Nil(err)
	t.Equal(string(passphrase), "secret words")

	t.Must(t.Nil(os.WriteFile(path, []byte("\n"), 0600)))
	_, err = readPassphrase(path)
	t.NotNil(err)
	_, err = readPassphrase(filepath.Join(dir, "missing"))
	t.NotNil(err)
}

func TestExampleConfig(tt *testing.T) {
	t := check.T(tt)
	config, err := ConfigLoad("example-sidh.toml", true)
	t.Must(t.Nil(err))
	expected := newConfig()
	expected.LogLevel = config.LogLevel
	t.DeepEqual(config, expected)
}
