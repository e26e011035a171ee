package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/jedisct1/dlog"
	"github.com/pkg/errors"

	"github.com/jedisct1/go-sidh/params"
)

type Config struct {
	ParameterSet  string             `toml:"parameter_set"`
	KeyDir        string             `toml:"key_dir"`
	Lanes         int                `toml:"lanes"`
	LogLevel      int                `toml:"log_level"`
	LogFile       *string            `toml:"log_file"`
	UseSyslog     bool               `toml:"use_syslog"`
	LogMaxSize    int                `toml:"log_files_max_size"`
	LogMaxAge     int                `toml:"log_files_max_age"`
	LogMaxBackups int                `toml:"log_files_max_backups"`
	LockMemory    bool               `toml:"lock_memory"`
	Seal          SealConfig         `toml:"seal"`
	OperationLog  OperationLogConfig `toml:"operation_log"`
}

func newConfig() Config {
	return Config{
		ParameterSet:  "p434",
		KeyDir:        ".",
		LogLevel:      int(dlog.LogLevel()),
		LogMaxSize:    10,
		LogMaxAge:     7,
		LogMaxBackups: 1,
		Seal: SealConfig{
			Argon2Time:      3,
			Argon2MemoryKiB: 64 * 1024,
		},
		OperationLog: OperationLogConfig{
			Format: "tsv",
		},
	}
}

type SealConfig struct {
	Enabled         bool   `toml:"enabled"`
	PassphraseFile  string `toml:"passphrase_file"`
	Argon2Time      uint32 `toml:"argon2_time"`
	Argon2MemoryKiB uint32 `toml:"argon2_memory_kib"`
}

type OperationLogConfig struct {
	File   string `toml:"file"`
	Format string `toml:"format"`
}

// ConfigLoad reads configFile on top of the defaults. A missing file is only
// an error when mustExist is set.
func ConfigLoad(configFile string, mustExist bool) (Config, error) {
	config := newConfig()
	if _, err := os.Stat(configFile); err != nil {
		if mustExist || !os.IsNotExist(err) {
			return config, errors.Wrapf(err, "Unable to access configuration file [%s]", configFile)
		}
		dlog.Debugf("No configuration file at [%s], using defaults", configFile)
		return config, config.validate()
	}
	md, err := toml.DecodeFile(configFile, &config)
	if err != nil {
		return config, errors.Wrapf(err, "Unable to load configuration file [%s]", configFile)
	}
	undecoded := md.Undecoded()
	if len(undecoded) != 0 {
		return config, fmt.Errorf("Unsupported key in configuration file: [%s]", undecoded[0])
	}
	return config, config.validate()
}

func (config *Config) validate() error {
	if _, err := params.ByName(config.ParameterSet); err != nil {
		return err
	}
	if config.Lanes < 0 {
		return errors.New("The number of lanes cannot be negative")
	}
	if len(config.KeyDir) == 0 {
		return errors.New("The key directory cannot be empty")
	}
	switch config.OperationLog.Format {
	case "tsv", "ltsv":
	default:
		return fmt.Errorf("Unsupported operation log format: [%s]", config.OperationLog.Format)
	}
	if config.Seal.Enabled {
		if len(config.Seal.PassphraseFile) == 0 {
			return errors.New("Sealing secret keys requires a passphrase_file")
		}
		if !validArgon2Costs(config.Seal.Argon2Time, config.Seal.Argon2MemoryKiB) {
			return ErrArgon2Costs
		}
	}
	return nil
}

func (config *Config) applyLogging() {
	if config.LogLevel >= 0 && config.LogLevel < int(dlog.SeverityLast) {
		dlog.SetLogLevel(dlog.Severity(config.LogLevel))
	}
	if config.UseSyslog {
		dlog.UseSyslog(true)
	} else if config.LogFile != nil {
		dlog.UseLogFile(*config.LogFile)
	}
}
