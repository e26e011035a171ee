package main

import (
	"os"
	"strings"

	"github.com/jedisct1/dlog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/jedisct1/go-sidh/params"
)

const (
	AppVersion            = "1.0.0"
	DefaultConfigFileName = "sidh.toml"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   DefaultConfigFileName,
		Usage:   "Load settings from `FILE`",
		EnvVars: []string{"SIDH_CONFIG"},
	}
	paramsFlag = &cli.StringFlag{
		Name:    "params",
		Aliases: []string{"p"},
		Usage:   "Parameter set `NAME` (overrides parameter_set)",
	}
	keyDirFlag = &cli.StringFlag{
		Name:  "key-dir",
		Usage: "Directory holding key files (overrides key_dir)",
	}
	lanesFlag = &cli.IntFlag{
		Name:  "lanes",
		Usage: "Number of keys processed in parallel, 0 for one per CPU (overrides lanes)",
	}
)

func main() {
	dlog.Init("sidh", dlog.SeverityNotice, "")
	if err := newApp().Run(os.Args); err != nil {
		dlog.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "sidh",
		Usage:   "Supersingular isogeny Diffie-Hellman key tool",
		Version: AppVersion,
		Flags:   []cli.Flag{configFlag, paramsFlag, keyDirFlag, lanesFlag},
		Commands: []*cli.Command{
			buildParamsCommand(),
			buildKeygenCommand(),
			buildPubkeyCommand(),
			buildAgreeCommand(),
			buildStampCommand(),
		},
	}
}

// commandContext carries what every key command needs once the
// configuration has been loaded and command line overrides applied.
type commandContext struct {
	c      *cli.Context
	config Config
	params *params.Params
	store  *KeyStore
	oplog  *OperationLog
	locked [][]byte
}

func newCommandContext(c *cli.Context) (*commandContext, error) {
	config, err := ConfigLoad(c.String(configFlag.Name), c.IsSet(configFlag.Name))
	if err != nil {
		return nil, err
	}
	if c.IsSet(paramsFlag.Name) {
		config.ParameterSet = c.String(paramsFlag.Name)
	}
	if c.IsSet(keyDirFlag.Name) {
		config.KeyDir = c.String(keyDirFlag.Name)
	}
	if c.IsSet(lanesFlag.Name) {
		config.Lanes = c.Int(lanesFlag.Name)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	config.applyLogging()

	p, err := params.ByName(config.ParameterSet)
	if err != nil {
		return nil, err
	}
	var sealer *Sealer
	if config.Seal.Enabled {
		passphrase, err := readPassphrase(config.Seal.PassphraseFile)
		if err != nil {
			return nil, err
		}
		sealer = NewSealer(passphrase, config.Seal.Argon2Time, config.Seal.Argon2MemoryKiB)
	}
	oplog, err := OpenOperationLog(&config)
	if err != nil {
		return nil, err
	}
	return &commandContext{
		c:      c,
		config: config,
		params: p,
		store:  NewKeyStore(config.KeyDir, sealer),
		oplog:  oplog,
	}, nil
}

func readPassphrase(fileName string) ([]byte, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to read passphrase file [%s]", fileName)
	}
	passphrase := []byte(strings.TrimRight(string(data), "\r\n"))
	wipe(data)
	if len(passphrase) == 0 {
		return nil, errors.Errorf("Passphrase file [%s] is empty", fileName)
	}
	return passphrase, nil
}

// lock keeps a secret buffer out of swap when lock_memory is set.
func (cc *commandContext) lock(b []byte) {
	if !cc.config.LockMemory {
		return
	}
	if err := lockMemory(b); err != nil {
		dlog.Warnf("Unable to lock secret key memory: [%v]", err)
		return
	}
	cc.locked = append(cc.locked, b)
}

func (cc *commandContext) record(op Operation) {
	if op.Err != nil {
		dlog.Debugf("%s failed: %v", op.Command, op.Err)
	}
	if err := cc.oplog.Record(op); err != nil {
		dlog.Warn(err)
	}
}

func (cc *commandContext) Close() {
	for _, b := range cc.locked {
		wipe(b)
		unlockMemory(b)
	}
	cc.locked = nil
	if err := cc.oplog.Close(); err != nil {
		dlog.Warn(err)
	}
}
