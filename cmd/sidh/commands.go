package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/jedisct1/dlog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	sidh "github.com/jedisct1/go-sidh"
	"github.com/jedisct1/go-sidh/params"
	"github.com/jedisct1/go-sidh/stamps"
)

var (
	variantFlag = &cli.StringFlag{
		Name:  "variant",
		Usage: "Key `VARIANT`: A (2-torsion) or B (3-torsion)",
	}
	nameFlag = &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Value:   "sidh",
		Usage:   "Key `NAME`; files are written as NAME.sk and NAME.pk",
	}
	seedFlag = &cli.StringFlag{
		Name:  "seed",
		Usage: "Derive keys from `SEED` instead of the system generator. Only for tests",
	}
	countFlag = &cli.IntFlag{
		Name:  "count",
		Value: 1,
		Usage: "Number of key pairs to generate",
	}
	hexFlag = &cli.BoolFlag{
		Name:  "hex",
		Usage: "Print the raw public key in hexadecimal instead of a stamp",
	}
)

func buildParamsCommand() *cli.Command {
	return &cli.Command{
		Name:   "params",
		Usage:  "List the supported parameter sets and their sizes",
		Action: paramsCommand,
	}
}

func buildKeygenCommand() *cli.Command {
	return &cli.Command{
		Name:      "keygen",
		Usage:     "Generate key pairs",
		UsageText: "sidh [global options] keygen --variant A|B [--name NAME] [--count N] [--seed SEED]",
		Flags:     []cli.Flag{variantFlag, nameFlag, seedFlag, countFlag},
		Action:    keygenCommand,
	}
}

func buildPubkeyCommand() *cli.Command {
	return &cli.Command{
		Name:      "pubkey",
		Usage:     "Recompute the public key of a secret key",
		UsageText: "sidh [global options] pubkey [--hex] SECRET_KEY",
		Flags:     []cli.Flag{hexFlag},
		Action:    pubkeyCommand,
	}
}

func buildAgreeCommand() *cli.Command {
	return &cli.Command{
		Name:      "agree",
		Usage:     "Derive shared secrets with one or more peers",
		UsageText: "sidh [global options] agree SECRET_KEY PEER [PEER...]",
		Description: `Each PEER is a sidh:// stamp, a public key file or a hex-encoded public key.
  With a single peer the shared secret is printed in hexadecimal; with several,
  every line holds the peer and its shared secret separated by a tab.`,
		Action: agreeCommand,
	}
}

func buildStampCommand() *cli.Command {
	return &cli.Command{
		Name:      "stamp",
		Usage:     "Convert between hex public keys and stamps",
		UsageText: "sidh [global options] stamp --variant A|B [--name NAME] HEX_PUBLIC_KEY\n   sidh stamp STAMP",
		Flags:     []cli.Flag{variantFlag, nameFlag},
		Action:    stampCommand,
	}
}

func paramsCommand(c *cli.Context) error {
	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tID\tPUBLIC KEY\tSHARED SECRET\tSECRET A\tSECRET B")
	for _, id := range params.IDs() {
		p, err := params.Get(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n",
			p.Name, uint8(p.ID), p.PublicKeySize, p.SharedSecretSize, p.A.SecretByteLen, p.B.SecretByteLen)
	}
	return w.Flush()
}

func keygenCommand(c *cli.Context) error {
	cc, err := newCommandContext(c)
	if err != nil {
		return errors.Wrap(err, "Error loading configuration")
	}
	defer cc.Close()

	variant, err := sidh.ParseKeyVariant(c.String(variantFlag.Name))
	if err != nil {
		return err
	}
	count := c.Int(countFlag.Name)
	if count < 1 {
		return errors.Errorf("Invalid key count [%d]", count)
	}
	name := c.String(nameFlag.Name)
	if err := checkKeyName(name, count); err != nil {
		return err
	}
	var source io.Reader = rand.Reader
	if seed := c.String(seedFlag.Name); len(seed) > 0 {
		dlog.Warn("Keys derived from a seed are only as secret as the seed")
		source = sidh.NewSeededReader([]byte(seed))
	}

	pairs, err := sidh.GenerateKeys(c.Context, cc.params, variant, source, count, cc.config.Lanes)
	if err != nil {
		cc.record(Operation{Command: "keygen", Params: cc.params.Name, Variant: variant.String(), Err: err})
		return err
	}
	defer func() {
		for _, pair := range pairs {
			pair.Private.Zeroize()
		}
	}()
	for i, pair := range pairs {
		cc.lock(pair.Private.Scalar)
		pairName := keyName(name, i, count)
		err := writeKeyPair(c, cc, pairName, pair)
		cc.record(Operation{Command: "keygen", Params: cc.params.Name, Variant: variant.String(), KeyName: pairName, Err: err})
		if err != nil {
			return err
		}
	}
	return nil
}

func keyName(name string, i, count int) string {
	if count == 1 {
		return name
	}
	return fmt.Sprintf("%s-%d", name, i+1)
}

// checkKeyName rejects names that would not fit in a stamp, before any key
// file is written.
func checkKeyName(name string, count int) error {
	if len(name) == 0 {
		return errors.New("Key names cannot be empty")
	}
	if longest := filepath.Base(keyName(name, count-1, count)); len(longest) > stamps.MaxNameLength {
		return errors.Errorf("Key name is too long: [%s]", longest)
	}
	return nil
}

func writeKeyPair(c *cli.Context, cc *commandContext, name string, pair sidh.KeyPair) error {
	skPath, err := cc.store.WriteSecretKey(name, pair.Private)
	if err != nil {
		return err
	}
	pkPath, stampStr, err := cc.store.WritePublicKey(name, pair.Public)
	if err != nil {
		return err
	}
	dlog.Noticef("Key pair written to [%s] and [%s]", skPath, pkPath)
	fmt.Fprintln(c.App.Writer, stampStr)
	return nil
}

func pubkeyCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("A single secret key is expected")
	}
	cc, err := newCommandContext(c)
	if err != nil {
		return errors.Wrap(err, "Error loading configuration")
	}
	defer cc.Close()

	name := c.Args().First()
	op := Operation{Command: "pubkey", KeyName: name}
	prv, err := cc.store.ReadSecretKey(name)
	if err != nil {
		op.Err = err
		cc.record(op)
		return err
	}
	defer prv.Zeroize()
	cc.lock(prv.Scalar)
	op.Params, op.Variant = prv.Params().Name, prv.Variant().String()

	pub := prv.GeneratePublicKey()
	if c.Bool(hexFlag.Name) {
		fmt.Fprintln(c.App.Writer, hex.EncodeToString(pub.Export()))
	} else {
		stamp, err := stamps.NewStampFromPublicKey(pub, filepath.Base(strings.TrimSuffix(name, SecretKeySuffix)))
		if err != nil {
			op.Err = err
			cc.record(op)
			return err
		}
		fmt.Fprintln(c.App.Writer, stamp.String())
	}
	cc.record(op)
	return nil
}

func agreeCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("A secret key and at least one peer are expected")
	}
	cc, err := newCommandContext(c)
	if err != nil {
		return errors.Wrap(err, "Error loading configuration")
	}
	defer cc.Close()

	name := c.Args().First()
	op := Operation{Command: "agree", KeyName: name}
	prv, err := cc.store.ReadSecretKey(name)
	if err != nil {
		op.Err = err
		cc.record(op)
		return err
	}
	defer prv.Zeroize()
	cc.lock(prv.Scalar)
	op.Params, op.Variant = prv.Params().Name, prv.Variant().String()

	peerArgs := c.Args().Tail()
	peers := make([]*sidh.PublicKey, len(peerArgs))
	for i, peer := range peerArgs {
		if peers[i], err = cc.store.ReadPeerPublicKey(peer, prv); err != nil {
			op.Err = err
			cc.record(op)
			return err
		}
	}
	secrets, err := sidh.DeriveSecrets(c.Context, prv, peers, cc.config.Lanes)
	op.Err = err
	cc.record(op)
	if err != nil {
		return err
	}
	for i, secret := range secrets {
		if len(secrets) == 1 {
			fmt.Fprintln(c.App.Writer, hex.EncodeToString(secret))
		} else {
			fmt.Fprintf(c.App.Writer, "%s\t%s\n", peerArgs[i], hex.EncodeToString(secret))
		}
		wipe(secret)
	}
	return nil
}

func stampCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("A single public key or stamp is expected")
	}
	arg := strings.TrimSpace(c.Args().First())
	if strings.HasPrefix(arg, stamps.StampScheme) {
		stamp, err := stamps.NewStampFromString(arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\t%s\n",
			stamp.ParamsID, stamp.Variant, stamp.Name, hex.EncodeToString(stamp.Pk))
		return nil
	}

	cc, err := newCommandContext(c)
	if err != nil {
		return errors.Wrap(err, "Error loading configuration")
	}
	defer cc.Close()
	variant, err := sidh.ParseKeyVariant(c.String(variantFlag.Name))
	if err != nil {
		return err
	}
	bin, err := hex.DecodeString(arg)
	if err != nil {
		return errors.Wrap(err, "Public keys are expected in hexadecimal")
	}
	pub, err := sidh.NewPublicKeyWith(cc.params, variant)
	if err != nil {
		return err
	}
	if err := pub.Import(bin); err != nil {
		return errors.Wrap(err, "Invalid public key")
	}
	stamp, err := stamps.NewStampFromPublicKey(pub, c.String(nameFlag.Name))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, stamp.String())
	return nil
}
