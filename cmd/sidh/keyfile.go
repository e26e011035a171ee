package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/dchest/safefile"
	"github.com/pkg/errors"

	sidh "github.com/jedisct1/go-sidh"
	"github.com/jedisct1/go-sidh/params"
	"github.com/jedisct1/go-sidh/stamps"
)

const (
	SecretKeySuffix = ".sk"
	PublicKeySuffix = ".pk"
)

var SecretKeyMagic = [8]byte{'S', 'I', 'D', 'H', 's', 'k', '0', '1'}

// A secret key record is paramsID(u8) variant(u8) scalar. Plain files prefix
// it with SecretKeyMagic; sealed files carry it inside the box.

func encodeSecretKey(prv *sidh.PrivateKey) []byte {
	record := make([]byte, 2, 2+prv.Size())
	record[0] = uint8(prv.Params().ID)
	record[1] = uint8(prv.Variant())
	return append(record, prv.Scalar...)
}

func decodeSecretKey(record []byte) (*sidh.PrivateKey, error) {
	if len(record) < 2 {
		return nil, errors.New("Secret key is too short")
	}
	prv, err := sidh.NewPrivateKey(params.ID(record[0]), sidh.KeyVariant(record[1]))
	if err != nil {
		return nil, err
	}
	if err := prv.Import(record[2:]); err != nil {
		return nil, err
	}
	return prv, nil
}

type KeyStore struct {
	dir    string
	sealer *Sealer
}

func NewKeyStore(dir string, sealer *Sealer) *KeyStore {
	return &KeyStore{dir: dir, sealer: sealer}
}

// path appends suffix unless name already ends with it. Bare names live in
// the key directory; names with a directory part are used as given.
func (store *KeyStore) path(name, suffix string) string {
	if !strings.HasSuffix(name, suffix) {
		name += suffix
	}
	if filepath.IsAbs(name) || filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(store.dir, name)
}

func (store *KeyStore) WriteSecretKey(name string, prv *sidh.PrivateKey) (string, error) {
	record := encodeSecretKey(prv)
	defer wipe(record)
	var data []byte
	if store.sealer != nil {
		sealed, err := store.sealer.Seal(record)
		if err != nil {
			return "", errors.Wrap(err, "Unable to seal the secret key")
		}
		data = sealed
	} else {
		data = append(append([]byte(nil), SecretKeyMagic[:]...), record...)
		defer wipe(data)
	}
	path := store.path(name, SecretKeySuffix)
	if err := safefile.WriteFile(path, data, 0600); err != nil {
		return "", errors.Wrapf(err, "Unable to write secret key [%s]", path)
	}
	return path, nil
}

func (store *KeyStore) ReadSecretKey(name string) (*sidh.PrivateKey, error) {
	path := store.path(name, SecretKeySuffix)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to read secret key [%s]", path)
	}
	defer wipe(data)
	var record []byte
	switch {
	case IsSealed(data):
		if store.sealer == nil {
			return nil, errors.Errorf("Secret key [%s] is sealed and no passphrase is configured", path)
		}
		if record, err = store.sealer.Open(data); err != nil {
			return nil, errors.Wrapf(err, "Unable to open secret key [%s]", path)
		}
		defer wipe(record)
	case bytes.HasPrefix(data, SecretKeyMagic[:]):
		record = data[len(SecretKeyMagic):]
	default:
		return nil, errors.Errorf("[%s] is not a secret key file", path)
	}
	prv, err := decodeSecretKey(record)
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid secret key [%s]", path)
	}
	return prv, nil
}

// WritePublicKey stores pub as a stamp and returns the file path and the stamp.
func (store *KeyStore) WritePublicKey(name string, pub *sidh.PublicKey) (string, string, error) {
	stamp, err := stamps.NewStampFromPublicKey(pub, filepath.Base(name))
	if err != nil {
		return "", "", err
	}
	stampStr := stamp.String()
	path := store.path(name, PublicKeySuffix)
	if err := safefile.WriteFile(path, []byte(stampStr+"\n"), 0644); err != nil {
		return "", "", errors.Wrapf(err, "Unable to write public key [%s]", path)
	}
	return path, stampStr, nil
}

// ReadPeerPublicKey accepts a stamp, a public key file holding a stamp, or a
// hex-encoded key. A bare key is taken to be of the variant opposite to prv.
func (store *KeyStore) ReadPeerPublicKey(peer string, prv *sidh.PrivateKey) (*sidh.PublicKey, error) {
	peer = strings.TrimSpace(peer)
	if strings.HasPrefix(peer, stamps.StampScheme) {
		return parseStamp(peer)
	}
	if len(peer) != 2*prv.Params().PublicKeySize {
		return store.readPublicKeyFile(peer)
	}
	if bin, err := hex.DecodeString(peer); err == nil {
		variant := sidh.KeyVariantA
		if prv.Variant() == sidh.KeyVariantA {
			variant = sidh.KeyVariantB
		}
		pub, err := sidh.NewPublicKeyWith(prv.Params(), variant)
		if err != nil {
			return nil, err
		}
		if err := pub.Import(bin); err != nil {
			return nil, errors.Wrap(err, "Invalid public key")
		}
		return pub, nil
	}
	return store.readPublicKeyFile(peer)
}

func (store *KeyStore) readPublicKeyFile(name string) (*sidh.PublicKey, error) {
	path := store.path(name, PublicKeySuffix)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to read public key [%s]", path)
	}
	pub, err := parseStamp(string(bytes.TrimSpace(data)))
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid public key file [%s]", path)
	}
	return pub, nil
}

func parseStamp(stampStr string) (*sidh.PublicKey, error) {
	stamp, err := stamps.NewStampFromString(stampStr)
	if err != nil {
		return nil, errors.Wrap(err, "Invalid stamp")
	}
	return stamp.PublicKey()
}
