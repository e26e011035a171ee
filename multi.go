package sidh

import (
	"context"
	"io"

	"github.com/jedisct1/go-sidh/batch"
	"github.com/jedisct1/go-sidh/params"
)

// KeyPair is a private key and its public key.
type KeyPair struct {
	Private *PrivateKey
	Public  *PublicKey
}

// GenerateKeys creates n key pairs of variant v. Scalars are read from rand
// one after the other, so a seeded reader gives the same keys for any lane
// count; public keys are then computed on up to lanes goroutines.
func GenerateKeys(ctx context.Context, p *params.Params, v KeyVariant, rand io.Reader, n, lanes int) ([]KeyPair, error) {
	if n < 0 {
		return nil, ErrKeyCount
	}
	keys := make([]*PrivateKey, n)
	for i := range keys {
		prv, err := NewPrivateKeyWith(p, v)
		if err != nil {
			return nil, err
		}
		if err := prv.Generate(rand); err != nil {
			return nil, err
		}
		keys[i] = prv
	}
	return batch.Run(ctx, lanes, keys, func(_ context.Context, prv *PrivateKey) (KeyPair, error) {
		return KeyPair{Private: prv, Public: prv.GeneratePublicKey()}, nil
	})
}

// DeriveSecrets computes the shared secret of prv with every peer key, on up
// to lanes goroutines. Outputs follow the order of peers.
func DeriveSecrets(ctx context.Context, prv *PrivateKey, peers []*PublicKey, lanes int) ([][]byte, error) {
	return batch.Run(ctx, lanes, peers, func(_ context.Context, pub *PublicKey) ([]byte, error) {
		return prv.DeriveSecret(pub)
	})
}
