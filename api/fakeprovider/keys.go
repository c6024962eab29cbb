package fakeprovider

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"

	"github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// KeyPair is the key the fake provider signs JWT access tokens with and publishes
// through /service/jwks/get.
type KeyPair struct {
	KeyID      string
	PrivateKey *ecdsa.PrivateKey
	Algorithm  string // ES256
}

// GenerateKeyPair generates a new ECDSA key pair for ES256 signing
func GenerateKeyPair(keyID string) (*KeyPair, error) {
	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate ECDSA key")
	}

	return &KeyPair{
		KeyID:      keyID,
		PrivateKey: privateKey,
		Algorithm:  "ES256",
	}, nil
}

// JWKS returns the public half of the key as a JSON Web Key Set.
func (k *KeyPair) JWKS() jose.JSONWebKeySet {
	return jose.JSONWebKeySet{
		Keys: []jose.JSONWebKey{{
			Key:       &k.PrivateKey.PublicKey,
			KeyID:     k.KeyID,
			Algorithm: k.Algorithm,
			Use:       "sig",
		}},
	}
}

// Sign issues a JWT carrying claims, with the key ID in the header.
func (k *KeyPair) Sign(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = k.KeyID
	signed, err := token.SignedString(k.PrivateKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}
