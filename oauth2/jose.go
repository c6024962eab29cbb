package oauth2

import (
	"crypto"

	"github.com/jrsteele09/go-authlete/enum"
)

// JWSAlg is a JWS signing algorithm (RFC 7518 §3).
type JWSAlg int16

const (
	JWSAlgNone   JWSAlg = 0
	JWSAlgHS256  JWSAlg = 1
	JWSAlgHS384  JWSAlg = 2
	JWSAlgHS512  JWSAlg = 3
	JWSAlgRS256  JWSAlg = 4
	JWSAlgRS384  JWSAlg = 5
	JWSAlgRS512  JWSAlg = 6
	JWSAlgES256  JWSAlg = 7
	JWSAlgES384  JWSAlg = 8
	JWSAlgES512  JWSAlg = 9
	JWSAlgPS256  JWSAlg = 10
	JWSAlgPS384  JWSAlg = 11
	JWSAlgPS512  JWSAlg = 12
	JWSAlgES256K JWSAlg = 13
	JWSAlgEdDSA  JWSAlg = 14
)

var jwsAlgs = enum.New("JWSAlg",
	enum.Entry[JWSAlg]{Value: JWSAlgNone, Wire: "none", Name: "NONE"},
	enum.Entry[JWSAlg]{Value: JWSAlgHS256, Wire: "HS256"},
	enum.Entry[JWSAlg]{Value: JWSAlgHS384, Wire: "HS384"},
	enum.Entry[JWSAlg]{Value: JWSAlgHS512, Wire: "HS512"},
	enum.Entry[JWSAlg]{Value: JWSAlgRS256, Wire: "RS256"},
	enum.Entry[JWSAlg]{Value: JWSAlgRS384, Wire: "RS384"},
	enum.Entry[JWSAlg]{Value: JWSAlgRS512, Wire: "RS512"},
	enum.Entry[JWSAlg]{Value: JWSAlgES256, Wire: "ES256"},
	enum.Entry[JWSAlg]{Value: JWSAlgES384, Wire: "ES384"},
	enum.Entry[JWSAlg]{Value: JWSAlgES512, Wire: "ES512"},
	enum.Entry[JWSAlg]{Value: JWSAlgPS256, Wire: "PS256"},
	enum.Entry[JWSAlg]{Value: JWSAlgPS384, Wire: "PS384"},
	enum.Entry[JWSAlg]{Value: JWSAlgPS512, Wire: "PS512"},
	enum.Entry[JWSAlg]{Value: JWSAlgES256K, Wire: "ES256K"},
	enum.Entry[JWSAlg]{Value: JWSAlgEdDSA, Wire: "EdDSA"},
)

// JWSAlgs returns the lookup table for JWSAlg.
func JWSAlgs() *enum.Set[JWSAlg] { return jwsAlgs }

// ParseJWSAlg resolves a canonical wire string.
func ParseJWSAlg(s string) (JWSAlg, error) { return jwsAlgs.FromString(s) }

func (a JWSAlg) Enum() *enum.Set[JWSAlg]      { return jwsAlgs }
func (a JWSAlg) Ordinal() int                 { return int(a) }
func (a JWSAlg) String() string               { return jwsAlgs.Wire(a) }
func (a JWSAlg) Name() string                 { return jwsAlgs.Name(a) }
func (a JWSAlg) MarshalJSON() ([]byte, error) { return jwsAlgs.MarshalJSON(a) }
func (a *JWSAlg) UnmarshalJSON(b []byte) error {
	return jwsAlgs.UnmarshalJSON(b, a)
}

// IsSymmetric reports whether the algorithm is an HMAC keyed with a shared secret.
func (a JWSAlg) IsSymmetric() bool {
	return a >= JWSAlgHS256 && a <= JWSAlgHS512
}

// IsAsymmetric reports whether the algorithm signs with a private key.
func (a JWSAlg) IsAsymmetric() bool {
	return a >= JWSAlgRS256 && a <= JWSAlgEdDSA
}

// JWEAlg is a JWE key management algorithm (RFC 7518 §4).
type JWEAlg int16

const (
	JWEAlgRSA1_5           JWEAlg = 1
	JWEAlgRSAOAEP          JWEAlg = 2
	JWEAlgRSAOAEP256       JWEAlg = 3
	JWEAlgA128KW           JWEAlg = 4
	JWEAlgA192KW           JWEAlg = 5
	JWEAlgA256KW           JWEAlg = 6
	JWEAlgDir              JWEAlg = 7
	JWEAlgECDHES           JWEAlg = 8
	JWEAlgECDHESA128KW     JWEAlg = 9
	JWEAlgECDHESA192KW     JWEAlg = 10
	JWEAlgECDHESA256KW     JWEAlg = 11
	JWEAlgA128GCMKW        JWEAlg = 12
	JWEAlgA192GCMKW        JWEAlg = 13
	JWEAlgA256GCMKW        JWEAlg = 14
	JWEAlgPBES2HS256A128KW JWEAlg = 15
	JWEAlgPBES2HS384A192KW JWEAlg = 16
	JWEAlgPBES2HS512A256KW JWEAlg = 17
)

var jweAlgs = enum.New("JWEAlg",
	enum.Entry[JWEAlg]{Value: JWEAlgRSA1_5, Wire: "RSA1_5"},
	enum.Entry[JWEAlg]{Value: JWEAlgRSAOAEP, Wire: "RSA-OAEP", Name: "RSA_OAEP"},
	enum.Entry[JWEAlg]{Value: JWEAlgRSAOAEP256, Wire: "RSA-OAEP-256", Name: "RSA_OAEP_256"},
	enum.Entry[JWEAlg]{Value: JWEAlgA128KW, Wire: "A128KW"},
	enum.Entry[JWEAlg]{Value: JWEAlgA192KW, Wire: "A192KW"},
	enum.Entry[JWEAlg]{Value: JWEAlgA256KW, Wire: "A256KW"},
	enum.Entry[JWEAlg]{Value: JWEAlgDir, Wire: "dir", Name: "DIR"},
	enum.Entry[JWEAlg]{Value: JWEAlgECDHES, Wire: "ECDH-ES", Name: "ECDH_ES"},
	enum.Entry[JWEAlg]{Value: JWEAlgECDHESA128KW, Wire: "ECDH-ES+A128KW", Name: "ECDH_ES_A128KW"},
	enum.Entry[JWEAlg]{Value: JWEAlgECDHESA192KW, Wire: "ECDH-ES+A192KW", Name: "ECDH_ES_A192KW"},
	enum.Entry[JWEAlg]{Value: JWEAlgECDHESA256KW, Wire: "ECDH-ES+A256KW", Name: "ECDH_ES_A256KW"},
	enum.Entry[JWEAlg]{Value: JWEAlgA128GCMKW, Wire: "A128GCMKW"},
	enum.Entry[JWEAlg]{Value: JWEAlgA192GCMKW, Wire: "A192GCMKW"},
	enum.Entry[JWEAlg]{Value: JWEAlgA256GCMKW, Wire: "A256GCMKW"},
	enum.Entry[JWEAlg]{Value: JWEAlgPBES2HS256A128KW, Wire: "PBES2-HS256+A128KW", Name: "PBES2_HS256_A128KW"},
	enum.Entry[JWEAlg]{Value: JWEAlgPBES2HS384A192KW, Wire: "PBES2-HS384+A192KW", Name: "PBES2_HS384_A192KW"},
	enum.Entry[JWEAlg]{Value: JWEAlgPBES2HS512A256KW, Wire: "PBES2-HS512+A256KW", Name: "PBES2_HS512_A256KW"},
)

// JWEAlgs returns the lookup table for JWEAlg.
func JWEAlgs() *enum.Set[JWEAlg] { return jweAlgs }

// ParseJWEAlg resolves a canonical wire string.
func ParseJWEAlg(s string) (JWEAlg, error) { return jweAlgs.FromString(s) }

func (a JWEAlg) Enum() *enum.Set[JWEAlg]      { return jweAlgs }
func (a JWEAlg) Ordinal() int                 { return int(a) }
func (a JWEAlg) String() string               { return jweAlgs.Wire(a) }
func (a JWEAlg) Name() string                 { return jweAlgs.Name(a) }
func (a JWEAlg) MarshalJSON() ([]byte, error) { return jweAlgs.MarshalJSON(a) }
func (a *JWEAlg) UnmarshalJSON(b []byte) error {
	return jweAlgs.UnmarshalJSON(b, a)
}

// JWEEnc is a JWE content encryption algorithm (RFC 7518 §5).
type JWEEnc int16

const (
	JWEEncA128CBCHS256 JWEEnc = 1
	JWEEncA192CBCHS384 JWEEnc = 2
	JWEEncA256CBCHS512 JWEEnc = 3
	JWEEncA128GCM      JWEEnc = 4
	JWEEncA192GCM      JWEEnc = 5
	JWEEncA256GCM      JWEEnc = 6
)

var jweEncs = enum.New("JWEEnc",
	enum.Entry[JWEEnc]{Value: JWEEncA128CBCHS256, Wire: "A128CBC-HS256", Name: "A128CBC_HS256"},
	enum.Entry[JWEEnc]{Value: JWEEncA192CBCHS384, Wire: "A192CBC-HS384", Name: "A192CBC_HS384"},
	enum.Entry[JWEEnc]{Value: JWEEncA256CBCHS512, Wire: "A256CBC-HS512", Name: "A256CBC_HS512"},
	enum.Entry[JWEEnc]{Value: JWEEncA128GCM, Wire: "A128GCM"},
	enum.Entry[JWEEnc]{Value: JWEEncA192GCM, Wire: "A192GCM"},
	enum.Entry[JWEEnc]{Value: JWEEncA256GCM, Wire: "A256GCM"},
)

// JWEEncs returns the lookup table for JWEEnc.
func JWEEncs() *enum.Set[JWEEnc] { return jweEncs }

// ParseJWEEnc resolves a canonical wire string.
func ParseJWEEnc(s string) (JWEEnc, error) { return jweEncs.FromString(s) }

func (e JWEEnc) Enum() *enum.Set[JWEEnc]      { return jweEncs }
func (e JWEEnc) Ordinal() int                 { return int(e) }
func (e JWEEnc) String() string               { return jweEncs.Wire(e) }
func (e JWEEnc) Name() string                 { return jweEncs.Name(e) }
func (e JWEEnc) MarshalJSON() ([]byte, error) { return jweEncs.MarshalJSON(e) }
func (e *JWEEnc) UnmarshalJSON(b []byte) error {
	return jweEncs.UnmarshalJSON(b, e)
}

// HashAlg is a hash algorithm named in provider configuration (e.g. for
// authorization_details hashing and verified claims digests).
type HashAlg int16

const (
	HashAlgSHA256 HashAlg = 1
	HashAlgSHA384 HashAlg = 2
	HashAlgSHA512 HashAlg = 3
)

var hashAlgs = enum.New("HashAlg",
	enum.Entry[HashAlg]{Value: HashAlgSHA256, Wire: "SHA-256", Name: "SHA_256"},
	enum.Entry[HashAlg]{Value: HashAlgSHA384, Wire: "SHA-384", Name: "SHA_384"},
	enum.Entry[HashAlg]{Value: HashAlgSHA512, Wire: "SHA-512", Name: "SHA_512"},
)

var cryptoHashes = map[HashAlg]crypto.Hash{
	HashAlgSHA256: crypto.SHA256,
	HashAlgSHA384: crypto.SHA384,
	HashAlgSHA512: crypto.SHA512,
}

// HashAlgs returns the lookup table for HashAlg.
func HashAlgs() *enum.Set[HashAlg] { return hashAlgs }

// ParseHashAlg resolves a canonical wire string.
func ParseHashAlg(s string) (HashAlg, error) { return hashAlgs.FromString(s) }

func (h HashAlg) Enum() *enum.Set[HashAlg]      { return hashAlgs }
func (h HashAlg) Ordinal() int                  { return int(h) }
func (h HashAlg) String() string                { return hashAlgs.Wire(h) }
func (h HashAlg) Name() string                  { return hashAlgs.Name(h) }
func (h HashAlg) MarshalJSON() ([]byte, error)  { return hashAlgs.MarshalJSON(h) }
func (h *HashAlg) UnmarshalJSON(b []byte) error { return hashAlgs.UnmarshalJSON(b, h) }

// Hash returns the crypto.Hash identifier, or 0 for an undeclared value.
func (h HashAlg) Hash() crypto.Hash {
	return cryptoHashes[h]
}
