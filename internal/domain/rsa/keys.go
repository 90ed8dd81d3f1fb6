package rsa

import (
	"errors"
	"math/big"
)

// PublicKey is the public half of an RSA key pair: the modulus n, the
// encryption exponent and the signature-verification exponent.
type PublicKey struct {
	N        *big.Int // modulus, bounds the domain [0, n) of plaintext and ciphertext integers
	EEncrypt *big.Int // public encryption exponent
	ESign    *big.Int // public signature-verification exponent
}

// NewPublicKey validates and constructs a PublicKey. All three values must be positive.
func NewPublicKey(n, eEncrypt, eSign *big.Int) (*PublicKey, error) {
	if n == nil || eEncrypt == nil || eSign == nil {
		return nil, errors.New("public key: nil component")
	}
	if n.Sign() <= 0 || eEncrypt.Sign() <= 0 || eSign.Sign() <= 0 {
		return nil, errors.New("public key: components must be positive")
	}
	return &PublicKey{
		N:        new(big.Int).Set(n),
		EEncrypt: new(big.Int).Set(eEncrypt),
		ESign:    new(big.Int).Set(eSign),
	}, nil
}

// ByteLength returns the length in bytes of the modulus n.
func (k *PublicKey) ByteLength() int {
	return (k.N.BitLen() + 7) / 8
}

// PrivateKey is the private half of an RSA key pair: the composite modulus, the
// totient-like reduction value t = lcm(p-1, q-1), the decryption exponent and
// the signing exponent. The central invariant dEncrypt*eEncrypt == 1 (mod t)
// (and likewise for the signing pair) is established at generation time via
// modular inversion and is never re-validated on use.
type PrivateKey struct {
	M        *CompositeModulus
	T        *big.Int // lcm(p-1, q-1)
	DEncrypt *big.Int // private decryption exponent
	DSign    *big.Int // private signing exponent
}

// NewPrivateKey validates and constructs a PrivateKey. The modulus must be
// non-nil and t and both exponents must be positive.
func NewPrivateKey(m *CompositeModulus, t, dEncrypt, dSign *big.Int) (*PrivateKey, error) {
	if m == nil {
		return nil, errors.New("private key: nil modulus")
	}
	if t == nil || dEncrypt == nil || dSign == nil {
		return nil, errors.New("private key: nil component")
	}
	if t.Sign() <= 0 || dEncrypt.Sign() <= 0 || dSign.Sign() <= 0 {
		return nil, errors.New("private key: components must be positive")
	}
	return &PrivateKey{
		M:        m,
		T:        new(big.Int).Set(t),
		DEncrypt: new(big.Int).Set(dEncrypt),
		DSign:    new(big.Int).Set(dSign),
	}, nil
}

// ByteLength returns the length in bytes of the modulus n.
func (k *PrivateKey) ByteLength() int {
	return k.M.ByteLength()
}

// KeyPair pairs a public key with its complementary private key.
type KeyPair struct {
	Public  *PublicKey
	Private *PrivateKey
}

// NewKeyPair validates that the two halves share the same modulus and pairs them.
func NewKeyPair(public *PublicKey, private *PrivateKey) (*KeyPair, error) {
	if public == nil || private == nil {
		return nil, errors.New("key pair: nil key")
	}
	if public.N.Cmp(private.M.N) != 0 {
		return nil, errors.New("key pair: public and private moduli differ")
	}
	return &KeyPair{Public: public, Private: private}, nil
}
