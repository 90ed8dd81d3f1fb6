package rsa

import (
	"errors"
	"math/big"
)

// ErrOutOfRange is returned when a plaintext or ciphertext integer falls
// outside the domain [0, n) of the key's modulus.
var ErrOutOfRange = errors.New("rsa: value out of range for modulus")

// EncryptInt computes plaintext^eEncrypt mod n. The plaintext must lie in [0, n).
func EncryptInt(pub *PublicKey, plaintext *big.Int) (*big.Int, error) {
	if pub == nil || plaintext == nil {
		panic("rsa: EncryptInt called with nil argument")
	}
	if plaintext.Sign() < 0 || plaintext.Cmp(pub.N) >= 0 {
		return nil, ErrOutOfRange
	}
	return new(big.Int).Exp(plaintext, pub.EEncrypt, pub.N), nil
}

// DecryptInt computes ciphertext^dEncrypt mod n using CRT acceleration.
// The ciphertext must lie in [0, n).
func DecryptInt(priv *PrivateKey, ciphertext *big.Int) (*big.Int, error) {
	if priv == nil || ciphertext == nil {
		panic("rsa: DecryptInt called with nil argument")
	}
	if ciphertext.Sign() < 0 || ciphertext.Cmp(priv.M.N) >= 0 {
		return nil, ErrOutOfRange
	}
	return priv.M.ExpMod(ciphertext, priv.DEncrypt), nil
}

// SignInt computes plaintext^dSign mod n, the signing direction, using CRT
// acceleration. The plaintext must lie in [0, n).
func SignInt(priv *PrivateKey, plaintext *big.Int) (*big.Int, error) {
	if priv == nil || plaintext == nil {
		panic("rsa: SignInt called with nil argument")
	}
	if plaintext.Sign() < 0 || plaintext.Cmp(priv.M.N) >= 0 {
		return nil, ErrOutOfRange
	}
	return priv.M.ExpMod(plaintext, priv.DSign), nil
}

// VerifyInt computes signature^eSign mod n, the verification direction.
// The signature must lie in [0, n).
func VerifyInt(pub *PublicKey, signature *big.Int) (*big.Int, error) {
	if pub == nil || signature == nil {
		panic("rsa: VerifyInt called with nil argument")
	}
	if signature.Sign() < 0 || signature.Cmp(pub.N) >= 0 {
		return nil, ErrOutOfRange
	}
	return new(big.Int).Exp(signature, pub.ESign, pub.N), nil
}

// EncryptBytes is the byte-array overload of EncryptInt. Input and output are
// big-endian; the output is left-padded to the modulus byte length so the
// ciphertext length is stable.
func EncryptBytes(pub *PublicKey, plaintext []byte) ([]byte, error) {
	c, err := EncryptInt(pub, new(big.Int).SetBytes(plaintext))
	if err != nil {
		return nil, err
	}
	return leftPad(c.Bytes(), pub.ByteLength()), nil
}

// DecryptBytes is the byte-array overload of DecryptInt. The output is
// left-padded to the modulus byte length, which preserves the leading zero
// byte of an OAEP-padded message.
func DecryptBytes(priv *PrivateKey, ciphertext []byte) ([]byte, error) {
	m, err := DecryptInt(priv, new(big.Int).SetBytes(ciphertext))
	if err != nil {
		return nil, err
	}
	return leftPad(m.Bytes(), priv.ByteLength()), nil
}

// SignBytes is the byte-array overload of SignInt.
func SignBytes(priv *PrivateKey, plaintext []byte) ([]byte, error) {
	s, err := SignInt(priv, new(big.Int).SetBytes(plaintext))
	if err != nil {
		return nil, err
	}
	return leftPad(s.Bytes(), priv.ByteLength()), nil
}

// VerifyBytes is the byte-array overload of VerifyInt.
func VerifyBytes(pub *PublicKey, signature []byte) ([]byte, error) {
	m, err := VerifyInt(pub, new(big.Int).SetBytes(signature))
	if err != nil {
		return nil, err
	}
	return leftPad(m.Bytes(), pub.ByteLength()), nil
}

// leftPad copies src to the end of a fresh buffer of the given size, padding
// the front with zero bytes.
func leftPad(src []byte, size int) []byte {
	if len(src) >= size {
		return src
	}
	dst := make([]byte, size)
	copy(dst[size-len(src):], src)
	return dst
}
