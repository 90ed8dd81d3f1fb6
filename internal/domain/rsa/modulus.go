package rsa

import (
	"errors"
	"math/big"
)

var bigOne = big.NewInt(1)

// CompositeModulus is an immutable modulus n = p*q together with the precomputed
// Garner factor q^-1 mod p used for CRT recombination. The constructor does NOT
// verify that p and q are prime or that they are the true factorization of n;
// that is the caller's responsibility (established at key generation or when
// reconstructing a private key from its serialized form).
type CompositeModulus struct {
	N *big.Int // product p*q
	P *big.Int // first prime factor
	Q *big.Int // second prime factor

	garner *big.Int // q^-1 mod p
}

// NewCompositeModulus builds a CompositeModulus from the two prime factors,
// computing the product and the Garner factor.
func NewCompositeModulus(p, q *big.Int) (*CompositeModulus, error) {
	if p == nil || q == nil {
		return nil, errors.New("composite modulus: nil prime factor")
	}
	if p.Sign() <= 0 || q.Sign() <= 0 {
		return nil, errors.New("composite modulus: prime factors must be positive")
	}
	if p.Cmp(q) == 0 {
		return nil, errors.New("composite modulus: prime factors must be distinct")
	}

	garner := new(big.Int).ModInverse(q, p)
	if garner == nil {
		return nil, errors.New("composite modulus: q is not invertible modulo p")
	}

	return &CompositeModulus{
		N:      new(big.Int).Mul(p, q),
		P:      new(big.Int).Set(p),
		Q:      new(big.Int).Set(q),
		garner: garner,
	}, nil
}

// ExpMod computes x^exp mod n without a full-width exponentiation. The exponent
// is reduced mod p-1 and mod q-1, the two half-width results are combined with
// Garner's formula. Each half-width modexp costs roughly an eighth of the
// full-width one, so the whole operation runs about four times faster.
func (m *CompositeModulus) ExpMod(x, exp *big.Int) *big.Int {
	if x == nil || exp == nil {
		panic("rsa: ExpMod called with nil argument")
	}

	pMinus1 := new(big.Int).Sub(m.P, bigOne)
	qMinus1 := new(big.Int).Sub(m.Q, bigOne)

	pExp := new(big.Int).Mod(exp, pMinus1)
	qExp := new(big.Int).Mod(exp, qMinus1)

	a := new(big.Int).Exp(x, pExp, m.P)
	b := new(big.Int).Exp(x, qExp, m.Q)

	// Garner: result = (((a - b) mod p) * garner mod p) * q + b
	result := new(big.Int).Sub(a, b)
	result.Mod(result, m.P)
	result.Mul(result, m.garner)
	result.Mod(result, m.P)
	result.Mul(result, m.Q)
	result.Add(result, b)

	return result
}

// ByteLength returns the length in bytes of the modulus n.
func (m *CompositeModulus) ByteLength() int {
	return (m.N.BitLen() + 7) / 8
}
