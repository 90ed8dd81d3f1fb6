package cryptography

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/SlightlyLoony/rsa-vault/internal/domain/rsa"
)

// Modulus bit-length limits and retry budgets for key generation.
const (
	// MinModulusBits is the smallest modulus bit length the generator accepts.
	MinModulusBits = 1000
	// MaxModulusBits is the largest modulus bit length the generator accepts.
	MaxModulusBits = 20000

	// DefaultEncryptExponent is the default public encryption exponent.
	DefaultEncryptExponent = 65537
	// DefaultSignExponent is the default public signature-verification exponent.
	DefaultSignExponent = 65539

	// minPublicExponent and maxPublicExponent bound the accepted public exponents.
	minPublicExponent = 3
	maxPublicExponent = 99999

	// millerRabinRounds gives a primality certainty of 1 - 2^-100.
	millerRabinRounds = 100

	// keyAssemblyAttempts bounds the outer draw-p-and-q loop.
	keyAssemblyAttempts = 100

	// primeAttemptsPerBit scales the candidate budget of a single prime search.
	primeAttemptsPerBit = 100
)

// Generation-exhaustion failure classes. Both are recoverable: the caller may
// retry with different parameters.
var (
	// ErrPrimeSearchExhausted is returned when a prime search runs out of candidates.
	ErrPrimeSearchExhausted = errors.New("rsa generator: prime search attempts exhausted")
	// ErrKeyAssemblyExhausted is returned when the outer key-assembly loop runs out of attempts.
	ErrKeyAssemblyExhausted = errors.New("rsa generator: key assembly attempts exhausted")
)

var bigOne = big.NewInt(1)

// GenerateKeyPair searches for two suitable primes and assembles a complete
// RSA key pair with separate encryption and signing exponent pairs.
//
// Validation failures (insane limits, out-of-range or even or equal or
// non-coprime exponents) are reported before any prime-search work happens.
// Prime search and key assembly are probabilistic and bounded: a single draw
// guarantees neither primality of the candidates nor invertibility of the
// exponents mod t, so the loops retry up to their budgets and report
// exhaustion instead of looping forever.
func GenerateKeyPair(random io.Reader, bits int, eEncrypt, eSign int64, loLimit, hiLimit int) (*rsa.KeyPair, error) {
	if random == nil {
		panic("cryptography: GenerateKeyPair called with nil randomness source")
	}

	if loLimit > hiLimit {
		return nil, fmt.Errorf("rsa generator: bit length limits are inverted (%d > %d)", loLimit, hiLimit)
	}
	if loLimit < MinModulusBits {
		return nil, fmt.Errorf("rsa generator: lower bit length limit %d is below the minimum %d", loLimit, MinModulusBits)
	}
	if hiLimit > MaxModulusBits {
		return nil, fmt.Errorf("rsa generator: upper bit length limit %d is above the maximum %d", hiLimit, MaxModulusBits)
	}
	if bits < loLimit || bits > hiLimit {
		return nil, fmt.Errorf("rsa generator: modulus bit length %d is outside [%d, %d]", bits, loLimit, hiLimit)
	}
	for _, e := range []int64{eEncrypt, eSign} {
		if e < minPublicExponent || e > maxPublicExponent {
			return nil, fmt.Errorf("rsa generator: public exponent %d is outside [%d, %d]", e, minPublicExponent, maxPublicExponent)
		}
		if e%2 == 0 {
			return nil, fmt.Errorf("rsa generator: public exponent %d is even", e)
		}
	}
	if eEncrypt == eSign {
		return nil, fmt.Errorf("rsa generator: encryption and signing exponents must differ")
	}

	bigEEncrypt := big.NewInt(eEncrypt)
	bigESign := big.NewInt(eSign)
	if gcd := new(big.Int).GCD(nil, nil, bigEEncrypt, bigESign); gcd.Cmp(bigOne) != 0 {
		return nil, fmt.Errorf("rsa generator: public exponents %d and %d are not coprime", eEncrypt, eSign)
	}

	for attempt := 0; attempt < keyAssemblyAttempts; attempt++ {
		p, err := generatePrime(random, bits/2, bigEEncrypt, bigESign)
		if err != nil {
			return nil, err
		}
		// the second factor carries the leftover bit of an odd modulus length,
		// which two floor-half draws could never reach
		q, err := generatePrime(random, bits-bits/2, bigEEncrypt, bigESign)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}

		modulus, err := rsa.NewCompositeModulus(p, q)
		if err != nil {
			continue
		}
		// random sampling may leave the high bit of a factor unset
		if modulus.N.BitLen() != bits {
			continue
		}

		pMinus1 := new(big.Int).Sub(p, bigOne)
		qMinus1 := new(big.Int).Sub(q, bigOne)
		t := lcm(pMinus1, qMinus1)

		dEncrypt := new(big.Int).ModInverse(bigEEncrypt, t)
		if dEncrypt == nil {
			continue
		}
		dSign := new(big.Int).ModInverse(bigESign, t)
		if dSign == nil {
			continue
		}

		public, err := rsa.NewPublicKey(modulus.N, bigEEncrypt, bigESign)
		if err != nil {
			return nil, err
		}
		private, err := rsa.NewPrivateKey(modulus, t, dEncrypt, dSign)
		if err != nil {
			return nil, err
		}
		return rsa.NewKeyPair(public, private)
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrKeyAssemblyExhausted, keyAssemblyAttempts)
}

// generatePrime draws random candidates of the given bit length until one is
// usable: not absurdly short, not congruent to 1 modulo either public
// exponent (which would make the matching private exponent uninvertible) and
// probably prime with certainty 1 - 2^-100.
func generatePrime(random io.Reader, bits int, e1, e2 *big.Int) (*big.Int, error) {
	maxAttempts := primeAttemptsPerBit * bits
	residue := new(big.Int)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate, err := randomBits(random, bits)
		if err != nil {
			return nil, fmt.Errorf("rsa generator: failed to draw prime candidate: %w", err)
		}

		if candidate.BitLen() < bits/8 {
			continue
		}
		if residue.Mod(candidate, e1); residue.Cmp(bigOne) == 0 {
			continue
		}
		if residue.Mod(candidate, e2); residue.Cmp(bigOne) == 0 {
			continue
		}
		if !candidate.ProbablyPrime(millerRabinRounds) {
			continue
		}
		return candidate, nil
	}

	return nil, fmt.Errorf("%w after %d attempts for %d bits", ErrPrimeSearchExhausted, maxAttempts, bits)
}

// randomBits draws a uniformly distributed non-negative integer of at most
// the given bit length.
func randomBits(random io.Reader, bits int) (*big.Int, error) {
	raw := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(random, raw); err != nil {
		return nil, err
	}
	if excess := len(raw)*8 - bits; excess > 0 {
		raw[0] &= 0xFF >> excess
	}
	return new(big.Int).SetBytes(raw), nil
}

// lcm returns the least common multiple of two positive integers.
func lcm(a, b *big.Int) *big.Int {
	gcd := new(big.Int).GCD(nil, nil, a, b)
	result := new(big.Int).Div(a, gcd)
	return result.Mul(result, b)
}
