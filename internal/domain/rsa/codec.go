package rsa

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"
)

// Keys are serialized as compact ASCII for storage and transmission:
//
//	public:  n:<base64>;eE:<base64>;eS:<base64>;
//	private: p:<base64>;q:<base64>;dE:<base64>;dS:<base64>;
//
// Only the minimal generating set is persisted for the private key; n, t and
// the Garner factor are recomputed from p and q on parse. The base64 variant
// is unpadded RFC 4648 with strict decoding: character-set membership is
// enforced, a length of 1 mod 4 is rejected, and non-zero trailing bits are
// an error rather than silently truncated.
var keyEncoding = base64.RawStdEncoding.Strict()

// EncodePublicKey serializes a public key to its tagged-string form.
func EncodePublicKey(k *PublicKey) string {
	if k == nil {
		panic("rsa: EncodePublicKey called with nil key")
	}
	var b strings.Builder
	writeField(&b, "n", k.N)
	writeField(&b, "eE", k.EEncrypt)
	writeField(&b, "eS", k.ESign)
	return b.String()
}

// EncodePrivateKey serializes a private key to its tagged-string form.
func EncodePrivateKey(k *PrivateKey) string {
	if k == nil {
		panic("rsa: EncodePrivateKey called with nil key")
	}
	var b strings.Builder
	writeField(&b, "p", k.M.P)
	writeField(&b, "q", k.M.Q)
	writeField(&b, "dE", k.DEncrypt)
	writeField(&b, "dS", k.DSign)
	return b.String()
}

// ParsePublicKey parses the tagged-string form of a public key. Malformed
// input yields a descriptive error, never a panic.
func ParsePublicKey(s string) (*PublicKey, error) {
	fields, err := parseFields(s, []string{"n", "eE", "eS"})
	if err != nil {
		return nil, fmt.Errorf("not a public key: %w", err)
	}
	key, err := NewPublicKey(fields["n"], fields["eE"], fields["eS"])
	if err != nil {
		return nil, fmt.Errorf("not a public key: %w", err)
	}
	return key, nil
}

// ParsePrivateKey parses the tagged-string form of a private key, recomputing
// n, the Garner factor and t = lcm(p-1, q-1) from the persisted factors.
func ParsePrivateKey(s string) (*PrivateKey, error) {
	fields, err := parseFields(s, []string{"p", "q", "dE", "dS"})
	if err != nil {
		return nil, fmt.Errorf("not a private key: %w", err)
	}

	m, err := NewCompositeModulus(fields["p"], fields["q"])
	if err != nil {
		return nil, fmt.Errorf("not a private key: %w", err)
	}

	pMinus1 := new(big.Int).Sub(fields["p"], bigOne)
	qMinus1 := new(big.Int).Sub(fields["q"], bigOne)
	t := lcm(pMinus1, qMinus1)

	key, err := NewPrivateKey(m, t, fields["dE"], fields["dS"])
	if err != nil {
		return nil, fmt.Errorf("not a private key: %w", err)
	}
	return key, nil
}

func writeField(b *strings.Builder, tag string, value *big.Int) {
	b.WriteString(tag)
	b.WriteByte(':')
	b.WriteString(keyEncoding.EncodeToString(value.Bytes()))
	b.WriteByte(';')
}

// parseFields splits a tagged string into its big-integer fields and checks
// that exactly the wanted tags are present.
func parseFields(s string, want []string) (map[string]*big.Int, error) {
	fields := make(map[string]*big.Int)

	for _, part := range strings.Split(s, ";") {
		if part == "" {
			continue
		}
		tag, encoded, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("field %q has no tag separator", part)
		}
		if _, dup := fields[tag]; dup {
			return nil, fmt.Errorf("duplicate field %q", tag)
		}
		raw, err := keyEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("field %q is not valid base64: %w", tag, err)
		}
		fields[tag] = new(big.Int).SetBytes(raw)
	}

	for _, tag := range want {
		if _, ok := fields[tag]; !ok {
			return nil, fmt.Errorf("missing field %q", tag)
		}
	}
	if len(fields) != len(want) {
		return nil, fmt.Errorf("unexpected extra fields")
	}

	return fields, nil
}

// lcm returns the least common multiple of two positive integers.
func lcm(a, b *big.Int) *big.Int {
	gcd := new(big.Int).GCD(nil, nil, a, b)
	result := new(big.Int).Div(a, gcd)
	return result.Mul(result, b)
}
