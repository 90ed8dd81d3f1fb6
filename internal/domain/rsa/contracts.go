package rsa

// Processor handles the complete RSA operations built on top of the key types:
// key-pair generation, OAEP encryption/decryption and hash-then-sign signatures.
// All operations are synchronous and pure apart from the randomness source.
type Processor interface {
	// GenerateKeys generates an RSA key pair with the specified modulus bit size.
	GenerateKeys(bits int) (*KeyPair, error)

	// Encrypt encrypts a plaintext with RSAES-OAEP under the given label using
	// the public key. The plaintext must be short enough to fit the padding.
	Encrypt(plainText, label []byte, publicKey *PublicKey) ([]byte, error)

	// Decrypt decrypts an OAEP ciphertext using the private key. The label must
	// match the one used at encryption time.
	Decrypt(cipherText, label []byte, privateKey *PrivateKey) ([]byte, error)

	// Sign hashes the data and signs the digest with the private signing exponent.
	Sign(data []byte, privateKey *PrivateKey) ([]byte, error)

	// Verify checks a signature produced by Sign against the public key.
	// It returns true if the signature is valid, false otherwise.
	Verify(data, signature []byte, publicKey *PublicKey) (bool, error)

	// SavePrivateKeyToFile saves the private key in its tagged-string encoding.
	SavePrivateKeyToFile(privateKey *PrivateKey, filename string) error

	// SavePublicKeyToFile saves the public key in its tagged-string encoding.
	SavePublicKeyToFile(publicKey *PublicKey, filename string) error

	// ReadPrivateKey reads a private key from its tagged-string encoding.
	ReadPrivateKey(privateKeyPath string) (*PrivateKey, error)

	// ReadPublicKey reads a public key from its tagged-string encoding.
	ReadPublicKey(publicKeyPath string) (*PublicKey, error)
}
