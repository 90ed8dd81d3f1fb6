// Package rsa contains the RSA value types and the pure arithmetic that operates on them:
// the composite modulus with CRT-accelerated exponentiation, the public/private key pair,
// the four encrypt/decrypt/sign/verify primitives and the compact tagged-string key codec.
// Key material is validated once at construction and treated as immutable thereafter.
package rsa
