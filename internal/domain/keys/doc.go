// Package keys defines the domain entities and service contracts for managing
// RSA key pairs: generation, metadata queries, stored key material and the
// cryptographic operations performed with stored keys.
package keys
