package cryptography

import (
	"encoding/binary"
	"hash"
)

// MGF1 expands a seed into a mask of exactly outputLength bytes, as specified
// in PKCS#1 v2.1: hash(seed || counter) for a 32-bit big-endian counter
// starting at zero, concatenating digests until enough bytes are available,
// then truncating. Deterministic and side-effect free; the hash is reset
// before and after use.
func MGF1(seed []byte, outputLength int, h hash.Hash) []byte {
	if h == nil {
		panic("cryptography: MGF1 called with nil hash")
	}
	if outputLength < 0 {
		panic("cryptography: MGF1 called with negative output length")
	}

	var counter [4]byte
	mask := make([]byte, 0, outputLength+h.Size())

	for i := uint32(0); len(mask) < outputLength; i++ {
		binary.BigEndian.PutUint32(counter[:], i)
		h.Reset()
		h.Write(seed)
		h.Write(counter[:])
		mask = h.Sum(mask)
	}
	h.Reset()

	return mask[:outputLength]
}

// xorBytes XORs src into dst in place. The slices must have equal length.
func xorBytes(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
