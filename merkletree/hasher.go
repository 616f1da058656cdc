package merkletree

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashSizeByte is the size, in bytes, of a digest produced by this
// package's hash function.
const HashSizeByte = sha256.Size

const (
	leafPrefix = 0x00
	nodePrefix = 0x01
)

// Digest is a fixed-width SHA-256 output. Its external form (used in
// proofs) is lowercase hex of length 64.
type Digest [HashSizeByte]byte

// String returns the lowercase hex encoding of d.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Bytes returns a copy of d's underlying bytes.
func (d Digest) Bytes() []byte {
	b := make([]byte, HashSizeByte)
	copy(b, d[:])
	return b
}

// DigestFromHex decodes a lowercase hex digest as produced by String.
func DigestFromHex(s string) (Digest, error) {
	var d Digest
	b, err := hex.DecodeString(s)
	if err != nil {
		return d, err
	}
	if len(b) != HashSizeByte {
		return d, ErrBadDigestLength
	}
	copy(d[:], b)
	return d, nil
}

// DigestFromBytes copies a raw HashSizeByte-length slice into a
// Digest, for collaborators that store digests as raw bytes rather
// than hex (e.g. a persistence layer).
func DigestFromBytes(b []byte) (Digest, error) {
	var d Digest
	if len(b) != HashSizeByte {
		return d, ErrBadDigestLength
	}
	copy(d[:], b)
	return d, nil
}

func digestFromSum(sum [HashSizeByte]byte) Digest {
	return Digest(sum)
}

// leafHash computes H(0x00 || data), the domain-separated hash of a
// leaf's data.
func leafHash(data []byte) Digest {
	h := sha256.New()
	h.Write([]byte{leafPrefix})
	h.Write(data)
	var sum [HashSizeByte]byte
	copy(sum[:], h.Sum(nil))
	return digestFromSum(sum)
}

// nodeHash computes H(0x01 || left || right), the domain-separated hash
// of an interior node from its two children's digests.
func nodeHash(left, right Digest) Digest {
	h := sha256.New()
	h.Write([]byte{nodePrefix})
	h.Write(left[:])
	h.Write(right[:])
	var sum [HashSizeByte]byte
	copy(sum[:], h.Sum(nil))
	return digestFromSum(sum)
}

// LeafHash is the exported form of leafHash, used by callers that need
// to compute the expected digest of a block before calling
// VerifyMembership.
func LeafHash(data []byte) Digest {
	return leafHash(data)
}

// NodeHash is the exported form of nodeHash.
func NodeHash(left, right Digest) Digest {
	return nodeHash(left, right)
}

// emptyLeafDigest is leafHash(""), the digest every default (padding)
// leaf carries.
var emptyLeafDigest = leafHash(nil)

// defaultDigests[k] is the digest of a fully-default subtree of depth k:
// defaultDigests[0] = leafHash(""), defaultDigests[k] = nodeHash(defaultDigests[k-1], defaultDigests[k-1]).
// Memoized lazily since the depths used in practice are small (bounded
// by the tree's height) and shared across every tree and proof.
var defaultDigests = []Digest{emptyLeafDigest}

// defaultDigest returns the digest of a subtree of depth k made
// entirely of default leaves.
func defaultDigest(k int) Digest {
	for len(defaultDigests) <= k {
		prev := defaultDigests[len(defaultDigests)-1]
		defaultDigests = append(defaultDigests, nodeHash(prev, prev))
	}
	return defaultDigests[k]
}
