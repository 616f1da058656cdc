package history

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"golang.org/x/crypto/ed25519"

	"github.com/chronicle-sys/chronicle-go/merkletree"
)

// ErrBadSignature is returned when a SignedRoot's signature does not
// verify against the chain's public key.
var ErrBadSignature = errors.New("[history] bad signature")

// ErrBrokenChain is returned when a SignedRoot does not correctly
// extend the root before it.
var ErrBrokenChain = errors.New("[history] broken hash chain")

// SignedRoot is a signed checkpoint of a tree at a given size. Size is
// the number of leaves committed to by TreeHash. PrevSize and
// PrevSignatureHash are zero for the first root in a chain.
type SignedRoot struct {
	TreeHash          merkletree.Digest
	Size              uint64
	PrevSize          uint64
	PrevSignatureHash merkletree.Digest
	Signature         []byte
}

// signatureHash returns the chaining hash of sr's own signature: the
// next SignedRoot in the chain will carry this as PrevSignatureHash.
func signatureHash(sig []byte) merkletree.Digest {
	sum := sha256.Sum256(sig)
	return merkletree.Digest(sum)
}

// serialize produces the exact byte string that gets signed: the
// fields that determine a root's position and content in the chain,
// concatenated in a fixed order.
func (sr *SignedRoot) serialize() []byte {
	var buf []byte
	var sizeBuf [8]byte
	binary.BigEndian.PutUint64(sizeBuf[:], sr.Size)
	buf = append(buf, sizeBuf[:]...)
	binary.BigEndian.PutUint64(sizeBuf[:], sr.PrevSize)
	buf = append(buf, sizeBuf[:]...)
	buf = append(buf, sr.TreeHash.Bytes()...)
	buf = append(buf, sr.PrevSignatureHash.Bytes()...)
	return buf
}

// sign produces a new, signed SignedRoot for tree, extending prev (nil
// for the first root in a chain).
func sign(priv ed25519.PrivateKey, tree *merkletree.Tree, prev *SignedRoot) *SignedRoot {
	sr := &SignedRoot{
		TreeHash: tree.RootDigest(),
		Size:     tree.Size(),
	}
	if prev != nil {
		sr.PrevSize = prev.Size
		sr.PrevSignatureHash = signatureHash(prev.Signature)
	}
	sr.Signature = ed25519.Sign(priv, sr.serialize())
	return sr
}

// verify checks sr's signature and, if prev is non-nil, that sr
// correctly extends it.
func verify(pub ed25519.PublicKey, sr, prev *SignedRoot) error {
	if !ed25519.Verify(pub, sr.serialize(), sr.Signature) {
		return ErrBadSignature
	}
	if prev == nil {
		return nil
	}
	if sr.PrevSize != prev.Size || sr.Size <= prev.Size {
		return ErrBrokenChain
	}
	if sr.PrevSignatureHash != signatureHash(prev.Signature) {
		return ErrBrokenChain
	}
	return nil
}
