package store

import (
	"encoding/binary"

	"golang.org/x/crypto/ed25519"

	"github.com/chronicle-sys/chronicle-go/history"
	"github.com/chronicle-sys/chronicle-go/merkletree"
	"github.com/chronicle-sys/chronicle-go/storage/kv"
)

var historyPrefix = []byte("history:")

var historyCountKey = []byte("meta:history_count")

func historyKey(ordinal uint64) []byte {
	k := make([]byte, len(historyPrefix)+8)
	copy(k, historyPrefix)
	binary.BigEndian.PutUint64(k[len(historyPrefix):], ordinal)
	return k
}

// encodeSignedRoot serializes a history.SignedRoot for storage: tree
// hash, size, previous size, previous signature hash and signature,
// each in a fixed-width or length-prefixed field.
func encodeSignedRoot(sr *history.SignedRoot) []byte {
	buf := make([]byte, 0, merkletree.HashSizeByte*2+8+8+4+len(sr.Signature))
	buf = append(buf, sr.TreeHash.Bytes()...)
	var sizeBuf [8]byte
	binary.BigEndian.PutUint64(sizeBuf[:], sr.Size)
	buf = append(buf, sizeBuf[:]...)
	binary.BigEndian.PutUint64(sizeBuf[:], sr.PrevSize)
	buf = append(buf, sizeBuf[:]...)
	buf = append(buf, sr.PrevSignatureHash.Bytes()...)
	var sigLen [4]byte
	binary.BigEndian.PutUint32(sigLen[:], uint32(len(sr.Signature)))
	buf = append(buf, sigLen[:]...)
	buf = append(buf, sr.Signature...)
	return buf
}

func decodeSignedRoot(b []byte) (*history.SignedRoot, error) {
	n := merkletree.HashSizeByte
	if len(b) < n*2+8+8+4 {
		return nil, kv.ErrorBadBufferLength
	}
	sr := &history.SignedRoot{}
	off := 0
	treeHash, err := merkletree.DigestFromBytes(b[off : off+n])
	if err != nil {
		return nil, err
	}
	sr.TreeHash = treeHash
	off += n
	sr.Size = binary.BigEndian.Uint64(b[off : off+8])
	off += 8
	sr.PrevSize = binary.BigEndian.Uint64(b[off : off+8])
	off += 8
	prevHash, err := merkletree.DigestFromBytes(b[off : off+n])
	if err != nil {
		return nil, err
	}
	sr.PrevSignatureHash = prevHash
	off += n
	sigLen := binary.BigEndian.Uint32(b[off : off+4])
	off += 4
	if len(b) != off+int(sigLen) {
		return nil, kv.ErrorBadBufferLength
	}
	sr.Signature = append([]byte{}, b[off:]...)
	return sr, nil
}

// SaveChain writes every root of c to the database.
func (s *Store) SaveChain(c *history.Chain) error {
	roots := c.Roots()
	b := s.db.NewBatch()
	for i, sr := range roots {
		b.Put(historyKey(uint64(i)), encodeSignedRoot(sr))
	}
	var countBuf [8]byte
	binary.BigEndian.PutUint64(countBuf[:], uint64(len(roots)))
	b.Put(historyCountKey, countBuf[:])
	return s.db.Write(b)
}

// LoadChain reconstructs a chain's roots from whatever was last saved,
// for verification against pub via history.VerifyChain.
func (s *Store) LoadChain() ([]*history.SignedRoot, error) {
	countBytes, err := s.db.Get(historyCountKey)
	if err != nil {
		if err == s.db.ErrNotFound() {
			return nil, nil
		}
		return nil, err
	}
	count := binary.BigEndian.Uint64(countBytes)

	roots := make([]*history.SignedRoot, count)
	for i := uint64(0); i < count; i++ {
		block, err := s.db.Get(historyKey(i))
		if err != nil {
			return nil, err
		}
		sr, err := decodeSignedRoot(block)
		if err != nil {
			return nil, err
		}
		roots[i] = sr
	}
	return roots, nil
}

// LoadAndVerifyChain is a convenience wrapper that loads the persisted
// roots and verifies them against pub in one call.
func (s *Store) LoadAndVerifyChain(pub ed25519.PublicKey) ([]*history.SignedRoot, error) {
	roots, err := s.LoadChain()
	if err != nil {
		return nil, err
	}
	if err := history.VerifyChain(pub, roots); err != nil {
		return nil, err
	}
	return roots, nil
}
