package merklekv

import (
	"errors"

	"github.com/chronicle-sys/chronicle-go/merkletree"
)

// ErrOrdinalNotFound is returned by GetAt when no entry was written at
// the given ordinal.
var ErrOrdinalNotFound = errors.New("[merklekv] ordinal not found")

// ErrKeyNotFound is returned by Get when a key has never been written.
var ErrKeyNotFound = errors.New("[merklekv] key not found")

// Store is an append-only key/value map whose writes are leaves of a
// merkletree.Tree. It keeps two auxiliary indexes in memory: index maps
// an ordinal (leaf position) back to the entry written there, and hist
// maps a key to every ordinal it was written at, oldest first.
type Store struct {
	tree  *merkletree.Tree
	index map[uint64]Entry
	hist  map[string][]uint64
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		tree:  merkletree.New(nil),
		index: make(map[uint64]Entry),
		hist:  make(map[string][]uint64),
	}
}

// Tree returns the underlying Merkle tree. Callers use it to read the
// current root digest or to generate incremental proofs between two
// states of the store.
func (s *Store) Tree() *merkletree.Tree {
	return s.tree
}

// Put appends a new entry for key, returning the ordinal (leaf index)
// it was written at. The ordinal is always the store's size just
// before the write: this is computed before calling Tree.Add, not
// after, so it never drifts by one relative to the leaf actually
// produced.
func (s *Store) Put(key, value []byte) (uint64, error) {
	ordinal := s.tree.Size()
	entry := Entry{
		Key:   append([]byte{}, key...),
		Value: append([]byte{}, value...),
	}
	newTree, err := s.tree.Add(encodeEntry(entry))
	if err != nil {
		return 0, err
	}
	s.tree = newTree
	s.index[ordinal] = entry
	k := string(key)
	s.hist[k] = append(s.hist[k], ordinal)
	return ordinal, nil
}

// Get returns the most recently written value for key, and the
// ordinal it was written at.
func (s *Store) Get(key []byte) ([]byte, uint64, error) {
	ords := s.hist[string(key)]
	if len(ords) == 0 {
		return nil, 0, ErrKeyNotFound
	}
	last := ords[len(ords)-1]
	e := s.index[last]
	return e.Value, last, nil
}

// GetAt returns the entry written at a given ordinal, regardless of
// whether later writes have since superseded its key.
func (s *Store) GetAt(ordinal uint64) (Entry, error) {
	e, ok := s.index[ordinal]
	if !ok {
		return Entry{}, ErrOrdinalNotFound
	}
	return e, nil
}

// History returns every ordinal key was written at, oldest first.
func (s *Store) History(key []byte) []uint64 {
	ords := s.hist[string(key)]
	out := make([]uint64, len(ords))
	copy(out, ords)
	return out
}

// Export returns every entry ever written, ordered by ordinal. A
// persistence collaborator can hand this list back to Rebuild to
// recover an identical Store, since the tree's structure is fully
// determined by the order blocks were appended in.
func (s *Store) Export() []Entry {
	out := make([]Entry, s.tree.Size())
	for ord, e := range s.index {
		out[ord] = e
	}
	return out
}

// Rebuild replays entries, in order, into a fresh Store. The resulting
// tree is digest-identical to the one the entries were originally
// written against, by the tree's construction/append isomorphism.
func Rebuild(entries []Entry) (*Store, error) {
	s := New()
	for _, e := range entries {
		if _, err := s.Put(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// ProveMembership returns a membership proof for the entry at ordinal,
// plus the leaf digest a verifier must check it against (since the
// store keeps the underlying leaf block, not just its digest).
func (s *Store) ProveMembership(ordinal uint64) (*merkletree.MembershipProof, merkletree.Digest, error) {
	e, err := s.GetAt(ordinal)
	if err != nil {
		return nil, merkletree.Digest{}, err
	}
	proof, err := s.tree.GenMembership(ordinal)
	if err != nil {
		return nil, merkletree.Digest{}, err
	}
	return proof, merkletree.LeafHash(encodeEntry(e)), nil
}
