package store

import (
	"encoding/binary"

	"github.com/chronicle-sys/chronicle-go/merklekv"
	"github.com/chronicle-sys/chronicle-go/storage/kv"
)

var entryPrefix = []byte("entry:")

var sizeKey = []byte("meta:size")

func entryKey(ordinal uint64) []byte {
	k := make([]byte, len(entryPrefix)+8)
	copy(k, entryPrefix)
	binary.BigEndian.PutUint64(k[len(entryPrefix):], ordinal)
	return k
}

// Store persists a merklekv.Store's entries to a kv.DB.
type Store struct {
	db kv.DB
}

// Open wraps an already-open kv.DB.
func Open(db kv.DB) *Store {
	return &Store{db: db}
}

// Save writes every entry of kvs to the database and records its
// size, overwriting whatever was previously saved. It is idempotent:
// saving the same store twice leaves the database unchanged.
func (s *Store) Save(kvs *merklekv.Store) error {
	entries := kvs.Export()
	b := s.db.NewBatch()
	for ord, e := range entries {
		b.Put(entryKey(uint64(ord)), merklekv.EncodeEntry(e))
	}
	var sizeBuf [8]byte
	binary.BigEndian.PutUint64(sizeBuf[:], uint64(len(entries)))
	b.Put(sizeKey, sizeBuf[:])
	return s.db.Write(b)
}

// Load reconstructs a merklekv.Store from whatever was last Saved.
// It returns an empty Store if nothing has ever been saved.
func (s *Store) Load() (*merklekv.Store, error) {
	sizeBytes, err := s.db.Get(sizeKey)
	if err != nil {
		if err == s.db.ErrNotFound() {
			return merklekv.New(), nil
		}
		return nil, err
	}
	size := binary.BigEndian.Uint64(sizeBytes)

	entries := make([]merklekv.Entry, size)
	for ord := uint64(0); ord < size; ord++ {
		block, err := s.db.Get(entryKey(ord))
		if err != nil {
			return nil, err
		}
		e, err := merklekv.DecodeEntry(block)
		if err != nil {
			return nil, err
		}
		entries[ord] = e
	}
	return merklekv.Rebuild(entries)
}

// RangeEntries returns every entry whose ordinal lies in [lo, hi), read
// off the database with a single ranged scan instead of a Get per
// ordinal. It is meant for callers auditing or listing a slice of the
// log without reconstructing a whole merklekv.Store.
func (s *Store) RangeEntries(lo, hi uint64) ([]merklekv.Entry, error) {
	return s.scanEntries(&kv.Range{Start: entryKey(lo), Limit: entryKey(hi)})
}

// AllEntries returns every entry ever saved, in ordinal order, by
// scanning every key under the entry: prefix.
func (s *Store) AllEntries() ([]merklekv.Entry, error) {
	return s.scanEntries(kv.BytesPrefix(entryPrefix))
}

func (s *Store) scanEntries(rg *kv.Range) ([]merklekv.Entry, error) {
	it := s.db.NewIterator(rg)
	defer it.Release()

	var entries []merklekv.Entry
	for ok := it.First(); ok; ok = it.Next() {
		e, err := merklekv.DecodeEntry(it.Value())
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, it.Error()
}
