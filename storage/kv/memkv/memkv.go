// Package memkv implements the kv interface with a plain in-memory
// sorted map. It backs unit tests that need a kv.DB without paying for
// an on-disk engine.
package memkv

import (
	"errors"
	"sort"
	"sync"

	"github.com/chronicle-sys/chronicle-go/storage/kv"
)

var errNotFound = errors.New("[memkv] key not found")

type memkv struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New returns an empty, ready-to-use kv.DB.
func New() kv.DB {
	return &memkv{data: make(map[string][]byte)}
}

func (db *memkv) Get(key []byte) ([]byte, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	v, ok := db.data[string(key)]
	if !ok {
		return nil, errNotFound
	}
	return append([]byte{}, v...), nil
}

func (db *memkv) Put(key, value []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.data[string(key)] = append([]byte{}, value...)
	return nil
}

func (db *memkv) Delete(key []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	delete(db.data, string(key))
	return nil
}

func (db *memkv) NewBatch() kv.Batch {
	return &memBatch{}
}

func (db *memkv) Write(b kv.Batch) error {
	mb, ok := b.(*memBatch)
	if !ok {
		return errors.New("[memkv] unexpected batch type")
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, op := range mb.ops {
		if op.delete {
			delete(db.data, op.key)
		} else {
			db.data[op.key] = op.value
		}
	}
	return nil
}

func (db *memkv) NewIterator(rg *kv.Range) kv.Iterator {
	db.mu.RLock()
	defer db.mu.RUnlock()
	keys := make([]string, 0, len(db.data))
	for k := range db.data {
		if rg != nil {
			if rg.Start != nil && k < string(rg.Start) {
				continue
			}
			if rg.Limit != nil && k >= string(rg.Limit) {
				continue
			}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &memIterator{db: db, keys: keys, pos: -1}
}

func (db *memkv) Close() error { return nil }

func (db *memkv) ErrNotFound() error { return errNotFound }

type memOp struct {
	key    string
	value  []byte
	delete bool
}

type memBatch struct {
	ops []memOp
}

func (b *memBatch) Reset() { b.ops = b.ops[:0] }

func (b *memBatch) Put(key, value []byte) {
	b.ops = append(b.ops, memOp{key: string(key), value: append([]byte{}, value...)})
}

func (b *memBatch) Delete(key []byte) {
	b.ops = append(b.ops, memOp{key: string(key), delete: true})
}

type memIterator struct {
	db   *memkv
	keys []string
	pos  int
}

func (it *memIterator) First() bool {
	it.pos = 0
	return len(it.keys) > 0
}

func (it *memIterator) Next() bool {
	it.pos++
	return it.pos >= 0 && it.pos < len(it.keys)
}

func (it *memIterator) Last() bool {
	it.pos = len(it.keys) - 1
	return it.pos >= 0
}

func (it *memIterator) Key() []byte {
	if it.pos < 0 || it.pos >= len(it.keys) {
		return nil
	}
	return []byte(it.keys[it.pos])
}

func (it *memIterator) Value() []byte {
	if it.pos < 0 || it.pos >= len(it.keys) {
		return nil
	}
	it.db.mu.RLock()
	defer it.db.mu.RUnlock()
	return append([]byte{}, it.db.data[it.keys[it.pos]]...)
}

func (it *memIterator) Release() {}

func (it *memIterator) Error() error { return nil }
