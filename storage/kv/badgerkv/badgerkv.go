// Package badgerkv implements the kv interface using Badger, an
// embedded LSM-tree key-value store. It is a second storage backend
// alongside leveldbkv, useful when the value-log-based GC and
// transactional iterators of Badger are preferable to leveldb's.
package badgerkv

import (
	"fmt"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/chronicle-sys/chronicle-go/storage/kv"
)

type badgerkv struct {
	db *badger.DB
}

// OpenDB opens (and creates, if missing) a Badger database at path,
// with synchronous writes enabled so a completed Put is durable before
// it returns.
func OpenDB(path string) (kv.DB, error) {
	opts := badger.DefaultOptions(path).WithSyncWrites(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badgerkv: open %s: %w", path, err)
	}
	return Wrap(db), nil
}

// Wrap uses an already-open Badger database as a kv.DB.
func Wrap(db *badger.DB) kv.DB {
	return &badgerkv{db: db}
}

func (b *badgerkv) Get(key []byte) ([]byte, error) {
	var out []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			out = append([]byte{}, val...)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (b *badgerkv) Put(key, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (b *badgerkv) Delete(key []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (b *badgerkv) NewBatch() kv.Batch {
	return &batch{}
}

func (b *badgerkv) Write(bat kv.Batch) error {
	bb, ok := bat.(*batch)
	if !ok {
		return fmt.Errorf("badgerkv: expected *batch, got %T", bat)
	}
	wb := b.db.NewWriteBatch()
	defer wb.Cancel()
	for _, op := range bb.ops {
		var err error
		if op.delete {
			err = wb.Delete(op.key)
		} else {
			err = wb.Set(op.key, op.value)
		}
		if err != nil {
			return err
		}
	}
	return wb.Flush()
}

func (b *badgerkv) NewIterator(rg *kv.Range) kv.Iterator {
	txn := b.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	if rg != nil {
		opts.Prefix = nil
	}
	it := txn.NewIterator(opts)
	return &iterator{txn: txn, it: it, rg: rg}
}

func (b *badgerkv) Close() error {
	return b.db.Close()
}

func (b *badgerkv) ErrNotFound() error {
	return badger.ErrKeyNotFound
}

type op struct {
	key, value []byte
	delete     bool
}

// batch accumulates writes under kv.Batch's Reset/Put/Delete contract;
// it is applied atomically by badgerkv.Write via a badger.WriteBatch.
type batch struct {
	ops []op
}

func (bb *batch) Reset() { bb.ops = bb.ops[:0] }

func (bb *batch) Put(key, value []byte) {
	bb.ops = append(bb.ops, op{key: append([]byte{}, key...), value: append([]byte{}, value...)})
}

func (bb *batch) Delete(key []byte) {
	bb.ops = append(bb.ops, op{key: append([]byte{}, key...), delete: true})
}

// iterator adapts badger's transaction-scoped iterator to kv.Iterator,
// which has no notion of an owning transaction: Release closes both.
type iterator struct {
	txn *badger.Txn
	it  *badger.Iterator
	rg  *kv.Range
	cur *badger.Item
	err error
}

func inRange(rg *kv.Range, key []byte) bool {
	if rg == nil {
		return true
	}
	if rg.Start != nil && string(key) < string(rg.Start) {
		return false
	}
	if rg.Limit != nil && string(key) >= string(rg.Limit) {
		return false
	}
	return true
}

func (it *iterator) seekFirst() bool {
	start := []byte(nil)
	if it.rg != nil {
		start = it.rg.Start
	}
	it.it.Seek(start)
	return it.advanceToInRange()
}

func (it *iterator) advanceToInRange() bool {
	for it.it.Valid() {
		item := it.it.Item()
		if !inRange(it.rg, item.Key()) {
			return false
		}
		it.cur = item
		return true
	}
	it.cur = nil
	return false
}

func (it *iterator) First() bool { return it.seekFirst() }

func (it *iterator) Next() bool {
	it.it.Next()
	return it.advanceToInRange()
}

func (it *iterator) Last() bool {
	// Badger's iterator is forward-only; emulate Last by scanning to
	// the end of the range and remembering the last item seen.
	if !it.seekFirst() {
		return false
	}
	last := it.cur
	for it.Next() {
		last = it.cur
	}
	it.cur = last
	return it.cur != nil
}

func (it *iterator) Key() []byte {
	if it.cur == nil {
		return nil
	}
	return it.cur.KeyCopy(nil)
}

func (it *iterator) Value() []byte {
	if it.cur == nil {
		return nil
	}
	v, err := it.cur.ValueCopy(nil)
	if err != nil {
		it.err = err
		return nil
	}
	return v
}

func (it *iterator) Release() {
	it.it.Close()
	it.txn.Discard()
}

func (it *iterator) Error() error { return it.err }
