package memkv

import (
	"bytes"
	"testing"

	"github.com/chronicle-sys/chronicle-go/storage/kv"
)

func TestPutGetDelete(t *testing.T) {
	db := New()
	defer db.Close()

	if err := db.Put([]byte("a"), []byte("1")); err != nil {
		t.Fatal(err)
	}
	v, err := db.Get([]byte("a"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(v, []byte("1")) {
		t.Fatalf("Get = %q, want 1", v)
	}

	if err := db.Delete([]byte("a")); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Get([]byte("a")); err != db.ErrNotFound() {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestBatchWrite(t *testing.T) {
	db := New()
	defer db.Close()

	b := db.NewBatch()
	b.Put([]byte("x"), []byte("1"))
	b.Put([]byte("y"), []byte("2"))
	if err := db.Write(b); err != nil {
		t.Fatal(err)
	}

	for k, want := range map[string]string{"x": "1", "y": "2"} {
		v, err := db.Get([]byte(k))
		if err != nil || !bytes.Equal(v, []byte(want)) {
			t.Fatalf("Get(%q) = %q, %v, want %q", k, v, err, want)
		}
	}
}

func TestIteratorOrderAndRange(t *testing.T) {
	db := New()
	defer db.Close()
	for _, k := range []string{"a", "b", "c", "d"} {
		if err := db.Put([]byte(k), []byte(k)); err != nil {
			t.Fatal(err)
		}
	}

	it := db.NewIterator(kv.BytesPrefix([]byte("b")))
	defer it.Release()
	if !it.First() {
		t.Fatal("expected at least one key in range")
	}
	if string(it.Key()) != "b" {
		t.Fatalf("first key = %q, want b", it.Key())
	}
	if it.Next() {
		t.Fatalf("expected range to contain only 'b', got another key %q", it.Key())
	}
}
