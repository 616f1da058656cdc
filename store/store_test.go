package store

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/chronicle-sys/chronicle-go/history"
	"github.com/chronicle-sys/chronicle-go/merklekv"
	"github.com/chronicle-sys/chronicle-go/storage/kv/memkv"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	db := memkv.New()
	defer db.Close()
	s := Open(db)

	kvs := merklekv.New()
	for i, k := range []string{"a", "b", "c"} {
		if _, err := kvs.Put([]byte(k), []byte{byte(i)}); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.Save(kvs); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Tree().RootDigest() != kvs.Tree().RootDigest() {
		t.Fatal("loaded store has a different root than the saved one")
	}
	val, _, err := loaded.Get([]byte("b"))
	if err != nil || !bytes.Equal(val, []byte{1}) {
		t.Fatalf("loaded Get(b) = %q, %v, want [1]", val, err)
	}
}

func TestRangeAndAllEntries(t *testing.T) {
	db := memkv.New()
	defer db.Close()
	s := Open(db)

	kvs := merklekv.New()
	for i, k := range []string{"a", "b", "c", "d", "e"} {
		if _, err := kvs.Put([]byte(k), []byte{byte(i)}); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Save(kvs); err != nil {
		t.Fatal(err)
	}

	all, err := s.AllEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Fatalf("len(AllEntries()) = %d, want 5", len(all))
	}
	for i, e := range all {
		if !bytes.Equal(e.Value, []byte{byte(i)}) {
			t.Fatalf("AllEntries()[%d].Value = %v, want [%d]", i, e.Value, i)
		}
	}

	rng, err := s.RangeEntries(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(rng) != 2 {
		t.Fatalf("len(RangeEntries(1,3)) = %d, want 2", len(rng))
	}
	if !bytes.Equal(rng[0].Key, []byte("b")) || !bytes.Equal(rng[1].Key, []byte("c")) {
		t.Fatalf("RangeEntries(1,3) = %+v, want entries for b,c", rng)
	}
}

func TestLoadEmptyDatabase(t *testing.T) {
	db := memkv.New()
	defer db.Close()
	s := Open(db)

	loaded, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Tree().Size() != 0 {
		t.Fatalf("Size() = %d, want 0", loaded.Tree().Size())
	}
}

func TestSaveLoadChainRoundTrip(t *testing.T) {
	db := memkv.New()
	defer db.Close()
	s := Open(db)

	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	chain := history.NewChain(pub)
	kvs := merklekv.New()
	for _, k := range []string{"a", "b", "c"} {
		if _, err := kvs.Put([]byte(k), nil); err != nil {
			t.Fatal(err)
		}
		if _, err := chain.Append(priv, kvs.Tree()); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.SaveChain(chain); err != nil {
		t.Fatal(err)
	}

	roots, err := s.LoadAndVerifyChain(pub)
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 3 {
		t.Fatalf("len(roots) = %d, want 3", len(roots))
	}
	if roots[2].Size != 3 {
		t.Fatalf("roots[2].Size = %d, want 3", roots[2].Size)
	}
}
