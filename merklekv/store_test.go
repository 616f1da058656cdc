package merklekv

import (
	"bytes"
	"testing"

	"github.com/chronicle-sys/chronicle-go/merkletree"
)

func TestPutGetRoundTrip(t *testing.T) {
	s := New()
	ord, err := s.Put([]byte("alice"), []byte("v1"))
	if err != nil {
		t.Fatal(err)
	}
	if ord != 0 {
		t.Fatalf("ordinal = %d, want 0", ord)
	}
	val, gotOrd, err := s.Get([]byte("alice"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(val, []byte("v1")) || gotOrd != 0 {
		t.Fatalf("Get = %q,%d, want v1,0", val, gotOrd)
	}
}

func TestGetReturnsLatestWrite(t *testing.T) {
	s := New()
	if _, err := s.Put([]byte("k"), []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Put([]byte("other"), []byte("x")); err != nil {
		t.Fatal(err)
	}
	ord2, err := s.Put([]byte("k"), []byte("v2"))
	if err != nil {
		t.Fatal(err)
	}

	val, gotOrd, err := s.Get([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(val, []byte("v2")) || gotOrd != ord2 {
		t.Fatalf("Get = %q,%d, want v2,%d", val, gotOrd, ord2)
	}

	hist := s.History([]byte("k"))
	if len(hist) != 2 || hist[0] != 0 || hist[1] != ord2 {
		t.Fatalf("History = %v, want [0 %d]", hist, ord2)
	}
}

func TestGetMissingKey(t *testing.T) {
	s := New()
	if _, _, err := s.Get([]byte("nope")); err != ErrKeyNotFound {
		t.Fatalf("err = %v, want ErrKeyNotFound", err)
	}
}

func TestProveMembershipAgainstCurrentRoot(t *testing.T) {
	s := New()
	ords := make([]uint64, 0, 5)
	for i, k := range []string{"a", "b", "c", "d", "e"} {
		ord, err := s.Put([]byte(k), []byte{byte(i)})
		if err != nil {
			t.Fatal(err)
		}
		ords = append(ords, ord)
	}
	root := s.Tree().RootDigest()
	for _, ord := range ords {
		proof, leafDigest, err := s.ProveMembership(ord)
		if err != nil {
			t.Fatal(err)
		}
		if !merkletree.VerifyMembership(proof, root, ord, leafDigest) {
			t.Fatalf("membership proof for ordinal %d failed to verify", ord)
		}
	}
}

func TestEntryEncodeDecodeRoundTrip(t *testing.T) {
	e := Entry{Key: []byte("key"), Value: []byte("value-with-more-bytes")}
	block := encodeEntry(e)
	got, err := decodeEntry(block)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.Key, e.Key) || !bytes.Equal(got.Value, e.Value) {
		t.Fatalf("decodeEntry round trip mismatch: %+v != %+v", got, e)
	}
}

func TestExportRebuildRoundTrip(t *testing.T) {
	s := New()
	for i, k := range []string{"a", "b", "c"} {
		if _, err := s.Put([]byte(k), []byte{byte(i)}); err != nil {
			t.Fatal(err)
		}
	}
	// Overwrite one key so Export must return every write, not just
	// the latest per key.
	if _, err := s.Put([]byte("a"), []byte{9}); err != nil {
		t.Fatal(err)
	}

	entries := s.Export()
	rebuilt, err := Rebuild(entries)
	if err != nil {
		t.Fatal(err)
	}
	if rebuilt.Tree().RootDigest() != s.Tree().RootDigest() {
		t.Fatal("rebuilt store has a different root than the original")
	}
	val, _, err := rebuilt.Get([]byte("a"))
	if err != nil || !bytes.Equal(val, []byte{9}) {
		t.Fatalf("rebuilt Get(a) = %q, %v, want [9]", val, err)
	}
}

func TestDecodeEntryRejectsTruncated(t *testing.T) {
	if _, err := decodeEntry([]byte{0, 0, 0, 5, 'a'}); err != ErrMalformedEntry {
		t.Fatalf("err = %v, want ErrMalformedEntry", err)
	}
}
