package merkletree

import (
	"strings"
	"testing"
)

func blocks(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

func TestEmptyTree(t *testing.T) {
	tr := New(nil)
	if tr.Size() != 0 {
		t.Fatalf("size = %d, want 0", tr.Size())
	}
	if tr.Height() != 1 {
		t.Fatalf("height = %d, want 1", tr.Height())
	}
	want := nodeHash(emptyLeafDigest, emptyLeafDigest)
	if tr.RootDigest() != want {
		t.Fatalf("root = %s, want %s", tr.RootDigest(), want)
	}
}

func TestSingleLeafTree(t *testing.T) {
	tr := New(blocks("a"))
	if tr.Size() != 1 {
		t.Fatalf("size = %d, want 1", tr.Size())
	}
	if tr.Height() != 0 {
		t.Fatalf("height = %d, want 0", tr.Height())
	}
	if tr.RootDigest() != LeafHash([]byte("a")) {
		t.Fatalf("root digest mismatch for single-leaf tree")
	}
}

func TestHeightDoublesWhenFull(t *testing.T) {
	tr := New(blocks("a"))
	if tr.Height() != 0 {
		t.Fatalf("height = %d, want 0", tr.Height())
	}
	tr, err := tr.Add([]byte("b"))
	if err != nil {
		t.Fatal(err)
	}
	if tr.Height() != 1 {
		t.Fatalf("height after growing past 1 leaf = %d, want 1", tr.Height())
	}
	tr, err = tr.Add([]byte("c"))
	if err != nil {
		t.Fatal(err)
	}
	if tr.Height() != 2 {
		t.Fatalf("height after growing past 2 leaves = %d, want 2", tr.Height())
	}
}

func TestAppendIsomorphicToBuild(t *testing.T) {
	direct := New(blocks("a", "b", "c"))

	incremental := New(nil)
	var err error
	for _, s := range []string{"a", "b", "c"} {
		incremental, err = incremental.Add([]byte(s))
		if err != nil {
			t.Fatal(err)
		}
	}

	if direct.RootDigest() != incremental.RootDigest() {
		t.Fatalf("direct build and incremental append diverge: %s != %s",
			direct.RootDigest(), incremental.RootDigest())
	}
	if direct.Height() != incremental.Height() || direct.Size() != incremental.Size() {
		t.Fatalf("shape mismatch: %d/%d vs %d/%d",
			direct.Height(), direct.Size(), incremental.Height(), incremental.Size())
	}
}

func TestAddOutOfRangeNeverHappens(t *testing.T) {
	// Add always appends at the current size; there is no index input to
	// go out of range. This test instead checks that repeated Add never
	// mutates an earlier snapshot (structural sharing, not aliasing).
	t0 := New(blocks("a"))
	t1, err := t0.Add([]byte("b"))
	if err != nil {
		t.Fatal(err)
	}
	if t0.RootDigest() == t1.RootDigest() {
		t.Fatalf("t0 and t1 should have different roots")
	}
	if t0.Size() != 1 || t0.Height() != 0 {
		t.Fatalf("t0 mutated by Add on t1: size=%d height=%d", t0.Size(), t0.Height())
	}
}

func TestMembershipProofRoundTrip(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	tr := New(blocks(items...))
	for i, s := range items {
		proof, err := tr.GenMembership(uint64(i))
		if err != nil {
			t.Fatalf("GenMembership(%d): %v", i, err)
		}
		if len(proof.Hashes) != tr.Height() {
			t.Fatalf("proof for %d has %d hashes, want height %d", i, len(proof.Hashes), tr.Height())
		}
		ok := VerifyMembership(proof, tr.RootDigest(), uint64(i), LeafHash([]byte(s)))
		if !ok {
			t.Fatalf("VerifyMembership failed for index %d", i)
		}
	}
}

func TestMembershipProofRejectsWrongLeaf(t *testing.T) {
	tr := New(blocks("a", "b", "c"))
	proof, err := tr.GenMembership(1)
	if err != nil {
		t.Fatal(err)
	}
	if VerifyMembership(proof, tr.RootDigest(), 1, LeafHash([]byte("not-b"))) {
		t.Fatal("VerifyMembership accepted a forged leaf")
	}
	if VerifyMembership(proof, tr.RootDigest(), 2, LeafHash([]byte("b"))) {
		t.Fatal("VerifyMembership accepted a proof for the wrong index")
	}
}

func TestMembershipProofOutOfRange(t *testing.T) {
	tr := New(blocks("a", "b"))
	if _, err := tr.GenMembership(2); err != ErrIndexOutOfRange {
		t.Fatalf("GenMembership(2) on size-2 tree: err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestIncrementalProofScenarios(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	var trees []*Tree
	tr := New(nil)
	trees = append(trees, tr)
	for _, s := range items {
		var err error
		tr, err = tr.Add([]byte(s))
		if err != nil {
			t.Fatal(err)
		}
		trees = append(trees, tr) // trees[k] has size k
	}

	cases := []struct{ i, j uint64 }{
		{2, 6},
		{1, 5},
		{2, 11},
		{1, 11},
		{0, 11},
		{5, 5},
		{0, 0},
	}
	for _, c := range cases {
		later := trees[c.j+1]
		earlier := trees[c.i+1]
		pf, err := later.GenIncremental(c.i, c.j)
		if err != nil {
			t.Fatalf("GenIncremental(%d,%d): %v", c.i, c.j, err)
		}
		if !VerifyIncremental(pf, c.i, c.j, earlier.RootDigest(), later.RootDigest()) {
			t.Fatalf("VerifyIncremental(%d,%d) rejected a genuine proof", c.i, c.j)
		}
	}
}

func TestIncrementalProofRejectsTamperedRoot(t *testing.T) {
	tr := New(blocks("a", "b", "c", "d", "e", "f", "g"))
	earlier := New(blocks("a", "b", "c"))
	pf, err := tr.GenIncremental(2, 6)
	if err != nil {
		t.Fatal(err)
	}
	badRoot, _ := DigestFromHex(strings.Repeat("0", 64))
	if VerifyIncremental(pf, 2, 6, badRoot, tr.RootDigest()) {
		t.Fatal("VerifyIncremental accepted a tampered earlier root")
	}
	if VerifyIncremental(pf, 2, 6, earlier.RootDigest(), badRoot) {
		t.Fatal("VerifyIncremental accepted a tampered later root")
	}
}

func TestIncrementalProofRequiresLatestVersion(t *testing.T) {
	tr := New(blocks("a", "b", "c", "d", "e", "f", "g"))
	if _, err := tr.GenIncremental(2, 5); err != ErrIndexOutOfRange {
		t.Fatalf("GenIncremental with j != size-1: err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestDigestHexRoundTrip(t *testing.T) {
	d := LeafHash([]byte("hello"))
	got, err := DigestFromHex(d.String())
	if err != nil {
		t.Fatal(err)
	}
	if got != d {
		t.Fatalf("hex round trip mismatch: %s != %s", got, d)
	}
	if _, err := DigestFromHex("not-hex"); err == nil {
		t.Fatal("expected error decoding malformed hex digest")
	}
}
