package history

import (
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/chronicle-sys/chronicle-go/merkletree"
)

func mustKey(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	return pub, priv
}

func TestChainAppendAndVerify(t *testing.T) {
	pub, priv := mustKey(t)
	chain := NewChain(pub)

	tr := merkletree.New(nil)
	for _, s := range []string{"a", "b", "c"} {
		var err error
		tr, err = tr.Add([]byte(s))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := chain.Append(priv, tr); err != nil {
			t.Fatal(err)
		}
	}

	if err := chain.Verify(); err != nil {
		t.Fatalf("Verify() = %v, want nil", err)
	}
	if chain.Latest().Size != 3 {
		t.Fatalf("Latest().Size = %d, want 3", chain.Latest().Size)
	}
}

func TestChainRejectsNonGrowingAppend(t *testing.T) {
	_, priv := mustKey(t)
	chain := NewChain(nil)
	tr := merkletree.New([][]byte{[]byte("a"), []byte("b")})
	if _, err := chain.Append(priv, tr); err != nil {
		t.Fatal(err)
	}
	if _, err := chain.Append(priv, tr); err != ErrBrokenChain {
		t.Fatalf("err = %v, want ErrBrokenChain", err)
	}
}

func TestVerifyChainRejectsTamperedRoot(t *testing.T) {
	pub, priv := mustKey(t)
	chain := NewChain(pub)
	tr := merkletree.New(nil)
	for _, s := range []string{"a", "b", "c"} {
		var err error
		tr, err = tr.Add([]byte(s))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := chain.Append(priv, tr); err != nil {
			t.Fatal(err)
		}
	}

	roots := chain.Roots()
	roots[1].Size = 99
	if err := VerifyChain(pub, roots); err == nil {
		t.Fatal("VerifyChain accepted a tampered root")
	}
}

func TestVerifyChainRejectsWrongKey(t *testing.T) {
	pub, priv := mustKey(t)
	otherPub, _ := mustKey(t)

	chain := NewChain(pub)
	tr := merkletree.New([][]byte{[]byte("a")})
	if _, err := chain.Append(priv, tr); err != nil {
		t.Fatal(err)
	}

	if err := VerifyChain(otherPub, chain.Roots()); err != ErrBadSignature {
		t.Fatalf("err = %v, want ErrBadSignature", err)
	}
}
