package history

import (
	"golang.org/x/crypto/ed25519"

	"github.com/chronicle-sys/chronicle-go/merkletree"
)

// Chain is an ordered, signed sequence of checkpoints of a single
// tree's growth over time.
type Chain struct {
	pub   ed25519.PublicKey
	roots []*SignedRoot
}

// NewChain returns an empty chain that verifies against pub.
func NewChain(pub ed25519.PublicKey) *Chain {
	return &Chain{pub: pub}
}

// Append signs a checkpoint of tree's current state and adds it to the
// chain. tree.Size() must be strictly greater than the size of the
// chain's most recent root, if any.
func (c *Chain) Append(priv ed25519.PrivateKey, tree *merkletree.Tree) (*SignedRoot, error) {
	var prev *SignedRoot
	if n := len(c.roots); n > 0 {
		prev = c.roots[n-1]
		if tree.Size() <= prev.Size {
			return nil, ErrBrokenChain
		}
	}
	sr := sign(priv, tree, prev)
	c.roots = append(c.roots, sr)
	return sr, nil
}

// Roots returns the chain's checkpoints in append order.
func (c *Chain) Roots() []*SignedRoot {
	out := make([]*SignedRoot, len(c.roots))
	copy(out, c.roots)
	return out
}

// Latest returns the most recent checkpoint, or nil if the chain is
// empty.
func (c *Chain) Latest() *SignedRoot {
	if len(c.roots) == 0 {
		return nil
	}
	return c.roots[len(c.roots)-1]
}

// Verify checks every root's signature and that each root correctly
// extends the one before it.
func (c *Chain) Verify() error {
	var prev *SignedRoot
	for _, sr := range c.roots {
		if err := verify(c.pub, sr, prev); err != nil {
			return err
		}
		prev = sr
	}
	return nil
}

// ImportChain wraps an already-signed, ordered sequence of checkpoints
// (e.g. one just loaded from storage) as a Chain that new roots can be
// appended to. It does not itself verify roots; call Verify first if
// the caller does not already trust them.
func ImportChain(pub ed25519.PublicKey, roots []*SignedRoot) *Chain {
	c := &Chain{pub: pub}
	c.roots = append(c.roots, roots...)
	return c
}

// VerifyChain checks an externally supplied, ordered sequence of
// checkpoints against pub without requiring a Chain value. Used by a
// party who only holds the roots and the public key, not the tree.
func VerifyChain(pub ed25519.PublicKey, roots []*SignedRoot) error {
	c := &Chain{pub: pub, roots: roots}
	return c.Verify()
}
