package merkletree

// Tree is the root node of a padded-to-power-of-two binary Merkle tree,
// together with its height and the number of real (non-default) leaves
// it holds. Tree values are immutable: Add never mutates its receiver,
// it returns a new Tree that may share unmodified subtrees with it.
type Tree struct {
	root   node
	height int
	size   uint64
}

// New builds a tree from an ordered list of data blocks. An empty list
// produces the canonical empty tree (height 1, size 0, two default
// leaves); see spec §3 and §8 "Boundary behaviors".
func New(blocks [][]byte) *Tree {
	if len(blocks) == 0 {
		return &Tree{
			root:   newInner(defaultLeaf, defaultLeaf),
			height: 1,
			size:   0,
		}
	}
	height := heightForSize(uint64(len(blocks)))
	root := buildRange(blocks, height)
	return &Tree{root: root, height: height, size: uint64(len(blocks))}
}

// buildRange builds a full binary tree of the given height over blocks,
// padding any missing trailing leaves with the default (empty-string)
// leaf. Halves the range at each level, per spec §4.2.
func buildRange(blocks [][]byte, height int) node {
	if height == 0 {
		if len(blocks) == 0 {
			return defaultLeaf
		}
		return newLeaf(blocks[0])
	}
	half := 1 << uint(height-1)
	var leftBlocks, rightBlocks [][]byte
	if len(blocks) <= half {
		leftBlocks, rightBlocks = blocks, nil
	} else {
		leftBlocks, rightBlocks = blocks[:half], blocks[half:]
	}
	left := buildRange(leftBlocks, height-1)
	right := buildRange(rightBlocks, height-1)
	return newInner(left, right)
}

// Size returns the number of real leaves inserted into t so far.
func (t *Tree) Size() uint64 { return t.size }

// Height returns the depth from t's root to any of its leaves.
func (t *Tree) Height() int { return t.height }

// RootDigest returns the digest of t's root node.
func (t *Tree) RootDigest() Digest { return t.root.digest() }

// Add returns a new tree with block appended as the size-th leaf
// (0-indexed). It never mutates t. Untouched subtrees of t are reused
// by the returned tree. Adding to the empty tree yields the one-leaf
// tree of height 0, the same tree New builds from that single block.
func (t *Tree) Add(block []byte) (*Tree, error) {
	if t.size == 0 {
		return New([][]byte{block}), nil
	}
	if t.size == 1<<uint(t.height) {
		grown := &Tree{
			root:   newInner(t.root, defaultSubtree(t.height)),
			height: t.height + 1,
			size:   t.size,
		}
		return grown.Add(block)
	}
	p := path(t.height, t.size)
	newRoot, err := addAt(t.root, p, 0, block)
	if err != nil {
		return nil, err
	}
	return &Tree{root: newRoot, height: t.height, size: t.size + 1}, nil
}

// addAt descends path p from n (currently at depth d out of len(p)),
// replacing the default leaf at the end of the path with a real leaf
// built from block, and rebuilding the O(log n) spine back up. Subtrees
// off the path are returned unchanged (structural sharing).
func addAt(n node, p []bool, d int, block []byte) (node, error) {
	if d == len(p) {
		leaf, ok := n.(*leafNode)
		if !ok || leaf.d != emptyLeafDigest {
			return nil, ErrInvalidTree
		}
		return newLeaf(block), nil
	}
	in, ok := n.(*innerNode)
	if !ok {
		return nil, ErrInvalidTree
	}
	if p[d] {
		newRight, err := addAt(in.right, p, d+1, block)
		if err != nil {
			return nil, err
		}
		return newInner(in.left, newRight), nil
	}
	newLeft, err := addAt(in.left, p, d+1, block)
	if err != nil {
		return nil, err
	}
	return newInner(newLeft, in.right), nil
}
