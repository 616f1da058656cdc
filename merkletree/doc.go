/*
Package merkletree implements an append-only, immutable binary Merkle
tree and the proofs built over it.

History-authenticating tree

The tree is padded to a power of two and supports single-item append in
O(log n) by overwriting "default" leaves left over from padding, doubling
in height only when it is structurally full. Because nodes are immutable
once built, successive versions of the tree share unmodified subtrees.

Two proof types are provided: membership proofs, which show that a given
block is the i-th leaf of the current tree, and incremental (consistency)
proofs, which show that an earlier root is a faithful commitment to a
prefix of a later tree's leaves. Both are plain values: a verifier needs
only the proof and the relevant root digest(s), never the tree itself.
*/
package merkletree
