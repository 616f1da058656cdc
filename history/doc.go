/*
Package history chains successive roots of a merkletree.Tree into a
signed, tamper-evident history. Each SignedRoot commits to a tree size
and root digest, to the size and signature hash of the root before it,
and is signed with an ed25519 key. Verifying a Chain walks the hash
chain and the signatures together: a forged or reordered root breaks
one or the other.

This mirrors the signed-tree-root design used to checkpoint a
directory's state at every epoch, generalized from per-epoch
checkpoints of a sparse tree to per-append checkpoints of an
append-only one.
*/
package history
