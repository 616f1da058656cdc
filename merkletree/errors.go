package merkletree

import "errors"

var (
	// ErrIndexOutOfRange indicates that a requested leaf index is not
	// within the tree's current size (membership) or exceeds j
	// (incremental).
	ErrIndexOutOfRange = errors.New("[merkletree] index out of range")

	// ErrInvalidTree indicates a malformed operation on the tree: an
	// add that would overwrite a non-default leaf, a (1,0) divergence
	// encountered while building an incremental proof, or a tree whose
	// node shape disagrees with its height while a proof is generated.
	// Proof verification never returns it; verifiers report false.
	ErrInvalidTree = errors.New("[merkletree] invalid tree")

	// ErrBadDigestLength indicates a hex-encoded digest did not decode
	// to exactly HashSizeByte bytes.
	ErrBadDigestLength = errors.New("[merkletree] bad digest length")
)
