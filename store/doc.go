/*
Package store persists a merklekv.Store's writes and a history.Chain's
signed roots to an abstract storage/kv.DB. It is a collaborator, not
part of the tree or KV overlay themselves: neither merkletree nor
merklekv imports it, and it imports both of them plus storage/kv.

Persistence works from the bottom up rather than by addressing
individual tree nodes: every entry ever written is kept, in order,
under its ordinal, and a tree or KV store is recovered by replaying
that list. This works because of the tree's construction/append
isomorphism - replaying writes in order always reproduces the same
structure - so there is no need for a node-level encoding of the tree
itself.
*/
package store
