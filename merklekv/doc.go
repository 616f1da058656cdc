/*
Package merklekv layers an append-only key/value map on top of a
merkletree.Tree. Every Put appends one new leaf; the map never
overwrites or removes a leaf, so every value ever stored remains
provable by membership proof against whatever root followed it.

Two auxiliary indexes make the overlay usable as a map rather than
just a log: an ordinal-keyed index recovers the entry stored at any
leaf, and a key-keyed history recovers every ordinal at which a given
key was written, most recent last.
*/
package merklekv
