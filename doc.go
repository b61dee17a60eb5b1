// Package suffixtrie implements a compact byte-indexed trie for matching
// public suffixes and registrable ("base") domains against a rule corpus
// expressed in a brace-delimited grammar (see Compiler). The trie is built
// once and is immutable and lock-free for reads afterward.
package suffixtrie
