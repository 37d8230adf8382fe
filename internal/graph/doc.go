// Package graph implements the arena-backed directed graph that stores the
// declared command hierarchy.
//
// Nodes and edges live in two append-only slices and are addressed by integer
// handles. A handle, once returned, refers to the same element for the life of
// the graph; nothing is ever deleted or reused. Each node carries the head of
// an intrusive singly linked list of its outgoing edges: the edge records
// themselves hold the "next" link, so adjacency costs no extra allocation per
// node.
//
// The graph is grown by a single builder during construction and is read-only
// afterwards. It has no interior locking; concurrent readers are safe only
// once all insertion has finished.
//
// # Edge ordering
//
// New edges are prepended to their source's chain, and Successors walks the
// chain in link order. A node's children are therefore yielded most recently
// added first. Insertion and iteration agree on this, so callers observe one
// consistent LIFO policy.
//
// # Queries
//
// Roots, Successors and Ancestors recompute their answer on every call and
// never mutate the graph. Duplicate-edge checks and root detection scan the
// edge arena linearly; that is O(E) and O(N·E) respectively, which is fine at
// command-tree scale but worth an adjacency index before reusing this package
// for anything larger.
package graph
