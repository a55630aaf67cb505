// Package treearray implements an order-statistics AVL tree that behaves
// like a dynamic array: zero-based positional Get/Set/InsertAt/RemoveAt in
// O(log n), with positions derived purely from cached subtree sizes.
//
// Nodes live in a growable arena and refer to each other through integer
// handles, never through pointers. Freed slots are recycled by later
// insertions; the live-slot set is tracked in a bitset so that a corrupted
// handle surfaces as a recoverable error instead of undefined behavior.
package treearray
