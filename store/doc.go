// Package store implements a small persisted property-graph engine:
// integer-addressed nodes with key/value properties, typed directed or
// undirected edges, and buffered single-writer transactions with an
// optional BadgerDB backing for durability.
//
// What:
//
//   - Nodes live in an append-only arena addressed by stable NodeID indices.
//   - Edges carry an EdgeType and are directed by default; Undirected()
//     creates a symmetric edge visible from both endpoints.
//   - Properties are per-node key/value pairs (int, bool, or string values).
//   - All access runs through a Txn obtained from Store.Begin: mutations are
//     buffered inside the Txn (read-your-writes) and applied atomically on
//     Release after MarkSuccess, or discarded on Release without it.
//
// Why:
//
//   - Graph-shaped constraint models (see the sudoku package) want cheap node
//     handles, ordered adjacency, and an all-or-nothing mutation scope,
//     without the weight of a full graph database.
//
// Ordering guarantee:
//
//   - Traverse returns neighbors in edge-creation order. Callers may rely on
//     this to reproduce deterministic visit sequences.
//
// Durability:
//
//   - Open(WithPath(dir)) persists committed records to BadgerDB under dir
//     and reloads the arena on the next Open. The default store is purely
//     in-memory.
//
// Concurrency:
//
//   - Single-writer: Begin blocks until the previous transaction releases.
//     A released Txn is inert; Release is idempotent.
//
// Errors (sentinel):
//
//   - ErrStoreClosed    operation on a closed store
//   - ErrTxnReleased    operation on a released transaction
//   - ErrNodeNotFound   NodeID outside the arena
//   - ErrPropertyNotFound  missing property key on GetProperty
//   - Badger failures are wrapped with %w and propagated unmodified in cause.
package store
