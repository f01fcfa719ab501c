// Package store: buffered single-writer transactions.
//
// A Txn buffers every mutation (new nodes, new edges, property overlays)
// and applies them to the arena only on Release after MarkSuccess. Reads
// inside the Txn see the buffered state (read-your-writes). Release
// without MarkSuccess discards the buffer, so no half-committed graph is
// ever observable by the next transaction.
package store

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Txn is one transactional scope against a Store. Begin → mutate/read →
// MarkSuccess (only on the non-error path) → Release (always, idempotent).
type Txn struct {
	s  *Store
	id string // correlation ID for diagnostics

	pendingNodes []*nodeRecord             // created this txn; IDs follow the committed arena
	pendingEdges []edgeRecord              // created this txn, in creation order
	pendingProps map[NodeID]map[string]any // overlays on committed nodes

	success  bool
	released bool
	err      error // non-nil when the store was closed at Begin
}

// Begin starts a transaction, blocking until the previous one releases.
// The returned Txn must be Released on every exit path:
//
//	tx := s.Begin()
//	defer tx.Release()
//	...
//	tx.MarkSuccess()
//
// If the store is closed the returned Txn fails every operation with
// ErrStoreClosed.
func (s *Store) Begin() *Txn {
	s.writer.Lock()

	tx := &Txn{
		s:            s,
		id:           uuid.NewString(),
		pendingProps: make(map[NodeID]map[string]any),
	}

	s.mu.Lock()
	if s.closed {
		tx.err = ErrStoreClosed
	}
	s.mu.Unlock()

	return tx
}

// alive reports the first error that invalidates further operations.
func (tx *Txn) alive() error {
	if tx.released {
		return ErrTxnReleased
	}

	return tx.err
}

// exists reports whether id addresses a committed or pending node.
func (tx *Txn) exists(id NodeID) bool {
	return id >= 0 && int(id) < len(tx.s.nodes)+len(tx.pendingNodes)
}

// CreateNode allocates the next arena slot and returns its NodeID.
// The node becomes visible to other transactions only after commit.
// Complexity: O(1).
func (tx *Txn) CreateNode() (NodeID, error) {
	if err := tx.alive(); err != nil {
		return 0, err
	}

	tx.pendingNodes = append(tx.pendingNodes, &nodeRecord{Props: make(map[string]any)})

	return NodeID(len(tx.s.nodes) + len(tx.pendingNodes) - 1), nil
}

// SetProperty sets key to value on node id. Values are expected to be
// int, bool, or string so they survive the persistence codec.
// Returns ErrNodeNotFound for an unknown id. Complexity: O(1).
func (tx *Txn) SetProperty(id NodeID, key string, value any) error {
	if err := tx.alive(); err != nil {
		return err
	}
	if !tx.exists(id) {
		return ErrNodeNotFound
	}

	// Pending nodes own their property bag directly.
	if int(id) >= len(tx.s.nodes) {
		tx.pendingNodes[int(id)-len(tx.s.nodes)].Props[key] = value
		return nil
	}

	overlay, ok := tx.pendingProps[id]
	if !ok {
		overlay = make(map[string]any)
		tx.pendingProps[id] = overlay
	}
	overlay[key] = value

	return nil
}

// GetProperty returns the value of key on node id, observing writes
// buffered in this transaction first. Returns ErrPropertyNotFound when the
// key is absent, ErrNodeNotFound for an unknown id. Complexity: O(1).
func (tx *Txn) GetProperty(id NodeID, key string) (any, error) {
	if err := tx.alive(); err != nil {
		return nil, err
	}
	if !tx.exists(id) {
		return nil, ErrNodeNotFound
	}

	if int(id) >= len(tx.s.nodes) {
		if v, ok := tx.pendingNodes[int(id)-len(tx.s.nodes)].Props[key]; ok {
			return v, nil
		}
		return nil, ErrPropertyNotFound
	}
	if overlay, ok := tx.pendingProps[id]; ok {
		if v, ok := overlay[key]; ok {
			return v, nil
		}
	}
	if v, ok := tx.s.nodes[id].Props[key]; ok {
		return v, nil
	}

	return nil, ErrPropertyNotFound
}

// HasProperty reports whether node id carries key. Complexity: O(1).
func (tx *Txn) HasProperty(id NodeID, key string) (bool, error) {
	_, err := tx.GetProperty(id, key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrPropertyNotFound):
		return false, nil
	default:
		return false, err
	}
}

// CreateEdge creates a typed edge from → to. Edges are directed unless the
// Undirected option is applied. Returns ErrNodeNotFound when either
// endpoint is unknown. Complexity: O(1).
func (tx *Txn) CreateEdge(from, to NodeID, typ EdgeType, opts ...EdgeOption) error {
	if err := tx.alive(); err != nil {
		return err
	}
	if !tx.exists(from) || !tx.exists(to) {
		return ErrNodeNotFound
	}

	e := edgeRecord{Type: typ, From: from, To: to, Directed: true}
	for _, opt := range opts {
		opt(&e)
	}
	tx.pendingEdges = append(tx.pendingEdges, e)

	return nil
}

// Traverse returns the neighbors of id reachable over edges of type typ,
// in edge-creation order: committed edges first, then edges buffered in
// this transaction. Directed edges honor dir; undirected edges match any
// Direction. Complexity: O(deg(id) + P) where P = |pending edges|.
func (tx *Txn) Traverse(id NodeID, typ EdgeType, dir Direction) ([]NodeID, error) {
	if err := tx.alive(); err != nil {
		return nil, err
	}
	if !tx.exists(id) {
		return nil, ErrNodeNotFound
	}

	var out []NodeID

	// 1) Committed incident edges, already in creation order.
	if int(id) < len(tx.s.nodes) {
		for _, idx := range tx.s.nodes[id].incident {
			if peer, ok := follow(tx.s.edges[idx], id, typ, dir); ok {
				out = append(out, peer)
			}
		}
	}

	// 2) Edges buffered in this transaction, in creation order.
	for _, e := range tx.pendingEdges {
		if peer, ok := follow(e, id, typ, dir); ok {
			out = append(out, peer)
		}
	}

	return out, nil
}

// follow resolves edge e from the viewpoint of origin, applying the type
// and direction filters. Returns the peer endpoint and whether e matches.
func follow(e edgeRecord, origin NodeID, typ EdgeType, dir Direction) (NodeID, bool) {
	if e.Type != typ {
		return 0, false
	}
	if !e.Directed {
		switch origin {
		case e.From:
			return e.To, true
		case e.To:
			return e.From, true
		}
		return 0, false
	}
	if e.From == origin && (dir == Outgoing || dir == Both) {
		return e.To, true
	}
	if e.To == origin && (dir == Incoming || dir == Both) {
		return e.From, true
	}

	return 0, false
}

// MarkSuccess flags the transaction for commit. Without it, Release
// discards every buffered mutation. No-op on a released transaction.
func (tx *Txn) MarkSuccess() {
	if tx.released {
		return
	}
	tx.success = true
}

// Release ends the transaction and unblocks the next writer. When
// MarkSuccess was called, buffered mutations are first flushed to the disk
// backend (if any) and then applied to the arena; a flush failure discards
// the buffer and is returned wrapped, leaving committed state untouched.
// Idempotent: the second and later calls return nil.
func (tx *Txn) Release() error {
	if tx.released {
		return nil
	}
	tx.released = true
	defer tx.s.writer.Unlock()

	if !tx.success || tx.err != nil {
		tx.s.log.Debug("txn discarded",
			slog.String("txn", tx.id),
			slog.Int("nodes", len(tx.pendingNodes)),
			slog.Int("edges", len(tx.pendingEdges)))
		return nil
	}

	// Durability first: committed memory state must never be ahead of disk.
	if tx.s.db != nil {
		if err := tx.s.flush(tx); err != nil {
			return fmt.Errorf("store: flushing txn %s: %w", tx.id, err)
		}
	}

	// Apply buffered state to the arena.
	for id, overlay := range tx.pendingProps {
		for k, v := range overlay {
			tx.s.nodes[id].Props[k] = v
		}
	}
	tx.s.nodes = append(tx.s.nodes, tx.pendingNodes...)
	for _, e := range tx.pendingEdges {
		tx.s.attachEdge(e)
	}

	tx.s.log.Debug("txn committed",
		slog.String("txn", tx.id),
		slog.Int("nodes", len(tx.pendingNodes)),
		slog.Int("edges", len(tx.pendingEdges)))

	return nil
}
