// Package store: Store lifecycle and arena bookkeeping.
//
// The arena is a dense slice of node records plus a creation-ordered edge
// log. Each record keeps the indices of its incident edges so traversal can
// replay them in creation order without scanning the whole log.
package store

import (
	"fmt"
	"log/slog"
	"sync"
)

// Store is the shared property-graph resource. All reads and writes go
// through a Txn (see Begin); the zero value is unusable, use Open.
type Store struct {
	writer sync.Mutex // serializes transactions (single-writer)

	mu     sync.Mutex // guards closed
	closed bool

	cfg config
	log *slog.Logger
	db  *badgerBackend // nil when in-memory

	// Committed state. Mutated only by Txn.Release while writer is held.
	nodes []*nodeRecord
	edges []edgeRecord
}

// Open creates a Store. With WithPath the store opens (or creates) a
// BadgerDB instance at the given directory and reloads every committed
// node and edge; without it the store lives in memory only.
// Returns any backend open/load failure wrapped with %w.
// Complexity: O(V + E) for the reload, O(1) in-memory.
func Open(opts ...Option) (*Store, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	s := &Store{cfg: cfg, log: cfg.logger}

	if cfg.path != "" {
		db, err := openBackend(cfg.path)
		if err != nil {
			return nil, fmt.Errorf("store: opening backend at %q: %w", cfg.path, err)
		}
		s.db = db
		if err = s.load(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("store: loading arena from %q: %w", cfg.path, err)
		}
	}

	s.log.Debug("store opened",
		slog.String("path", cfg.path),
		slog.Int("nodes", len(s.nodes)),
		slog.Int("edges", len(s.edges)))

	return s, nil
}

// Close releases the disk backend, if any. Transactions begun after Close
// fail with ErrStoreClosed; Close does not interrupt an in-flight one.
// Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	// Wait for the in-flight transaction, if any, before tearing down disk.
	s.writer.Lock()
	defer s.writer.Unlock()

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("store: closing backend: %w", err)
		}
	}

	return nil
}

// NodeCount returns the number of committed nodes. O(1).
func (s *Store) NodeCount() int {
	s.writer.Lock()
	defer s.writer.Unlock()

	return len(s.nodes)
}

// EdgeCount returns the number of committed edges. O(1).
func (s *Store) EdgeCount() int {
	s.writer.Lock()
	defer s.writer.Unlock()

	return len(s.edges)
}

// attachEdge appends a committed edge and indexes it on both endpoints.
// Caller holds writer.
func (s *Store) attachEdge(e edgeRecord) {
	idx := len(s.edges)
	s.edges = append(s.edges, e)
	s.nodes[e.From].incident = append(s.nodes[e.From].incident, idx)
	if e.To != e.From {
		s.nodes[e.To].incident = append(s.nodes[e.To].incident, idx)
	}
}
