// Package store: BadgerDB persistence for the node/edge arena.
//
// Key layout (zero-padded so Badger's lexicographic iteration replays
// records in creation order):
//
//	n/%08d -> JSON property bag of node i
//	e/%08d -> JSON edge record i
//
// Property values are restricted to int, bool, and string; ints are
// re-normalized after the JSON round-trip (json decodes numbers as
// float64).
package store

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	nodeKeyPrefix = "n/"
	edgeKeyPrefix = "e/"
)

// badgerBackend wraps the Badger handle so the rest of the package stays
// codec-agnostic.
type badgerBackend struct {
	db *badger.DB
}

// openBackend opens (or creates) the Badger instance at dir with Badger's
// own logging silenced; the store logs through slog instead.
func openBackend(dir string) (*badgerBackend, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &badgerBackend{db: db}, nil
}

// Close syncs and closes the underlying Badger instance.
func (b *badgerBackend) Close() error {
	return b.db.Close()
}

// nodeKey returns the Badger key of node id.
func nodeKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%08d", nodeKeyPrefix, id))
}

// edgeKey returns the Badger key of edge idx.
func edgeKey(idx int) []byte {
	return []byte(fmt.Sprintf("%s%08d", edgeKeyPrefix, idx))
}

// load rebuilds the arena from disk: nodes first, then the edge log in
// creation order (which also rebuilds the per-node incident indices).
// Caller owns the store exclusively (called from Open only).
func (s *Store) load() error {
	return s.db.db.View(func(btx *badger.Txn) error {
		// 1) Node records.
		if err := scanPrefix(btx, nodeKeyPrefix, func(val []byte) error {
			props := make(map[string]any)
			if err := json.Unmarshal(val, &props); err != nil {
				return fmt.Errorf("decoding node record: %w", err)
			}
			normalizeProps(props)
			s.nodes = append(s.nodes, &nodeRecord{Props: props})
			return nil
		}); err != nil {
			return err
		}

		// 2) Edge log, replayed through attachEdge to rebuild adjacency.
		return scanPrefix(btx, edgeKeyPrefix, func(val []byte) error {
			var e edgeRecord
			if err := json.Unmarshal(val, &e); err != nil {
				return fmt.Errorf("decoding edge record: %w", err)
			}
			if int(e.From) >= len(s.nodes) || int(e.To) >= len(s.nodes) {
				return fmt.Errorf("edge %d-%d references missing node: %w", e.From, e.To, ErrNodeNotFound)
			}
			s.attachEdge(e)
			return nil
		})
	})
}

// flush writes every buffered mutation of tx to Badger in one update.
// Called from Txn.Release with the writer lock held, before the arena is
// touched, so a failed flush leaves both disk and memory unchanged.
func (s *Store) flush(tx *Txn) error {
	return s.db.db.Update(func(btx *badger.Txn) error {
		// 1) Re-serialize committed nodes with property overlays.
		for id, overlay := range tx.pendingProps {
			merged := make(map[string]any, len(s.nodes[id].Props)+len(overlay))
			for k, v := range s.nodes[id].Props {
				merged[k] = v
			}
			for k, v := range overlay {
				merged[k] = v
			}
			if err := writeJSON(btx, nodeKey(int(id)), merged); err != nil {
				return err
			}
		}

		// 2) New nodes.
		base := len(s.nodes)
		for i, n := range tx.pendingNodes {
			if err := writeJSON(btx, nodeKey(base+i), n.Props); err != nil {
				return err
			}
		}

		// 3) New edges, appended to the log.
		baseEdge := len(s.edges)
		for i, e := range tx.pendingEdges {
			if err := writeJSON(btx, edgeKey(baseEdge+i), e); err != nil {
				return err
			}
		}

		return nil
	})
}

// scanPrefix iterates every value under prefix in key order.
func scanPrefix(btx *badger.Txn, prefix string, fn func(val []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	it := btx.NewIterator(opts)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		if err := it.Item().Value(fn); err != nil {
			return err
		}
	}

	return nil
}

// writeJSON marshals v and sets it under key.
func writeJSON(btx *badger.Txn, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	return btx.Set(key, data)
}

// normalizeProps rewrites json's float64 numbers back to int so property
// values read identically before and after a disk round-trip.
func normalizeProps(props map[string]any) {
	for k, v := range props {
		if f, ok := v.(float64); ok {
			props[k] = int(f)
		}
	}
}
