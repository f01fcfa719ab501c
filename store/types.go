// Package store: core types, sentinel errors, and configuration options
// for the property-graph engine.
package store

import (
	"errors"
	"log/slog"
)

// Sentinel errors for store operations.
var (
	// ErrStoreClosed indicates an operation on a store after Close.
	ErrStoreClosed = errors.New("store: store is closed")
	// ErrTxnReleased indicates an operation on a transaction after Release.
	ErrTxnReleased = errors.New("store: transaction already released")
	// ErrNodeNotFound indicates a NodeID that does not address an arena record.
	ErrNodeNotFound = errors.New("store: node not found")
	// ErrPropertyNotFound indicates a missing property key on GetProperty.
	ErrPropertyNotFound = errors.New("store: property not found")
)

// NodeID is a stable index into the store's node arena.
// IDs are assigned densely in creation order and never reused.
type NodeID int

// EdgeType labels a family of edges; traversal filters on it.
type EdgeType string

// Direction selects which incident edges Traverse follows.
type Direction int

const (
	// Outgoing follows directed edges whose source is the traversal origin.
	Outgoing Direction = iota
	// Incoming follows directed edges whose target is the traversal origin.
	Incoming
	// Both follows directed edges regardless of orientation.
	Both
)

// Undirected edges match every Direction: symmetry makes the filter moot.

// Option configures a Store before it opens.
type Option func(*config)

// config collects Open-time settings.
type config struct {
	path   string
	logger *slog.Logger
}

// WithPath persists committed records to a BadgerDB instance rooted at dir
// and reloads them on the next Open. An empty dir keeps the store in memory.
func WithPath(dir string) Option {
	return func(c *config) { c.path = dir }
}

// WithLogger routes the store's diagnostics through logger
// instead of slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// EdgeOption configures a single edge at creation time.
type EdgeOption func(*edgeRecord)

// Undirected makes the edge symmetric: Traverse yields the peer endpoint
// from either side, regardless of the Direction filter.
func Undirected() EdgeOption {
	return func(e *edgeRecord) { e.Directed = false }
}

// nodeRecord is one arena entry: a property bag plus the creation-ordered
// list of incident edge indices (into Store.edges).
type nodeRecord struct {
	Props    map[string]any `json:"props"`
	incident []int
}

// edgeRecord is one committed or pending edge.
type edgeRecord struct {
	Type     EdgeType `json:"type"`
	From     NodeID   `json:"from"`
	To       NodeID   `json:"to"`
	Directed bool     `json:"directed"`
}
