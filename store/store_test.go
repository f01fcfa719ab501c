// Package store_test verifies the transactional contract of the graph
// store: buffered mutations, discard-on-release, idempotent Release,
// creation-ordered traversal, and the BadgerDB persistence round-trip.
package store_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/sudograph/store"
)

// mustOpen creates an in-memory store closed at test end.
func mustOpen(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	s, err := store.Open(opts...)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// commitPair creates two nodes joined by one edge of type typ and commits.
func commitPair(t *testing.T, s *store.Store, typ store.EdgeType, opts ...store.EdgeOption) (a, b store.NodeID) {
	t.Helper()
	tx := s.Begin()
	defer func() {
		if err := tx.Release(); err != nil {
			t.Fatalf("Release error: %v", err)
		}
	}()

	var err error
	if a, err = tx.CreateNode(); err != nil {
		t.Fatalf("CreateNode error: %v", err)
	}
	if b, err = tx.CreateNode(); err != nil {
		t.Fatalf("CreateNode error: %v", err)
	}
	if err = tx.CreateEdge(a, b, typ, opts...); err != nil {
		t.Fatalf("CreateEdge error: %v", err)
	}
	tx.MarkSuccess()

	return a, b
}

//----------------------------------------------------------------------------//
// Transaction semantics
//----------------------------------------------------------------------------//

// TestTxn_DiscardWithoutMarkSuccess verifies that Release without
// MarkSuccess leaves no trace of the buffered mutations.
func TestTxn_DiscardWithoutMarkSuccess(t *testing.T) {
	s := mustOpen(t)

	tx := s.Begin()
	if _, err := tx.CreateNode(); err != nil {
		t.Fatalf("CreateNode error: %v", err)
	}
	if err := tx.Release(); err != nil {
		t.Fatalf("Release error: %v", err)
	}

	if got := s.NodeCount(); got != 0 {
		t.Errorf("NodeCount after discard = %d; want 0", got)
	}
}

// TestTxn_CommitVisibility verifies that a committed transaction is fully
// visible to the next one.
func TestTxn_CommitVisibility(t *testing.T) {
	s := mustOpen(t)

	tx := s.Begin()
	id, err := tx.CreateNode()
	if err != nil {
		t.Fatalf("CreateNode error: %v", err)
	}
	if err = tx.SetProperty(id, "value", 7); err != nil {
		t.Fatalf("SetProperty error: %v", err)
	}
	tx.MarkSuccess()
	if err = tx.Release(); err != nil {
		t.Fatalf("Release error: %v", err)
	}

	rd := s.Begin()
	defer func() { _ = rd.Release() }()
	v, err := rd.GetProperty(id, "value")
	if err != nil {
		t.Fatalf("GetProperty error: %v", err)
	}
	if v != 7 {
		t.Errorf("GetProperty = %v; want 7", v)
	}
}

// TestTxn_ReadYourWrites verifies that buffered state is visible inside
// the writing transaction before commit.
func TestTxn_ReadYourWrites(t *testing.T) {
	s := mustOpen(t)

	tx := s.Begin()
	defer func() { _ = tx.Release() }()

	a, _ := tx.CreateNode()
	b, _ := tx.CreateNode()
	if err := tx.SetProperty(a, "row", 3); err != nil {
		t.Fatalf("SetProperty error: %v", err)
	}
	if err := tx.CreateEdge(a, b, "link"); err != nil {
		t.Fatalf("CreateEdge error: %v", err)
	}

	v, err := tx.GetProperty(a, "row")
	if err != nil || v != 3 {
		t.Errorf("GetProperty = %v, %v; want 3, nil", v, err)
	}
	peers, err := tx.Traverse(a, "link", store.Outgoing)
	if err != nil {
		t.Fatalf("Traverse error: %v", err)
	}
	if len(peers) != 1 || peers[0] != b {
		t.Errorf("Traverse = %v; want [%d]", peers, b)
	}
}

// TestTxn_ReleaseIdempotent verifies the always-release contract: a second
// Release is a nil no-op and later operations fail with ErrTxnReleased.
func TestTxn_ReleaseIdempotent(t *testing.T) {
	s := mustOpen(t)

	tx := s.Begin()
	if err := tx.Release(); err != nil {
		t.Fatalf("first Release error: %v", err)
	}
	if err := tx.Release(); err != nil {
		t.Errorf("second Release = %v; want nil", err)
	}
	if _, err := tx.CreateNode(); !errors.Is(err, store.ErrTxnReleased) {
		t.Errorf("CreateNode after Release = %v; want ErrTxnReleased", err)
	}
}

// TestTxn_OverlayDiscard verifies that property overlays on committed
// nodes are rolled back when the transaction is not marked successful.
func TestTxn_OverlayDiscard(t *testing.T) {
	s := mustOpen(t)
	a, _ := commitPair(t, s, "link")

	tx := s.Begin()
	if err := tx.SetProperty(a, "value", 5); err != nil {
		t.Fatalf("SetProperty error: %v", err)
	}
	_ = tx.Release() // no MarkSuccess

	rd := s.Begin()
	defer func() { _ = rd.Release() }()
	if _, err := rd.GetProperty(a, "value"); !errors.Is(err, store.ErrPropertyNotFound) {
		t.Errorf("GetProperty after rollback = %v; want ErrPropertyNotFound", err)
	}
}

// TestBegin_AfterClose verifies that transactions begun on a closed store
// fail every operation with ErrStoreClosed.
func TestBegin_AfterClose(t *testing.T) {
	s, err := store.Open()
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if err = s.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	tx := s.Begin()
	defer func() { _ = tx.Release() }()
	if _, err = tx.CreateNode(); !errors.Is(err, store.ErrStoreClosed) {
		t.Errorf("CreateNode on closed store = %v; want ErrStoreClosed", err)
	}
}

//----------------------------------------------------------------------------//
// Lookup errors
//----------------------------------------------------------------------------//

// TestLookup_Errors exercises the node/property sentinels.
func TestLookup_Errors(t *testing.T) {
	s := mustOpen(t)
	a, _ := commitPair(t, s, "link")

	tx := s.Begin()
	defer func() { _ = tx.Release() }()

	if _, err := tx.GetProperty(store.NodeID(99), "x"); !errors.Is(err, store.ErrNodeNotFound) {
		t.Errorf("GetProperty(unknown) = %v; want ErrNodeNotFound", err)
	}
	if err := tx.SetProperty(store.NodeID(-1), "x", 1); !errors.Is(err, store.ErrNodeNotFound) {
		t.Errorf("SetProperty(-1) = %v; want ErrNodeNotFound", err)
	}
	if err := tx.CreateEdge(a, store.NodeID(99), "link"); !errors.Is(err, store.ErrNodeNotFound) {
		t.Errorf("CreateEdge(unknown) = %v; want ErrNodeNotFound", err)
	}
	if _, err := tx.GetProperty(a, "missing"); !errors.Is(err, store.ErrPropertyNotFound) {
		t.Errorf("GetProperty(missing key) = %v; want ErrPropertyNotFound", err)
	}
	if ok, err := tx.HasProperty(a, "missing"); err != nil || ok {
		t.Errorf("HasProperty(missing key) = %v, %v; want false, nil", ok, err)
	}
}

//----------------------------------------------------------------------------//
// Traversal
//----------------------------------------------------------------------------//

// TestTraverse_CreationOrder verifies neighbors come back in edge-creation
// order.
func TestTraverse_CreationOrder(t *testing.T) {
	s := mustOpen(t)

	tx := s.Begin()
	hub, _ := tx.CreateNode()
	var want []store.NodeID
	for i := 0; i < 5; i++ {
		n, _ := tx.CreateNode()
		if err := tx.CreateEdge(hub, n, "member"); err != nil {
			t.Fatalf("CreateEdge error: %v", err)
		}
		want = append(want, n)
	}
	tx.MarkSuccess()
	if err := tx.Release(); err != nil {
		t.Fatalf("Release error: %v", err)
	}

	rd := s.Begin()
	defer func() { _ = rd.Release() }()
	got, err := rd.Traverse(hub, "member", store.Outgoing)
	if err != nil {
		t.Fatalf("Traverse error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Traverse returned %d neighbors; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Traverse[%d] = %d; want %d (creation order)", i, got[i], want[i])
		}
	}
}

// TestTraverse_DirectionAndType verifies direction filtering on directed
// edges, symmetry of undirected ones, and type isolation.
func TestTraverse_DirectionAndType(t *testing.T) {
	s := mustOpen(t)

	tx := s.Begin()
	a, _ := tx.CreateNode()
	b, _ := tx.CreateNode()
	c, _ := tx.CreateNode()
	_ = tx.CreateEdge(a, b, "directed")
	_ = tx.CreateEdge(a, c, "sym", store.Undirected())
	tx.MarkSuccess()
	if err := tx.Release(); err != nil {
		t.Fatalf("Release error: %v", err)
	}

	rd := s.Begin()
	defer func() { _ = rd.Release() }()

	cases := []struct {
		name   string
		origin store.NodeID
		typ    store.EdgeType
		dir    store.Direction
		want   []store.NodeID
	}{
		{"OutgoingFromSource", a, "directed", store.Outgoing, []store.NodeID{b}},
		{"OutgoingFromTarget", b, "directed", store.Outgoing, nil},
		{"IncomingAtTarget", b, "directed", store.Incoming, []store.NodeID{a}},
		{"BothAtSource", a, "directed", store.Both, []store.NodeID{b}},
		{"UndirectedForward", a, "sym", store.Outgoing, []store.NodeID{c}},
		{"UndirectedBackward", c, "sym", store.Incoming, []store.NodeID{a}},
		{"TypeIsolation", a, "other", store.Both, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rd.Traverse(tc.origin, tc.typ, tc.dir)
			if err != nil {
				t.Fatalf("Traverse error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("Traverse = %v; want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("Traverse = %v; want %v", got, tc.want)
				}
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Persistence
//----------------------------------------------------------------------------//

// TestPersistence_RoundTrip commits nodes, properties, and edges to a
// Badger-backed store, reopens it, and verifies the arena is identical,
// including int properties surviving the JSON codec.
func TestPersistence_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := store.Open(store.WithPath(dir))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}

	tx := s.Begin()
	anchor, _ := tx.CreateNode()
	cell, _ := tx.CreateNode()
	_ = tx.SetProperty(anchor, "solved", false)
	_ = tx.SetProperty(cell, "row", 4)
	_ = tx.SetProperty(cell, "label", "corner")
	if err = tx.CreateEdge(anchor, cell, "member"); err != nil {
		t.Fatalf("CreateEdge error: %v", err)
	}
	tx.MarkSuccess()
	if err = tx.Release(); err != nil {
		t.Fatalf("Release error: %v", err)
	}
	if err = s.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	reopened := mustOpen(t, store.WithPath(dir))
	if got := reopened.NodeCount(); got != 2 {
		t.Fatalf("NodeCount after reopen = %d; want 2", got)
	}
	if got := reopened.EdgeCount(); got != 1 {
		t.Fatalf("EdgeCount after reopen = %d; want 1", got)
	}

	rd := reopened.Begin()
	defer func() { _ = rd.Release() }()

	if v, gerr := rd.GetProperty(cell, "row"); gerr != nil || v != 4 {
		t.Errorf("GetProperty(row) after reopen = %v, %v; want int 4, nil", v, gerr)
	}
	if v, gerr := rd.GetProperty(cell, "label"); gerr != nil || v != "corner" {
		t.Errorf("GetProperty(label) after reopen = %v, %v; want corner, nil", v, gerr)
	}
	if v, gerr := rd.GetProperty(anchor, "solved"); gerr != nil || v != false {
		t.Errorf("GetProperty(solved) after reopen = %v, %v; want false, nil", v, gerr)
	}
	peers, terr := rd.Traverse(anchor, "member", store.Outgoing)
	if terr != nil || len(peers) != 1 || peers[0] != cell {
		t.Errorf("Traverse after reopen = %v, %v; want [%d], nil", peers, terr, cell)
	}
}

// TestPersistence_DiscardNotFlushed verifies a discarded transaction
// leaves no records on disk.
func TestPersistence_DiscardNotFlushed(t *testing.T) {
	dir := t.TempDir()

	s, err := store.Open(store.WithPath(dir))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	tx := s.Begin()
	_, _ = tx.CreateNode()
	_ = tx.Release() // no MarkSuccess
	if err = s.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	reopened := mustOpen(t, store.WithPath(dir))
	if got := reopened.NodeCount(); got != 0 {
		t.Errorf("NodeCount after discarded txn reopen = %d; want 0", got)
	}
}
