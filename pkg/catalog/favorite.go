package catalog

import (
	"context"
	"sync"
)

// FavoriteWriter is the remote side of a favorite toggle; the catalog
// repository satisfies it.
type FavoriteWriter interface {
	SetFavorite(ctx context.Context, userID, itemID, sourceKind string, value bool) error
}

type toggleState int

const (
	toggleIdle toggleState = iota
	togglePending
	toggleCommitted
	toggleRolledBack
)

// favoriteToggle is one optimistic flip of an item's favorite flag:
// Idle -> Pending applies the new value locally, then the remote write
// decides between Committed and RolledBack. There is no queued retry; the
// user re-taps.
type favoriteToggle struct {
	state    toggleState
	userID   string
	itemID   string
	kind     string
	previous bool
}

func (t *favoriteToggle) apply(mirror *FavoriteMirror) {
	mirror.Set(t.userID, t.kind, t.itemID, !t.previous)
	t.state = togglePending
}

func (t *favoriteToggle) commit() {
	t.state = toggleCommitted
}

func (t *favoriteToggle) rollback(mirror *FavoriteMirror) {
	mirror.Set(t.userID, t.kind, t.itemID, t.previous)
	t.state = toggleRolledBack
}

// FavoriteMirror is the local optimistic view of favorite flags. Reads
// overlay it on top of the stored records so the flip is visible before the
// remote write lands.
type FavoriteMirror struct {
	mu        sync.Mutex
	overrides map[string]bool
}

func NewFavoriteMirror() *FavoriteMirror {
	return &FavoriteMirror{overrides: make(map[string]bool)}
}

func (m *FavoriteMirror) Set(userID, sourceKind, itemID string, value bool) {
	m.mu.Lock()
	m.overrides[mirrorKey(userID, sourceKind, itemID)] = value
	m.mu.Unlock()
}

// Resolve returns the overlaid value, falling back to the stored one.
func (m *FavoriteMirror) Resolve(userID, sourceKind, itemID string, stored bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.overrides[mirrorKey(userID, sourceKind, itemID)]; ok {
		return v
	}
	return stored
}

func mirrorKey(userID, sourceKind, itemID string) string {
	return userID + ":" + sourceKind + ":" + itemID
}
