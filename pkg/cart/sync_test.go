package cart

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeFlagStore struct {
	mu         sync.Mutex
	clearCalls []string
	setCalls   []flagCall
	clearErr   error
	setErr     error
	done       chan struct{}
}

type flagCall struct {
	userID string
	itemID string
	kind   string
	inCart bool
}

func newFakeFlagStore() *fakeFlagStore {
	return &fakeFlagStore{done: make(chan struct{}, 16)}
}

func (f *fakeFlagStore) SetCartFlag(ctx context.Context, userID, itemID, sourceKind string, inCart bool) error {
	f.mu.Lock()
	f.setCalls = append(f.setCalls, flagCall{userID, itemID, sourceKind, inCart})
	f.mu.Unlock()
	f.done <- struct{}{}
	return f.setErr
}

func (f *fakeFlagStore) ClearAllCartFlags(ctx context.Context, userID string) error {
	f.mu.Lock()
	f.clearCalls = append(f.clearCalls, userID)
	f.mu.Unlock()
	f.done <- struct{}{}
	return f.clearErr
}

func (f *fakeFlagStore) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-f.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for remote call %d of %d", i+1, n)
		}
	}
}

func newTestController(flags FlagStore) *SyncController {
	s := NewSyncController(flags)
	s.reassertDelay = time.Millisecond
	return s
}

func TestResetProtocolClearsLocallyFirst(t *testing.T) {
	t.Parallel()
	flags := newFakeFlagStore()
	s := newTestController(flags)

	c := New()
	addFood(t, c, nil)

	s.ResetProtocol("user-1", c)

	// phase 1 is synchronous: the cart is empty before any remote call lands
	if !c.IsEmpty() {
		t.Fatal("cart not cleared synchronously")
	}
	flags.wait(t, 2)
}

func TestResetProtocolReassertsOnce(t *testing.T) {
	t.Parallel()
	flags := newFakeFlagStore()
	s := newTestController(flags)

	s.ResetProtocol("user-1", New())
	flags.wait(t, 2)

	flags.mu.Lock()
	defer flags.mu.Unlock()
	if len(flags.clearCalls) != 2 {
		t.Fatalf("ClearAllCartFlags called %d times, want 2", len(flags.clearCalls))
	}
	for _, userID := range flags.clearCalls {
		if userID != "user-1" {
			t.Errorf("ClearAllCartFlags called for %q, want user-1", userID)
		}
	}
}

func TestResetProtocolSwallowsRemoteFailure(t *testing.T) {
	t.Parallel()
	flags := newFakeFlagStore()
	flags.clearErr = errors.New("backend down")
	s := newTestController(flags)

	c := New()
	addFood(t, c, nil)

	s.ResetProtocol("user-1", c)
	flags.wait(t, 2)

	// a failed remote reset never re-populates or errors the local cart
	if !c.IsEmpty() {
		t.Error("remote failure re-populated local cart")
	}
}

func TestReassertFlagsLeavesLocalStateAlone(t *testing.T) {
	t.Parallel()
	flags := newFakeFlagStore()
	s := newTestController(flags)

	c := New()
	addFood(t, c, nil)

	s.ReassertFlags("user-1")
	flags.wait(t, 2)

	if c.IsEmpty() {
		t.Error("ReassertFlags touched local cart state")
	}
	flags.mu.Lock()
	defer flags.mu.Unlock()
	if len(flags.clearCalls) != 2 {
		t.Errorf("ClearAllCartFlags called %d times, want 2", len(flags.clearCalls))
	}
}

func TestMarkInCartFireAndForget(t *testing.T) {
	t.Parallel()
	flags := newFakeFlagStore()
	flags.setErr = errors.New("backend down")
	s := newTestController(flags)

	// must not block or panic on failure
	s.MarkInCart("user-1", "item-1", "food", true)
	flags.wait(t, 1)

	flags.mu.Lock()
	defer flags.mu.Unlock()
	want := flagCall{"user-1", "item-1", "food", true}
	if len(flags.setCalls) != 1 || flags.setCalls[0] != want {
		t.Errorf("SetCartFlag calls = %+v, want [%+v]", flags.setCalls, want)
	}
}
