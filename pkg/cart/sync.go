package cart

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// FlagStore mirrors the per-item "in cart" flags on the backend catalog
// records. The catalog repository satisfies it.
type FlagStore interface {
	SetCartFlag(ctx context.Context, userID, itemID, sourceKind string, inCart bool) error
	ClearAllCartFlags(ctx context.Context, userID string) error
}

const defaultReassertDelay = 100 * time.Millisecond

// SyncController keeps the backend in-cart flags eventually consistent with
// the local cart. Every remote call here is best effort: failures are logged
// and swallowed, never surfaced to the caller, and never touch local state.
// A stale reserved flag is cosmetic; the aggregate is always derived from the
// local cart alone.
type SyncController struct {
	flags         FlagStore
	reassertDelay time.Duration
}

func NewSyncController(flags FlagStore) *SyncController {
	return &SyncController{
		flags:         flags,
		reassertDelay: defaultReassertDelay,
	}
}

// ResetProtocol clears the local cart synchronously, then resets the backend
// flags in the background: one batched clear immediately and one more after a
// short delay. The re-assert sweeps the race where an add-to-cart write
// landed between the user's clear action and the first reset.
func (s *SyncController) ResetProtocol(userID string, c *Cart) {
	c.Clear()
	go s.resetFlags(userID)
}

// ReassertFlags runs only the remote phases of the reset protocol. Used on
// screen focus when the local cart is already empty, to sweep dangling flags
// without touching local state.
func (s *SyncController) ReassertFlags(userID string) {
	go s.resetFlags(userID)
}

func (s *SyncController) resetFlags(userID string) {
	if err := s.flags.ClearAllCartFlags(context.Background(), userID); err != nil {
		log.Errorf("cart sync: clearing cart flags for user %s: %v", userID, err)
	}

	time.Sleep(s.reassertDelay)

	if err := s.flags.ClearAllCartFlags(context.Background(), userID); err != nil {
		log.Errorf("cart sync: re-asserting cart flags for user %s: %v", userID, err)
	}
}

// MarkInCart mirrors a single item's flag, fire and forget.
func (s *SyncController) MarkInCart(userID, itemID, sourceKind string, inCart bool) {
	go func() {
		if err := s.flags.SetCartFlag(context.Background(), userID, itemID, sourceKind, inCart); err != nil {
			log.Errorf("cart sync: setting cart flag for item %s: %v", itemID, err)
		}
	}()
}
