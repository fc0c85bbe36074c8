package catalog

import (
	"context"
	"errors"
	"testing"

	"nutricart-backend/domain"
)

type fakeCatalogRepository struct {
	CatalogRepository
	setFavoriteErr error
	setCalls       []setFavoriteCall
}

type setFavoriteCall struct {
	userID string
	itemID string
	kind   string
	value  bool
}

func (f *fakeCatalogRepository) SetFavorite(ctx context.Context, userID, itemID, sourceKind string, value bool) error {
	f.setCalls = append(f.setCalls, setFavoriteCall{userID, itemID, sourceKind, value})
	return f.setFavoriteErr
}

func TestToggleFavoriteCommits(t *testing.T) {
	t.Parallel()
	repo := &fakeCatalogRepository{}
	s := NewCatalogService(repo).(*catalogService)

	req := domain.ToggleFavoriteRequest{ItemID: "item-1", SourceKind: "food", CurrentValue: false}
	if err := s.ToggleFavorite(context.Background(), req, "user-1"); err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}

	want := setFavoriteCall{"user-1", "item-1", "food", true}
	if len(repo.setCalls) != 1 || repo.setCalls[0] != want {
		t.Errorf("SetFavorite calls = %+v, want [%+v]", repo.setCalls, want)
	}

	// the committed value stays visible through the mirror
	if got := s.favorites.Resolve("user-1", "food", "item-1", false); !got {
		t.Error("mirror lost the committed value")
	}
}

func TestToggleFavoriteRollsBackOnRejection(t *testing.T) {
	t.Parallel()
	repo := &fakeCatalogRepository{setFavoriteErr: errors.New("backend down")}
	s := NewCatalogService(repo).(*catalogService)

	req := domain.ToggleFavoriteRequest{ItemID: "item-1", SourceKind: "food", CurrentValue: true}
	err := s.ToggleFavorite(context.Background(), req, "user-1")
	if !errors.Is(err, domain.ErrFavoriteUpdate) {
		t.Fatalf("ToggleFavorite error = %v, want %v", err, domain.ErrFavoriteUpdate)
	}

	// rolled back to the pre-toggle value
	if got := s.favorites.Resolve("user-1", "food", "item-1", false); !got {
		t.Error("mirror not rolled back to previous value")
	}
}

func TestFavoriteMirrorResolveFallsBackToStored(t *testing.T) {
	t.Parallel()
	m := NewFavoriteMirror()

	if got := m.Resolve("user-1", "food", "item-1", true); !got {
		t.Error("Resolve without override ignored stored value")
	}

	m.Set("user-1", "food", "item-1", false)
	if got := m.Resolve("user-1", "food", "item-1", true); got {
		t.Error("Resolve ignored override")
	}

	// overrides are scoped per user and item
	if got := m.Resolve("user-2", "food", "item-1", true); !got {
		t.Error("override leaked across users")
	}
}
