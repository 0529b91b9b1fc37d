package service

import (
	"context"

	"github.com/socialive/event-catalog/internal/model"
	"github.com/socialive/event-catalog/internal/repository"
)

// DefaultUserID identifies the guest account used when a request carries no
// user identifier.
const DefaultUserID = "guest123"

// FavoriteService manages a user's event bookmarks.
type FavoriteService struct {
	favorites repository.FavoriteRepository
	events    repository.EventRepository
}

// NewFavoriteService constructs a FavoriteService.
func NewFavoriteService(favorites repository.FavoriteRepository, events repository.EventRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites, events: events}
}

// ListForUser resolves the user's favorites into full event records. Every
// returned event carries favorited=true by definition.
func (s *FavoriteService) ListForUser(ctx context.Context, userID string) ([]model.FavoritedEvent, error) {
	favs, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(favs) == 0 {
		return []model.FavoritedEvent{}, nil
	}

	ids := make([]int, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.EventID)
	}
	events, err := s.events.FindByEventIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.FavoritedEvent, 0, len(events))
	for _, e := range events {
		out = append(out, model.FavoritedEvent{Event: e, Favorited: true})
	}
	return out, nil
}

// Add bookmarks an event for the user. Adding an existing pair fails with
// repository.ErrDuplicate.
func (s *FavoriteService) Add(ctx context.Context, userID string, eventID int) error {
	return s.favorites.Add(ctx, userID, eventID)
}

// Remove deletes the bookmark, failing with repository.ErrNotFound when the
// pair does not exist.
func (s *FavoriteService) Remove(ctx context.Context, userID string, eventID int) error {
	return s.favorites.Remove(ctx, userID, eventID)
}
