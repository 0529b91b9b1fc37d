package service

import (
	"context"

	"github.com/socialive/event-catalog/internal/model"
	"github.com/socialive/event-catalog/internal/repository"
)

// RecommendationService returns events by category membership, annotated with
// the caller's favorite flags. There is no ranking or scoring.
type RecommendationService struct {
	events    repository.EventRepository
	favorites repository.FavoriteRepository
}

// NewRecommendationService constructs a RecommendationService.
func NewRecommendationService(events repository.EventRepository, favorites repository.FavoriteRepository) *RecommendationService {
	return &RecommendationService{events: events, favorites: favorites}
}

// ForCategories fetches all events whose category is in the given set and
// tags each with favorited=true iff its eventId is in the user's favorites.
func (s *RecommendationService) ForCategories(ctx context.Context, userID string, categories []string) ([]model.FavoritedEvent, error) {
	if len(categories) == 0 {
		return []model.FavoritedEvent{}, nil
	}

	events, err := s.events.FindByCategories(ctx, categories)
	if err != nil {
		return nil, err
	}
	favs, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	favorited := make(map[int]bool, len(favs))
	for _, f := range favs {
		favorited[f.EventID] = true
	}

	out := make([]model.FavoritedEvent, 0, len(events))
	for _, e := range events {
		out = append(out, model.FavoritedEvent{Event: e, Favorited: favorited[e.EventID]})
	}
	return out, nil
}
