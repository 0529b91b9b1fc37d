package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/socialive/event-catalog/internal/model"
)

// FavoriteRepository handles persistence for (user, event) favorite pairs.
type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.Favorite, error)
	// Add creates the pair, or returns ErrDuplicate when it already exists.
	Add(ctx context.Context, userID string, eventID int) error
	// Remove deletes the pair, or returns ErrNotFound when it is absent.
	Remove(ctx context.Context, userID string, eventID int) error
}

type mongoFavoriteRepository struct {
	col *mongo.Collection
}

// NewFavoriteRepository constructs a FavoriteRepository over the favorites
// collection.
func NewFavoriteRepository(db *mongo.Database) FavoriteRepository {
	return &mongoFavoriteRepository{col: db.Collection("favorites")}
}

func (r *mongoFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]model.Favorite, error) {
	cur, err := r.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("find favorites: %w", err)
	}
	var favs []model.Favorite
	if err := cur.All(ctx, &favs); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}
	return favs, nil
}

func (r *mongoFavoriteRepository) Add(ctx context.Context, userID string, eventID int) error {
	pair := bson.M{"userId": userID, "eventId": eventID}

	err := r.col.FindOne(ctx, pair).Err()
	if err == nil {
		return ErrDuplicate
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("check favorite: %w", err)
	}

	fav := model.Favorite{UserID: userID, EventID: eventID, CreatedAt: time.Now().UTC()}
	if _, err := r.col.InsertOne(ctx, fav); err != nil {
		// The unique (userId, eventId) index closes the check-then-insert
		// window under concurrent adds.
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

func (r *mongoFavoriteRepository) Remove(ctx context.Context, userID string, eventID int) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"userId": userID, "eventId": eventID})
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
