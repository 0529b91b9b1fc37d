// Package repository implements all MongoDB queries for the event catalog.
// It uses the official driver directly (no ODM) for transparency.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/socialive/event-catalog/internal/model"
	"github.com/socialive/event-catalog/internal/query"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique key already exists.
var ErrDuplicate = errors.New("already exists")

// EventRepository handles persistence for events.
type EventRepository interface {
	// NextEventID returns one plus the highest assigned eventId, or 1 when
	// the collection is empty.
	NextEventID(ctx context.Context) (int, error)
	Create(ctx context.Context, e *model.Event) error
	// List returns one page of matching events plus the unpaginated total.
	List(ctx context.Context, p query.ListParams, now time.Time) ([]model.Event, int64, error)
	GetByEventID(ctx context.Context, eventID int) (*model.Event, error)
	// Replace overwrites the stored record addressed by e.EventID and
	// returns the persisted result, or ErrNotFound.
	Replace(ctx context.Context, e *model.Event) (*model.Event, error)
	Delete(ctx context.Context, eventID int) error
	FindByCategories(ctx context.Context, categories []string) ([]model.Event, error)
	FindByEventIDs(ctx context.Context, eventIDs []int) ([]model.Event, error)
}

type mongoEventRepository struct {
	col *mongo.Collection
}

// NewEventRepository constructs an EventRepository over the events collection.
func NewEventRepository(db *mongo.Database) EventRepository {
	return &mongoEventRepository{col: db.Collection("events")}
}

func (r *mongoEventRepository) NextEventID(ctx context.Context) (int, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "eventId", Value: -1}}).
		SetProjection(bson.M{"eventId": 1})

	var latest struct {
		EventID int `bson:"eventId"`
	}
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&latest)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 1, nil
		}
		return 0, fmt.Errorf("find latest eventId: %w", err)
	}
	return latest.EventID + 1, nil
}

func (r *mongoEventRepository) Create(ctx context.Context, e *model.Event) error {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert event: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid
	}
	return nil
}

func (r *mongoEventRepository) List(ctx context.Context, p query.ListParams, now time.Time) ([]model.Event, int64, error) {
	filter := p.Filter(now)

	opts := options.Find().
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))
	if sort := p.Sort(); sort != nil {
		opts.SetSort(sort)
	}

	var (
		events []model.Event
		total  int64
	)
	// The count ignores skip/limit and runs alongside the page fetch.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cur, err := r.col.Find(gctx, filter, opts)
		if err != nil {
			return fmt.Errorf("find events: %w", err)
		}
		if err := cur.All(gctx, &events); err != nil {
			return fmt.Errorf("decode events: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		n, err := r.col.CountDocuments(gctx, filter)
		if err != nil {
			return fmt.Errorf("count events: %w", err)
		}
		total = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *mongoEventRepository) GetByEventID(ctx context.Context, eventID int) (*model.Event, error) {
	var e model.Event
	err := r.col.FindOne(ctx, bson.M{"eventId": eventID}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

func (r *mongoEventRepository) Replace(ctx context.Context, e *model.Event) (*model.Event, error) {
	e.UpdatedAt = time.Now().UTC()

	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	var updated model.Event
	err := r.col.FindOneAndReplace(ctx, bson.M{"eventId": e.EventID}, e, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("replace event: %w", err)
	}
	return &updated, nil
}

func (r *mongoEventRepository) Delete(ctx context.Context, eventID int) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"eventId": eventID})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoEventRepository) FindByCategories(ctx context.Context, categories []string) ([]model.Event, error) {
	return r.findAll(ctx, bson.M{"category": bson.M{"$in": categories}})
}

func (r *mongoEventRepository) FindByEventIDs(ctx context.Context, eventIDs []int) ([]model.Event, error) {
	return r.findAll(ctx, bson.M{"eventId": bson.M{"$in": eventIDs}})
}

func (r *mongoEventRepository) findAll(ctx context.Context, filter bson.M) ([]model.Event, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	var events []model.Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}
