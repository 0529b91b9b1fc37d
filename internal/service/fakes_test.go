package service

import (
	"context"
	"time"

	"github.com/socialive/event-catalog/internal/model"
	"github.com/socialive/event-catalog/internal/query"
	"github.com/socialive/event-catalog/internal/repository"
)

// In-memory repository stand-ins. Filter semantics live in the query package
// and are tested there; these fakes only mimic storage bookkeeping.

type fakeEventRepo struct {
	events []model.Event
	total  int64
}

func (f *fakeEventRepo) NextEventID(ctx context.Context) (int, error) {
	max := 0
	for _, e := range f.events {
		if e.EventID > max {
			max = e.EventID
		}
	}
	return max + 1, nil
}

func (f *fakeEventRepo) Create(ctx context.Context, e *model.Event) error {
	e.CreatedAt = time.Now().UTC()
	e.UpdatedAt = e.CreatedAt
	f.events = append(f.events, *e)
	return nil
}

func (f *fakeEventRepo) List(ctx context.Context, p query.ListParams, now time.Time) ([]model.Event, int64, error) {
	total := f.total
	if total == 0 {
		total = int64(len(f.events))
	}
	return f.events, total, nil
}

func (f *fakeEventRepo) GetByEventID(ctx context.Context, eventID int) (*model.Event, error) {
	for _, e := range f.events {
		if e.EventID == eventID {
			out := e
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeEventRepo) Replace(ctx context.Context, e *model.Event) (*model.Event, error) {
	for i := range f.events {
		if f.events[i].EventID == e.EventID {
			e.UpdatedAt = time.Now().UTC()
			f.events[i] = *e
			out := *e
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeEventRepo) Delete(ctx context.Context, eventID int) error {
	for i := range f.events {
		if f.events[i].EventID == eventID {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeEventRepo) FindByCategories(ctx context.Context, categories []string) ([]model.Event, error) {
	var out []model.Event
	for _, e := range f.events {
		for _, c := range categories {
			if e.Category == c {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeEventRepo) FindByEventIDs(ctx context.Context, eventIDs []int) ([]model.Event, error) {
	var out []model.Event
	for _, e := range f.events {
		for _, id := range eventIDs {
			if e.EventID == id {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

type fakeFavoriteRepo struct {
	pairs map[string]map[int]bool
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{pairs: map[string]map[int]bool{}}
}

func (f *fakeFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]model.Favorite, error) {
	var out []model.Favorite
	for id := range f.pairs[userID] {
		out = append(out, model.Favorite{UserID: userID, EventID: id})
	}
	return out, nil
}

func (f *fakeFavoriteRepo) Add(ctx context.Context, userID string, eventID int) error {
	if f.pairs[userID][eventID] {
		return repository.ErrDuplicate
	}
	if f.pairs[userID] == nil {
		f.pairs[userID] = map[int]bool{}
	}
	f.pairs[userID][eventID] = true
	return nil
}

func (f *fakeFavoriteRepo) Remove(ctx context.Context, userID string, eventID int) error {
	if !f.pairs[userID][eventID] {
		return repository.ErrNotFound
	}
	delete(f.pairs[userID], eventID)
	return nil
}

type fakeUserRepo struct {
	users map[string]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]model.User{}}
}

func (f *fakeUserRepo) List(ctx context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByName(ctx context.Context, name string) (*model.User, error) {
	for _, u := range f.users {
		if u.Name == name {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, u *model.User) error {
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *model.User) (*model.User, error) {
	if _, ok := f.users[u.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	f.users[u.ID] = *u
	out := *u
	return &out, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}
