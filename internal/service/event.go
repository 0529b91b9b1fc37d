// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/socialive/event-catalog/internal/model"
	"github.com/socialive/event-catalog/internal/query"
	"github.com/socialive/event-catalog/internal/repository"
)

// ErrIndexOutOfRange is returned when a subentry index does not address an
// existing schedule or ticket-type entry.
var ErrIndexOutOfRange = errors.New("index out of range")

// EventService orchestrates event catalog operations.
type EventService struct {
	events repository.EventRepository
}

// NewEventService constructs an EventService.
func NewEventService(events repository.EventRepository) *EventService {
	return &EventService{events: events}
}

// Create assigns the next sequential eventId, validates the record, and
// persists it.
func (s *EventService) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	normalizeEvent(e)

	nextID, err := s.events.NextEventID(ctx)
	if err != nil {
		return nil, err
	}
	e.EventID = nextID

	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List executes the filtered, sorted, paginated listing and assembles the
// pagination envelope. The total counts every match, not just the page.
func (s *EventService) List(ctx context.Context, p query.ListParams) (*model.EventList, error) {
	events, total, err := s.events.List(ctx, p, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []model.Event{}
	}
	return &model.EventList{
		Page:         p.Page,
		TotalPages:   p.TotalPages(total),
		TotalResults: total,
		Events:       events,
	}, nil
}

// Get returns a single event by its eventId.
func (s *EventService) Get(ctx context.Context, eventID int) (*model.Event, error) {
	return s.events.GetByEventID(ctx, eventID)
}

// Update applies the provided fields to an existing event, re-validates the
// merged record, and persists it.
func (s *EventService) Update(ctx context.Context, eventID int, upd model.EventUpdate) (*model.Event, error) {
	e, err := s.events.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	upd.Apply(e)
	normalizeEvent(e)
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return s.events.Replace(ctx, e)
}

// Delete removes an event by its eventId. Favorites referencing the event are
// left in place.
func (s *EventService) Delete(ctx context.Context, eventID int) error {
	return s.events.Delete(ctx, eventID)
}

// PatchTicketType shallow-merges a patch onto one ticket tier and persists
// the whole parent record. The read-modify-write is not atomic; concurrent
// patches to the same event are last-write-wins.
func (s *EventService) PatchTicketType(ctx context.Context, eventID, index int, patch model.TicketTypePatch) (*model.Event, error) {
	e, err := s.events.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(e.TicketTypes) {
		return nil, ErrIndexOutOfRange
	}

	patch.Apply(&e.TicketTypes[index])
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return s.events.Replace(ctx, e)
}

// PatchSchedule shallow-merges a patch onto one schedule entry and persists
// the whole parent record, with the same last-write-wins caveat as
// PatchTicketType.
func (s *EventService) PatchSchedule(ctx context.Context, eventID, index int, patch model.SchedulePatch) (*model.Event, error) {
	e, err := s.events.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(e.Schedule) {
		return nil, ErrIndexOutOfRange
	}

	patch.Apply(&e.Schedule[index])
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return s.events.Replace(ctx, e)
}

// normalizeEvent trims user-supplied strings and fills set-like defaults.
func normalizeEvent(e *model.Event) {
	e.Title = strings.TrimSpace(e.Title)
	e.Organizer = strings.TrimSpace(e.Organizer)
	for i := range e.Schedule {
		e.Schedule[i].Location = strings.TrimSpace(e.Schedule[i].Location)
	}
	for i := range e.TicketTypes {
		e.TicketTypes[i].Type = strings.TrimSpace(e.TicketTypes[i].Type)
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
}
