package model

// Partial-update payloads. Every field is optional; only fields present in
// the request body are applied. Unknown fields are rejected at decode time.

// TicketTypePatch updates a single ticket tier in place.
type TicketTypePatch struct {
	Type             *string  `json:"type"`
	Price            *float64 `json:"price"`
	AvailableTickets *int     `json:"availableTickets"`
}

// Apply merges the set fields onto t, leaving the rest untouched.
func (p TicketTypePatch) Apply(t *TicketType) {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.AvailableTickets != nil {
		t.AvailableTickets = *p.AvailableTickets
	}
}

// SchedulePatch updates a single schedule entry in place.
type SchedulePatch struct {
	Date     *Date    `json:"date"`
	Location *string  `json:"location"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
}

// Apply merges the set fields onto s, leaving the rest untouched.
func (p SchedulePatch) Apply(s *ScheduleEntry) {
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.Lat != nil {
		s.Lat = p.Lat
	}
	if p.Lng != nil {
		s.Lng = p.Lng
	}
}

// EventUpdate carries the replaceable fields of an event. EventID is absent
// on purpose: it is immutable after creation.
type EventUpdate struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Image       *string          `json:"image"`
	Schedule    *[]ScheduleEntry `json:"schedule"`
	TicketTypes *[]TicketType    `json:"ticketTypes"`
	Organizer   *string          `json:"organizer"`
	Tags        *[]string        `json:"tags"`
}

// Apply merges the provided fields onto e. The merged record must be
// re-validated before it is persisted.
func (u EventUpdate) Apply(e *Event) {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Category != nil {
		e.Category = *u.Category
	}
	if u.Image != nil {
		e.Image = *u.Image
	}
	if u.Schedule != nil {
		e.Schedule = *u.Schedule
	}
	if u.TicketTypes != nil {
		e.TicketTypes = *u.TicketTypes
	}
	if u.Organizer != nil {
		e.Organizer = *u.Organizer
	}
	if u.Tags != nil {
		e.Tags = *u.Tags
	}
}

// UserUpdate carries the patchable fields of an account. A supplied password
// is re-hashed by the service before storage.
type UserUpdate struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}
