package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() *Event {
	return &Event{
		EventID:  1,
		Title:    "Jazz Night",
		Category: "concert",
		Schedule: []ScheduleEntry{
			{Date: NewDate(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)), Location: "Athens"},
		},
		TicketTypes: []TicketType{
			{Type: "General", Price: 20, AvailableTickets: 100},
		},
		Organizer: "Socialive",
	}
}

func TestEventValidateOK(t *testing.T) {
	require.NoError(t, validEvent().Validate())
}

func TestEventValidateFailures(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(e *Event)
		wantField string
	}{
		{
			name:      "missing title",
			mutate:    func(e *Event) { e.Title = "" },
			wantField: "title",
		},
		{
			name:      "unknown category",
			mutate:    func(e *Event) { e.Category = "opera" },
			wantField: "category",
		},
		{
			name:      "empty schedule",
			mutate:    func(e *Event) { e.Schedule = nil },
			wantField: "schedule",
		},
		{
			name:      "empty ticketTypes",
			mutate:    func(e *Event) { e.TicketTypes = []TicketType{} },
			wantField: "ticketTypes",
		},
		{
			name:      "negative price",
			mutate:    func(e *Event) { e.TicketTypes[0].Price = -1 },
			wantField: "ticketTypes[0].price",
		},
		{
			name:      "negative availability",
			mutate:    func(e *Event) { e.TicketTypes[0].AvailableTickets = -5 },
			wantField: "ticketTypes[0].availableTickets",
		},
		{
			name:      "blank ticket type",
			mutate:    func(e *Event) { e.TicketTypes[0].Type = "" },
			wantField: "ticketTypes[0].type",
		},
		{
			name:      "blank location",
			mutate:    func(e *Event) { e.Schedule[0].Location = "" },
			wantField: "schedule[0].location",
		},
		{
			name:      "zero schedule date",
			mutate:    func(e *Event) { e.Schedule[0].Date = Date{} },
			wantField: "schedule[0].date",
		},
		{
			name:      "missing organizer",
			mutate:    func(e *Event) { e.Organizer = "" },
			wantField: "organizer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(e)

			err := e.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("theatre"))
	assert.True(t, ValidCategory("other"))
	assert.False(t, ValidCategory("opera"))
	assert.False(t, ValidCategory(""))
}

func TestDateJSONRoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2030-01-01"`), &d))
	assert.Equal(t, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), d.Time())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2030-01-01"`, string(out))
}

func TestDateJSONAcceptsTimestamps(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2030-01-01T18:30:00Z"`), &d))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2030-01-01"`, string(out))
}

func TestDateJSONRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestScheduleDateNormalizedInEventJSON(t *testing.T) {
	e := validEvent()
	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"date":"2030-01-01"`)
}

func TestTicketTypePatchApply(t *testing.T) {
	tt := TicketType{Type: "General", Price: 20, AvailableTickets: 100}

	price := 25.0
	TicketTypePatch{Price: &price}.Apply(&tt)

	assert.Equal(t, TicketType{Type: "General", Price: 25, AvailableTickets: 100}, tt)
}

func TestSchedulePatchApply(t *testing.T) {
	s := ScheduleEntry{
		Date:     NewDate(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
		Location: "Athens",
	}

	loc := "Thessaloniki"
	SchedulePatch{Location: &loc}.Apply(&s)

	assert.Equal(t, "Thessaloniki", s.Location)
	assert.Equal(t, "2030-01-01", s.Date.String())
}

func TestEventUpdateApplyLeavesUnsetFields(t *testing.T) {
	e := validEvent()
	title := "Jazz Night Vol. 2"
	EventUpdate{Title: &title}.Apply(e)

	assert.Equal(t, "Jazz Night Vol. 2", e.Title)
	assert.Equal(t, "concert", e.Category)
	assert.Len(t, e.Schedule, 1)
	assert.Equal(t, 1, e.EventID)
}
