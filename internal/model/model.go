// Package model defines the core domain types for the event catalog.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories is the fixed set of allowed event categories.
var Categories = []string{
	"concert", "theatre", "sports", "festival",
	"conference", "comedy", "workshop",
	"exhibition", "movie", "other",
}

// ValidCategory reports whether c is a member of the allowed category set.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Event is a ticketed happening with one or more scheduled occurrences and
// one or more ticket tiers. EventID is the externally visible identifier,
// assigned sequentially at creation and immutable afterward.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	EventID     int                `bson:"eventId" json:"eventId"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category" validate:"required,oneof=concert theatre sports festival conference comedy workshop exhibition movie other"`
	Image       string             `bson:"image" json:"image"`
	Schedule    []ScheduleEntry    `bson:"schedule" json:"schedule" validate:"required,min=1,dive"`
	TicketTypes []TicketType       `bson:"ticketTypes" json:"ticketTypes" validate:"required,min=1,dive"`
	Organizer   string             `bson:"organizer" json:"organizer" validate:"required"`
	Tags        []string           `bson:"tags" json:"tags"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ScheduleEntry is one date+location occurrence of an event.
type ScheduleEntry struct {
	Date     Date     `bson:"date" json:"date"`
	Location string   `bson:"location" json:"location" validate:"required"`
	Lat      *float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng      *float64 `bson:"lng,omitempty" json:"lng,omitempty"`
}

// TicketType is a priced tier of tickets with a remaining-availability count.
type TicketType struct {
	Type             string  `bson:"type" json:"type" validate:"required"`
	Price            float64 `bson:"price" json:"price" validate:"gte=0"`
	AvailableTickets int     `bson:"availableTickets" json:"availableTickets" validate:"gte=0"`
}

// Favorite is a user's bookmark of an event, unique per (userId, eventId).
type Favorite struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `bson:"userId" json:"userId"`
	EventID   int                `bson:"eventId" json:"eventId"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// User is an account record. The password hash is stored but never serialized.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name" validate:"required"`
	Email        string    `bson:"email" json:"email" validate:"required,email"`
	PasswordHash string    `bson:"password" json:"-"`
	CreatedAt    time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// FavoritedEvent is an event annotated with the caller's favorite flag.
type FavoritedEvent struct {
	Event
	Favorited bool `json:"favorited"`
}

// EventList is the paginated listing envelope.
type EventList struct {
	Page         int     `json:"page"`
	TotalPages   int     `json:"totalPages"`
	TotalResults int64   `json:"totalResults"`
	Events       []Event `json:"events"`
}

// MessageResponse is the standard JSON envelope for errors and confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for a credential check.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// FavoriteRequest is the payload for adding or removing a favorite.
type FavoriteRequest struct {
	UserID  string `json:"userId"`
	EventID int    `json:"eventId"`
}
