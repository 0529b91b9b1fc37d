package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/socialive/event-catalog/internal/model"
	"github.com/socialive/event-catalog/internal/query"
	"github.com/socialive/event-catalog/internal/repository"
	"github.com/socialive/event-catalog/internal/service"
)

// EventHandler holds the HTTP handlers for the event catalog endpoints.
type EventHandler struct {
	svc *service.EventService
	log *zap.Logger
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc *service.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{svc: svc, log: log}
}

// eventIDParam parses the eventId path parameter.
func eventIDParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "eventId"))
}

// Create handles POST /api/events
// Assigns the next eventId and stores the validated event.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var e model.Event
	if err := decodeJSON(r, &e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	created, err := h.svc.Create(r.Context(), &e)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		h.log.Error("create event", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create event")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /api/events
// Applies filters, sorting, and pagination, and returns the listing envelope.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	params := query.ParseListParams(r.URL.Query())

	list, err := h.svc.List(r.Context(), params)
	if err != nil {
		h.log.Error("list events", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch events")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /api/events/{eventId}
// Returns a single event by its numeric eventId.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := eventIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid eventId")
		return
	}

	event, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		h.log.Error("get event", zap.Int("eventId", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to get event")
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// Update handles PUT /api/events/{eventId}
// Applies the provided fields and returns the updated record.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := eventIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid eventId")
		return
	}

	var upd model.EventUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	updated, err := h.svc.Update(r.Context(), id, upd)
	if err != nil {
		var verr *model.ValidationError
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "Event not found")
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, verr.Error())
		default:
			h.log.Error("update event", zap.Int("eventId", id), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to update event")
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/events/{eventId}
// Removes the event and returns a confirmation message.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := eventIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid eventId")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		h.log.Error("delete event", zap.Int("eventId", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to delete event")
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Event deleted successfully"})
}

// PatchTicketType handles PATCH /api/events/{eventId}/ticketTypes/{index}
// Shallow-merges the patch onto one ticket tier and returns the full event.
func (h *EventHandler) PatchTicketType(w http.ResponseWriter, r *http.Request) {
	id, errID := eventIDParam(r)
	index, errIdx := strconv.Atoi(chi.URLParam(r, "index"))
	if errID != nil || errIdx != nil {
		writeError(w, http.StatusBadRequest, "Invalid eventId or index")
		return
	}

	var patch model.TicketTypePatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	updated, err := h.svc.PatchTicketType(r.Context(), id, index, patch)
	if err != nil {
		h.writePatchError(w, err, id, "Invalid ticket type index")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// PatchSchedule handles PATCH /api/events/{eventId}/schedule/{index}
// Shallow-merges the patch onto one schedule entry and returns the full event.
func (h *EventHandler) PatchSchedule(w http.ResponseWriter, r *http.Request) {
	id, errID := eventIDParam(r)
	index, errIdx := strconv.Atoi(chi.URLParam(r, "index"))
	if errID != nil || errIdx != nil {
		writeError(w, http.StatusBadRequest, "Invalid eventId or index")
		return
	}

	var patch model.SchedulePatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	updated, err := h.svc.PatchSchedule(r.Context(), id, index, patch)
	if err != nil {
		h.writePatchError(w, err, id, "Invalid schedule index")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *EventHandler) writePatchError(w http.ResponseWriter, err error, eventID int, indexMsg string) {
	var verr *model.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "Event not found")
	case errors.Is(err, service.ErrIndexOutOfRange):
		writeError(w, http.StatusBadRequest, indexMsg)
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	default:
		h.log.Error("patch event", zap.Int("eventId", eventID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to update event")
	}
}
