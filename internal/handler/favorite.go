package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/socialive/event-catalog/internal/model"
	"github.com/socialive/event-catalog/internal/repository"
	"github.com/socialive/event-catalog/internal/service"
)

// FavoriteHandler holds the HTTP handlers for the favorites endpoints.
type FavoriteHandler struct {
	svc *service.FavoriteService
	log *zap.Logger
}

// NewFavoriteHandler constructs a FavoriteHandler.
func NewFavoriteHandler(svc *service.FavoriteService, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{svc: svc, log: log}
}

// userID resolves the acting user, falling back to the guest account.
func userID(s string) string {
	if s == "" {
		return service.DefaultUserID
	}
	return s
}

// List handles GET /api/favorites
// Returns the user's favorite events, each tagged favorited=true.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListForUser(r.Context(), userID(r.URL.Query().Get("userId")))
	if err != nil {
		h.log.Error("list favorites", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Error fetching favorites.")
		return
	}

	writeJSON(w, http.StatusOK, events)
}

// Add handles POST /api/favorites
// Creates the (userId, eventId) pair, rejecting duplicates.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req model.FavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.EventID == 0 {
		writeError(w, http.StatusBadRequest, "Missing eventId")
		return
	}

	if err := h.svc.Add(r.Context(), userID(req.UserID), req.EventID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(w, http.StatusConflict, "Already favorited")
			return
		}
		h.log.Error("add favorite", zap.Int("eventId", req.EventID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Error saving favorite.")
		return
	}

	writeJSON(w, http.StatusCreated, model.MessageResponse{Message: "Event favorited"})
}

// Remove handles DELETE /api/favorites
// Deletes the (userId, eventId) pair.
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req model.FavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.EventID == 0 {
		writeError(w, http.StatusBadRequest, "Missing eventId")
		return
	}

	if err := h.svc.Remove(r.Context(), userID(req.UserID), req.EventID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Favorite not found")
			return
		}
		h.log.Error("remove favorite", zap.Int("eventId", req.EventID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Error deleting favorite.")
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Favorite removed"})
}

// RecommendationHandler holds the HTTP handler for category recommendations.
type RecommendationHandler struct {
	svc *service.RecommendationService
	log *zap.Logger
}

// NewRecommendationHandler constructs a RecommendationHandler.
func NewRecommendationHandler(svc *service.RecommendationService, log *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{svc: svc, log: log}
}

// Recommend handles POST /api/recoms
// The body is a JSON array of category names; the response is the matching
// events annotated with the user's favorite flags.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var categories []string
	if err := decodeJSON(r, &categories); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	events, err := h.svc.ForCategories(r.Context(), userID(r.URL.Query().Get("userId")), categories)
	if err != nil {
		h.log.Error("recommend events", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch recommendations")
		return
	}

	writeJSON(w, http.StatusOK, events)
}
