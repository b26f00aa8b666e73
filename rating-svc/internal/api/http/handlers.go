package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"movierama/rating-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Ratings service.RatingServiceInterface
}

func NewHandler(ratings service.RatingServiceInterface) *Handler {
	return &Handler{Ratings: ratings}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/ratings", h.submitRating).Methods("POST")
}

type submitRatingRequest struct {
	MovieID string  `json:"movie_id"`
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

func (h *Handler) submitRating(w http.ResponseWriter, r *http.Request) {
	var req submitRatingRequest
	// A non-integer rating fails decoding here, which is also invalid input.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
		return
	}

	if req.MovieID == "" || req.Rating == nil || *req.Rating < 1 || *req.Rating > 5 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
		return
	}

	event, err := h.Ratings.Submit(r.Context(), req.MovieID, *req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrMessagingUnavailable) {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "Messaging service unavailable"})
			return
		}
		log.Printf("Error submitting rating: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Rating received",
		"id":      event.ID,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
