package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"movierama/analytics-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics   service.AnalyticsInterface
	Recommender service.RecommenderInterface
}

func NewHandler(svc service.AnalyticsInterface, recommender service.RecommenderInterface) *Handler {
	return &Handler{Analytics: svc, Recommender: recommender}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/movies/top", h.getTopMovies).Methods("GET")
	r.HandleFunc("/api/movies/trending", h.getTrending).Methods("GET")
	r.HandleFunc("/api/movies/recommendations", h.getRecommendations).Methods("GET")
	r.HandleFunc("/api/movies/{movieId}/stats", h.getMovieStats).Methods("GET")
	r.HandleFunc("/api/movies/{movieId}/ratings/distribution", h.getRatingDistribution).Methods("GET")
	r.HandleFunc("/api/ratings/distribution", h.getGlobalRatingDistribution).Methods("GET")
}

func (h *Handler) getMovieStats(w http.ResponseWriter, r *http.Request) {
	movieID := mux.Vars(r)["movieId"]
	stats, err := h.Analytics.MovieStats(r.Context(), movieID)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if stats == nil {
		http.Error(w, "Movie stats not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(stats)
}

func (h *Handler) getTopMovies(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopMovies(r.Context(), parseLimit(r, 10))
	if err != nil || data == nil {
		json.NewEncoder(w).Encode([]interface{}{})
		return
	}
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) getTrending(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TrendingToday(r.Context(), parseLimit(r, 10))
	if err != nil || data == nil {
		json.NewEncoder(w).Encode([]interface{}{})
		return
	}
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) getRecommendations(w http.ResponseWriter, r *http.Request) {
	data, err := h.Recommender.Recommend(r.Context(), parseLimit(r, 20))
	if err != nil || data == nil {
		json.NewEncoder(w).Encode([]interface{}{})
		return
	}
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) getRatingDistribution(w http.ResponseWriter, r *http.Request) {
	data, _ := h.Analytics.RatingDistribution(r.Context(), mux.Vars(r)["movieId"])
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) getGlobalRatingDistribution(w http.ResponseWriter, r *http.Request) {
	data, _ := h.Analytics.RatingDistribution(r.Context(), "")
	json.NewEncoder(w).Encode(data)
}

func parseLimit(r *http.Request, fallback int) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		return fallback
	}
	return limit
}
