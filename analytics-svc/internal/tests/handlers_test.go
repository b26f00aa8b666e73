package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "movierama/analytics-svc/internal/api/http"
	"movierama/analytics-svc/internal/domain"
	"movierama/analytics-svc/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(mockSvc *mocks.AnalyticsInterface) *mux.Router {
	handler := &httpapi.Handler{Analytics: mockSvc}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_getMovieStats(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("MovieStats", mock.Anything, "tt0111161").
		Return(&domain.MovieStats{MovieID: "tt0111161", AvgRating: 4.5, RatingsCount: 2}, nil).Once()

	router := setupTestRouter(mockSvc)

	req := httptest.NewRequest("GET", "/api/movies/tt0111161/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"movie_id":"tt0111161"`)
	assert.Contains(t, w.Body.String(), `"avg_rating":4.5`)
	assert.Contains(t, w.Body.String(), `"ratings_count":2`)
}

func TestHandler_getMovieStats_notFound(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("MovieStats", mock.Anything, "tt9999999").Return(nil, nil).Once()

	router := setupTestRouter(mockSvc)

	req := httptest.NewRequest("GET", "/api/movies/tt9999999/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_getMovieStats_storeError(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("MovieStats", mock.Anything, "tt0111161").
		Return(nil, assert.AnError).Once()

	router := setupTestRouter(mockSvc)

	req := httptest.NewRequest("GET", "/api/movies/tt0111161/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_getTopMovies(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("TopMovies", mock.Anything, 10).
		Return([]domain.MovieStats{
			{MovieID: "tt0111161", AvgRating: 4.8, RatingsCount: 12},
			{MovieID: "tt0068646", AvgRating: 4.6, RatingsCount: 9},
		}, nil).Once()

	router := setupTestRouter(mockSvc)

	req := httptest.NewRequest("GET", "/api/movies/top", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tt0111161"`)
	assert.Contains(t, w.Body.String(), `"tt0068646"`)
}

func TestHandler_getTopMovies_customLimit(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("TopMovies", mock.Anything, 3).
		Return([]domain.MovieStats{{MovieID: "tt0111161", AvgRating: 4.8}}, nil).Once()

	router := setupTestRouter(mockSvc)

	req := httptest.NewRequest("GET", "/api/movies/top?limit=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_getTopMovies_invalidLimitFallsBack(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("TopMovies", mock.Anything, 10).
		Return([]domain.MovieStats{}, nil).Once()

	router := setupTestRouter(mockSvc)

	req := httptest.NewRequest("GET", "/api/movies/top?limit=zero", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_getTopMovies_errorYieldsEmptyList(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("TopMovies", mock.Anything, 10).Return(nil, assert.AnError).Once()

	router := setupTestRouter(mockSvc)

	req := httptest.NewRequest("GET", "/api/movies/top", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_getTrending(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("TrendingToday", mock.Anything, 10).
		Return([]domain.TrendingMovie{{MovieID: "tt0111161", RatingsToday: 7}}, nil).Once()

	router := setupTestRouter(mockSvc)

	req := httptest.NewRequest("GET", "/api/movies/trending", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ratings_today":7`)
}

func TestHandler_getRecommendations(t *testing.T) {
	mockRec := mocks.NewRecommenderInterface(t)
	mockRec.On("Recommend", mock.Anything, 20).
		Return([]domain.Recommendation{
			{Movie: domain.Movie{ID: "tt0120689", Title: "The Green Mile"}, Score: 0.72},
		}, nil).Once()

	handler := &httpapi.Handler{Recommender: mockRec}
	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	req := httptest.NewRequest("GET", "/api/movies/recommendations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"movie_id":"tt0120689"`)
	assert.Contains(t, w.Body.String(), `"score":0.72`)
}

func TestHandler_getRecommendations_errorYieldsEmptyList(t *testing.T) {
	mockRec := mocks.NewRecommenderInterface(t)
	mockRec.On("Recommend", mock.Anything, 20).Return(nil, assert.AnError).Once()

	handler := &httpapi.Handler{Recommender: mockRec}
	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	req := httptest.NewRequest("GET", "/api/movies/recommendations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_getRatingDistribution(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("RatingDistribution", mock.Anything, "tt0111161").
		Return(map[string]int{"1": 0, "2": 1, "3": 0, "4": 2, "5": 5}, nil).Once()

	router := setupTestRouter(mockSvc)

	req := httptest.NewRequest("GET", "/api/movies/tt0111161/ratings/distribution", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"1":0,"2":1,"3":0,"4":2,"5":5}`, w.Body.String())
}

func TestHandler_getGlobalRatingDistribution(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("RatingDistribution", mock.Anything, "").
		Return(map[string]int{"1": 2, "2": 1, "3": 4, "4": 8, "5": 5}, nil).Once()

	router := setupTestRouter(mockSvc)

	req := httptest.NewRequest("GET", "/api/ratings/distribution", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"1":2,"2":1,"3":4,"4":8,"5":5}`, w.Body.String())
}

func TestHandler_health(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	router := setupTestRouter(mockSvc)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
