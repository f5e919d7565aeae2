package http

import (
	"net/http"

	"movie-rental-backend/internal/service"

	"github.com/gorilla/mux"
)

type MovieHandler struct {
	svc service.MovieService
}

func NewMovieHandler(svc service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

type movieRequest struct {
	Title           string  `json:"title"`
	GenreID         string  `json:"genreId"`
	NumberInStock   int32   `json:"numberInStock"`
	DailyRentalRate float64 `json:"dailyRentalRate"`
}

func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.ListMovies(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	movie, err := h.svc.GetMovie(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if !decodeBody(w, r, &req) {
		return
	}
	movie, err := h.svc.CreateMovie(r.Context(), req.Title, req.GenreID, req.NumberInStock, req.DailyRentalRate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if !decodeBody(w, r, &req) {
		return
	}
	movie, err := h.svc.UpdateMovie(r.Context(), mux.Vars(r)["id"], req.Title, req.GenreID, req.NumberInStock, req.DailyRentalRate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	movie, err := h.svc.DeleteMovie(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movie)
}
