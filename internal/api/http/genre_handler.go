package http

import (
	"net/http"

	"movie-rental-backend/internal/service"

	"github.com/gorilla/mux"
)

type GenreHandler struct {
	svc service.GenreService
}

func NewGenreHandler(svc service.GenreService) *GenreHandler {
	return &GenreHandler{svc: svc}
}

type genreRequest struct {
	Name string `json:"name"`
}

func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.ListGenres(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, genres)
}

func (h *GenreHandler) Get(w http.ResponseWriter, r *http.Request) {
	genre, err := h.svc.GetGenre(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, genre)
}

func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req genreRequest
	if !decodeBody(w, r, &req) {
		return
	}
	genre, err := h.svc.CreateGenre(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, genre)
}

func (h *GenreHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req genreRequest
	if !decodeBody(w, r, &req) {
		return
	}
	genre, err := h.svc.UpdateGenre(r.Context(), mux.Vars(r)["id"], req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, genre)
}

func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	genre, err := h.svc.DeleteGenre(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, genre)
}
