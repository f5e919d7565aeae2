package http

import (
	"net/http"

	"movie-rental-backend/internal/service"

	"github.com/gorilla/mux"
)

// RentalHandler exposes the rental workflow: POST /rentals checks out a
// movie, POST /returns processes the return.
type RentalHandler struct {
	svc service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

type rentalRequest struct {
	CustomerID string `json:"customerId"`
	MovieID    string `json:"movieId"`
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.svc.ListRentals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	rental, err := h.svc.GetRental(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rental, err := h.svc.CreateRental(r.Context(), req.CustomerID, req.MovieID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rental, err := h.svc.ProcessReturn(r.Context(), req.CustomerID, req.MovieID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}
