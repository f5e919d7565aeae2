package http

import (
	"net/http"

	"movie-rental-backend/internal/service"

	"github.com/gorilla/mux"
)

type CustomerHandler struct {
	svc service.CustomerService
}

func NewCustomerHandler(svc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

type customerRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	IsGold bool   `json:"isGold"`
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.ListCustomers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.svc.GetCustomer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	customer, err := h.svc.CreateCustomer(r.Context(), req.Name, req.Phone, req.IsGold)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	customer, err := h.svc.UpdateCustomer(r.Context(), mux.Vars(r)["id"], req.Name, req.Phone, req.IsGold)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	customer, err := h.svc.DeleteCustomer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}
