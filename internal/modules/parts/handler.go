package parts

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/northavenue/dealership-backend/internal/apperr"
	"github.com/northavenue/dealership-backend/internal/modules/auth"
	"github.com/northavenue/dealership-backend/internal/modules/user"
	"github.com/northavenue/dealership-backend/internal/validation"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	// Part lines expose unit prices; the listing is scoped like the
	// cost columns in the vehicle views.
	router.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(user.RoleInventoryClerk, user.RoleManager, user.RoleOwner))
		r.Get("/vehicles/{vin}/parts", h.listByVehicle)
		r.Post("/vehicles/{vin}/parts-orders", h.addOrder)
		r.Put("/parts-orders/{order}/parts/{part}/status", h.updateStatus)
	})
}

func (h *Handler) addOrder(w http.ResponseWriter, r *http.Request) {
	var req AddOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.service.AddOrder(r.Context(), chi.URLParam(r, "vin"), req)
	if err != nil {
		http.Error(w, err.Error(), apperr.HTTPStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.service.UpdatePartStatus(r.Context(), chi.URLParam(r, "order"), chi.URLParam(r, "part"), req)
	if err != nil {
		http.Error(w, err.Error(), apperr.HTTPStatus(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listByVehicle(w http.ResponseWriter, r *http.Request) {
	lines, err := h.service.ListByVehicle(r.Context(), chi.URLParam(r, "vin"))
	if err != nil {
		http.Error(w, err.Error(), apperr.HTTPStatus(err))
		return
	}
	if lines == nil {
		lines = []*OrderLine{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"parts": lines})
}
