package customer

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
	router.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(user.RoleInventoryClerk, user.RoleSalesperson, user.RoleManager, user.RoleOwner))
		r.Post("/customers", h.addCustomer)
		r.Get("/customers/identifiers", h.listIdentifiers)
	})
}

func (h *Handler) addCustomer(w http.ResponseWriter, r *http.Request) {
	var req AddCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.service.AddCustomer(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), apperr.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"customer_id": id.String()})
}

func (h *Handler) listIdentifiers(w http.ResponseWriter, r *http.Request) {
	ids, err := h.service.ListIdentifiers(r.Context())
	if err != nil {
		http.Error(w, err.Error(), apperr.HTTPStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"identifiers": ids})
}
