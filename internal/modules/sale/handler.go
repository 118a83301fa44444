package sale

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
		r.Use(auth.RequireRole(user.RoleSalesperson, user.RoleManager, user.RoleOwner))
		r.Post("/sales", h.recordSale)
	})
	router.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(user.RoleManager, user.RoleOwner))
		r.Get("/vehicles/{vin}/purchase-details", h.purchaseDetails)
		r.Get("/vehicles/{vin}/sale-details", h.saleDetails)
	})
}

func (h *Handler) recordSale(w http.ResponseWriter, r *http.Request) {
	var req RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	identity := auth.FromContext(r.Context())
	tx, err := h.service.RecordSale(r.Context(), req, identity.Username)
	if err != nil {
		http.Error(w, err.Error(), apperr.HTTPStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(tx)
}

func (h *Handler) purchaseDetails(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.PurchaseDetails(r.Context(), chi.URLParam(r, "vin"))
	if err != nil {
		http.Error(w, err.Error(), apperr.HTTPStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

func (h *Handler) saleDetails(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.SaleDetails(r.Context(), chi.URLParam(r, "vin"))
	if err != nil {
		http.Error(w, err.Error(), apperr.HTTPStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}
