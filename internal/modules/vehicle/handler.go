package vehicle

import (
	"encoding/json"
	"net/http"
	"strconv"

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
	router.Get("/vehicles", h.search)
	router.Get("/vehicles/counts", h.counts)
	router.Get("/vehicles/filters", h.filterOptions)
	router.Get("/vehicles/{vin}", h.details)

	router.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(user.RoleSalesperson, user.RoleManager, user.RoleOwner))
		r.Get("/vehicles/{vin}/sale-candidate", h.saleCandidate)
	})
	router.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(user.RoleInventoryClerk, user.RoleManager, user.RoleOwner))
		r.Post("/vehicles", h.intake)
	})
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())
	q := r.URL.Query()

	f := SearchFilter{
		VehicleType:  q.Get("vehicle_type"),
		Manufacturer: q.Get("manufacturer"),
		FuelType:     q.Get("fuel_type"),
		Color:        q.Get("color"),
		Keyword:      q.Get("keyword"),
	}
	if y := q.Get("year"); y != "" && y != FilterAny {
		year, err := strconv.Atoi(y)
		if err != nil {
			http.Error(w, "year must be numeric", http.StatusBadRequest)
			return
		}
		f.Year = year
	}
	if identity.Role.CanFilterByVIN() {
		f.VIN = q.Get("vin")
	}
	if identity.Role.CanFilterByStatus() {
		f.VehicleStatus = q.Get("vehicle_status")
	}

	rows, err := h.service.Search(r.Context(), f, identity.Role)
	if err != nil {
		http.Error(w, err.Error(), apperr.HTTPStatus(err))
		return
	}
	if rows == nil {
		rows = []*SearchRow{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"vehicles": rows})
}

func (h *Handler) details(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())
	d, err := h.service.Details(r.Context(), chi.URLParam(r, "vin"), identity.Role)
	if err != nil {
		http.Error(w, err.Error(), apperr.HTTPStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

func (h *Handler) saleCandidate(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.SaleCandidate(r.Context(), chi.URLParam(r, "vin"))
	if err != nil {
		http.Error(w, err.Error(), apperr.HTTPStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func (h *Handler) intake(w http.ResponseWriter, r *http.Request) {
	var req IntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	identity := auth.FromContext(r.Context())
	if err := h.service.Intake(r.Context(), req, identity.Username); err != nil {
		http.Error(w, err.Error(), apperr.HTTPStatus(err))
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) counts(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Counts(r.Context())
	if err != nil {
		http.Error(w, err.Error(), apperr.HTTPStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func (h *Handler) filterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.service.FilterOptions(r.Context())
	if err != nil {
		http.Error(w, err.Error(), apperr.HTTPStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(opts)
}
