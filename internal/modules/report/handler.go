package report

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/northavenue/dealership-backend/internal/apperr"
	"github.com/northavenue/dealership-backend/internal/modules/auth"
	"github.com/northavenue/dealership-backend/internal/modules/user"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(user.RoleManager, user.RoleOwner))
		r.Get("/reports/seller-history", h.sellerHistory)
		r.Get("/reports/average-inventory-time", h.averageInventoryTime)
		r.Get("/reports/price-per-condition", h.pricePerCondition)
		r.Get("/reports/parts-statistics", h.partsStatistics)
		r.Get("/reports/monthly-sales", h.monthlySales)
		r.Get("/reports/monthly-sales/drilldown", h.drilldown)
	})
}

func (h *Handler) sellerHistory(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.SellerHistory(r.Context())
	writeRows(w, map[string]interface{}{"sellers": emptyIfNil(rows)}, err)
}

func (h *Handler) averageInventoryTime(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.AverageInventoryTime(r.Context())
	writeRows(w, map[string]interface{}{"vehicle_types": emptyIfNil(rows)}, err)
}

func (h *Handler) pricePerCondition(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.PricePerCondition(r.Context())
	writeRows(w, map[string]interface{}{"vehicle_types": emptyIfNil(rows)}, err)
}

func (h *Handler) partsStatistics(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.PartsStatistics(r.Context())
	writeRows(w, map[string]interface{}{"vendors": emptyIfNil(rows)}, err)
}

func (h *Handler) monthlySales(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.MonthlySales(r.Context())
	writeRows(w, map[string]interface{}{"months": emptyIfNil(rows)}, err)
}

func (h *Handler) drilldown(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "year must be numeric", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "month must be 1-12", http.StatusBadRequest)
		return
	}
	rows, err := h.service.MonthlySalesDrilldown(r.Context(), year, month)
	writeRows(w, map[string]interface{}{"salespeople": emptyIfNil(rows)}, err)
}

func writeRows(w http.ResponseWriter, payload interface{}, err error) {
	if err != nil {
		http.Error(w, err.Error(), apperr.HTTPStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func emptyIfNil[T any](rows []*T) []*T {
	if rows == nil {
		return []*T{}
	}
	return rows
}
