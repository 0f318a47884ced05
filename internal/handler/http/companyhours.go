package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/intempo-hq/timesheet-backend-go/internal/handler/http/response"
	"github.com/intempo-hq/timesheet-backend-go/internal/service/companyhours"
)

type CompanyHoursHandler interface {
	GetCompanyHours(w http.ResponseWriter, r *http.Request)
	GetMonthlyTotals(w http.ResponseWriter, r *http.Request)
	GetMonthWorkItems(w http.ResponseWriter, r *http.Request)
}

type CompanyHoursHandlerImpl struct {
	companyHoursService companyhours.Service
}

func NewCompanyHoursHandler(companyHoursService companyhours.Service) CompanyHoursHandler {
	return &CompanyHoursHandlerImpl{companyHoursService: companyHoursService}
}

// GetCompanyHours implements CompanyHoursHandler.
func (h *CompanyHoursHandlerImpl) GetCompanyHours(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")

	items, err := h.companyHoursService.GetCompanyHours(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// GetMonthlyTotals implements CompanyHoursHandler.
func (h *CompanyHoursHandlerImpl) GetMonthlyTotals(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")

	totals, err := h.companyHoursService.GetMonthlyTotals(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, totals)
}

// GetMonthWorkItems implements CompanyHoursHandler.
func (h *CompanyHoursHandlerImpl) GetMonthWorkItems(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")

	items, err := h.companyHoursService.GetMonthWorkItems(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}
