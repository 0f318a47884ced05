package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/intempo-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/intempo-hq/timesheet-backend-go/internal/handler/http/response"
	timesheetservice "github.com/intempo-hq/timesheet-backend-go/internal/service/timesheet"
)

type TimesheetHandler interface {
	SaveWorkItem(w http.ResponseWriter, r *http.Request)
	GetWorkItems(w http.ResponseWriter, r *http.Request)
	SaveDailyExpense(w http.ResponseWriter, r *http.Request)
	GetDailyExpenses(w http.ResponseWriter, r *http.Request)
	ApproveHoliday(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheetservice.Service
}

func NewTimesheetHandler(timesheetService timesheetservice.Service) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// getUserIDFromContext extracts user_id from JWT context
func getUserIDFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if userID, ok := claims["user_id"].(string); ok {
		return userID
	}
	return ""
}

// SaveWorkItem implements TimesheetHandler. Zero hours deletes the
// (user, job, date) row.
func (h *TimesheetHandlerImpl) SaveWorkItem(w http.ResponseWriter, r *http.Request) {
	var req timesheet.SaveWorkItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Save work item decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID := getUserIDFromContext(r)
	if err := h.timesheetService.SaveWorkItem(r.Context(), actorID, req); err != nil {
		slog.Error("Save work item service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

// GetWorkItems implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetWorkItems(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	userID := chi.URLParam(r, "userId")

	actorID := getUserIDFromContext(r)
	items, err := h.timesheetService.GetWorkItems(r.Context(), actorID, month, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// SaveDailyExpense implements TimesheetHandler. An all-zero record
// deletes the stored row for that user-day.
func (h *TimesheetHandlerImpl) SaveDailyExpense(w http.ResponseWriter, r *http.Request) {
	var req timesheet.SaveDailyExpenseRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Save daily expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID := getUserIDFromContext(r)
	if err := h.timesheetService.SaveDailyExpense(r.Context(), actorID, req); err != nil {
		slog.Error("Save daily expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

// GetDailyExpenses implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetDailyExpenses(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	userID := chi.URLParam(r, "userId")

	actorID := getUserIDFromContext(r)
	expenses, err := h.timesheetService.GetDailyExpenses(r.Context(), actorID, month, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, expenses)
}

// ApproveHoliday implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ApproveHoliday(w http.ResponseWriter, r *http.Request) {
	var req timesheet.ApproveHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Approve holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.timesheetService.ApproveHoliday(r.Context(), req); err != nil {
		slog.Error("Approve holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday approval updated", nil)
}
