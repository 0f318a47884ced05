package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/intempo-hq/timesheet-backend-go/internal/domain/job"
	"github.com/intempo-hq/timesheet-backend-go/internal/handler/http/response"
	jobservice "github.com/intempo-hq/timesheet-backend-go/internal/service/job"
)

type JobHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type JobHandlerImpl struct {
	jobService jobservice.Service
}

func NewJobHandler(jobService jobservice.Service) JobHandler {
	return &JobHandlerImpl{jobService: jobService}
}

// Create implements JobHandler.
func (h *JobHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req job.CreateJobRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create job decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.jobService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create job service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job created successfully", created)
}

// Get implements JobHandler.
func (h *JobHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	j, err := h.jobService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, j)
}

// List implements JobHandler. The active query parameter limits the
// list to jobs that can still receive hours.
func (h *JobHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	jobs, err := h.jobService.List(r.Context(), activeOnly)
	if err != nil {
		slog.Error("List jobs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, jobs)
}

// Update implements JobHandler.
func (h *JobHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req job.UpdateJobRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update job decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.jobService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update job service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job updated successfully", updated)
}

// Delete implements JobHandler.
func (h *JobHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.jobService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete job service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job deleted successfully", nil)
}
