package task

import (
	"net/http"
	"strconv"

	"github.com/adeyemi/task-manager-api/internal/api"
	"github.com/adeyemi/task-manager-api/internal/apperr"
	"github.com/adeyemi/task-manager-api/internal/models"
)

// Handler holds task HTTP handlers. Every route is protected; the
// authenticated user arrives as an explicit parameter from the auth
// gate.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /task.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req models.CreateTaskRequest
	if err := api.DecodeBody(r, &req); err != nil {
		api.Fail(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		api.Fail(w, err)
		return
	}

	task, err := h.service.Create(r.Context(), user, req)
	if err != nil {
		api.Fail(w, err)
		return
	}
	api.OK(w, task, "task created successfully")
}

// List handles GET /task with optional categoryId, title, and completed
// query filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request, user *models.User) {
	filter, err := parseFilter(r)
	if err != nil {
		api.Fail(w, err)
		return
	}

	tasks, err := h.service.List(r.Context(), user, filter)
	if err != nil {
		api.Fail(w, err)
		return
	}
	api.OK(w, tasks, "tasks fetched successfully")
}

// GetByID handles GET /task/{id}.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request, user *models.User) {
	id, err := api.URLParamID(r)
	if err != nil {
		api.Fail(w, err)
		return
	}

	task, err := h.service.GetByID(r.Context(), id, user)
	if err != nil {
		api.Fail(w, err)
		return
	}
	api.OK(w, task, "task fetched successfully")
}

// Update handles PATCH /task/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, user *models.User) {
	id, err := api.URLParamID(r)
	if err != nil {
		api.Fail(w, err)
		return
	}

	var req models.UpdateTaskRequest
	if err := api.DecodeBody(r, &req); err != nil {
		api.Fail(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		api.Fail(w, err)
		return
	}

	task, err := h.service.Update(r.Context(), id, req, user)
	if err != nil {
		api.Fail(w, err)
		return
	}
	api.OK(w, task, "task updated successfully")
}

// Delete handles DELETE /task/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, user *models.User) {
	id, err := api.URLParamID(r)
	if err != nil {
		api.Fail(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id, user); err != nil {
		api.Fail(w, err)
		return
	}
	api.OK(w, nil, "task deleted successfully")
}

func parseFilter(r *http.Request) (models.TaskFilter, error) {
	q := r.URL.Query()
	filter := models.TaskFilter{
		CategoryID: q.Get("categoryId"),
		Title:      q.Get("title"),
	}

	var fields []apperr.FieldError
	if filter.CategoryID != "" {
		if err := api.ValidateID(filter.CategoryID); err != nil {
			fields = append(fields, apperr.FieldError{Field: "categoryId", Message: "categoryId must be a valid id"})
		}
	}
	if raw := q.Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			fields = append(fields, apperr.FieldError{Field: "completed", Message: "completed must be a boolean"})
		} else {
			filter.Completed = &completed
		}
	}
	if len(fields) > 0 {
		return filter, apperr.Validation(fields...)
	}
	return filter, nil
}
