package category

import (
	"net/http"

	"github.com/adeyemi/task-manager-api/internal/api"
	"github.com/adeyemi/task-manager-api/internal/models"
)

// Handler holds task-category HTTP handlers. Every route is protected;
// the authenticated user arrives as an explicit parameter from the
// auth gate.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /task-category.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req models.CategoryRequest
	if err := api.DecodeBody(r, &req); err != nil {
		api.Fail(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		api.Fail(w, err)
		return
	}

	category, err := h.service.Create(r.Context(), user, req)
	if err != nil {
		api.Fail(w, err)
		return
	}
	api.OK(w, category, "task category created successfully")
}

// List handles GET /task-category.
func (h *Handler) List(w http.ResponseWriter, r *http.Request, user *models.User) {
	filter := models.CategoryFilter{Name: r.URL.Query().Get("name")}

	categories, err := h.service.List(r.Context(), user, filter)
	if err != nil {
		api.Fail(w, err)
		return
	}
	api.OK(w, categories, "task categories fetched successfully")
}

// GetByID handles GET /task-category/{id}.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request, user *models.User) {
	id, err := api.URLParamID(r)
	if err != nil {
		api.Fail(w, err)
		return
	}

	category, err := h.service.GetByID(r.Context(), id, user)
	if err != nil {
		api.Fail(w, err)
		return
	}
	api.OK(w, category, "task category fetched successfully")
}

// Update handles PATCH /task-category/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, user *models.User) {
	id, err := api.URLParamID(r)
	if err != nil {
		api.Fail(w, err)
		return
	}

	var req models.CategoryRequest
	if err := api.DecodeBody(r, &req); err != nil {
		api.Fail(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		api.Fail(w, err)
		return
	}

	category, err := h.service.Update(r.Context(), id, req, user)
	if err != nil {
		api.Fail(w, err)
		return
	}
	api.OK(w, category, "task category updated successfully")
}

// Delete handles DELETE /task-category/{id}.
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
	api.OK(w, nil, "task category deleted successfully")
}
