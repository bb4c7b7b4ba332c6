package user

import (
	"net/http"

	"github.com/adeyemi/task-manager-api/internal/api"
	"github.com/adeyemi/task-manager-api/internal/models"
)

// Handler holds user HTTP handlers.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register handles POST /user.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := api.DecodeBody(r, &req); err != nil {
		api.Fail(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		api.Fail(w, err)
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		api.Fail(w, err)
		return
	}
	api.OK(w, user, "User created successfully")
}

// Login handles POST /user/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := api.DecodeBody(r, &req); err != nil {
		api.Fail(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		api.Fail(w, err)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		api.Fail(w, err)
		return
	}
	api.OK(w, resp, "User login successfully")
}

// Me handles GET /user; the gate has already resolved the profile.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request, user *models.User) {
	api.OK(w, user, "User retrieved successfully")
}
