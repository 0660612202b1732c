package handler

import (
	"stockroom/internal/config"
	"stockroom/internal/dto"
	"stockroom/internal/middleware"
	"stockroom/internal/respond"
	"stockroom/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	auth service.AuthService
	cfg  *config.Config
}

func NewUserHandler(auth service.AuthService, cfg *config.Config) *UserHandler {
	return &UserHandler{auth: auth, cfg: cfg}
}

func (h *UserHandler) List(c *gin.Context) {
	page, perPage := pageParams(c, h.cfg)
	users, total, err := h.auth.ListUsers(c.Request.Context(), page, perPage)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Paginated(c, "users retrieved", users, page, perPage, total)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	user, err := h.auth.GetUser(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if user == nil {
		respond.NotFound(c, "user")
		return
	}
	respond.OK(c, "user retrieved", user)
}

// Me returns the authenticated caller's own profile.
func (h *UserHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	resp, err := h.auth.GetUser(c.Request.Context(), user.ID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, "user retrieved", resp)
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateRoleRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, err := h.auth.UpdateRole(c.Request.Context(), id, req.Role)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if user == nil {
		respond.NotFound(c, "user")
		return
	}
	respond.OK(c, "role updated", user)
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false, "user deactivated")
}

func (h *UserHandler) Activate(c *gin.Context) {
	h.setActive(c, true, "user activated")
}

func (h *UserHandler) setActive(c *gin.Context, active bool, message string) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	user, err := h.auth.SetActive(c.Request.Context(), id, active)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if user == nil {
		respond.NotFound(c, "user")
		return
	}
	respond.OK(c, message, user)
}
