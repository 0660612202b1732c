package handler

import (
	"net/http"

	"stockroom/internal/dto"
	"stockroom/internal/respond"
	"stockroom/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register exchanges a provider-issued token plus profile fields for a local
// user row.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Created(c, "user registered", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if user == nil {
		respond.Fail(c, http.StatusUnauthorized, "user not registered", nil)
		return
	}
	respond.OK(c, "login successful", user)
}
