// Package handlers contains the gin HTTP handlers.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/auth/dto"
	"helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*dto.AuthResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.AuthResult, error)
}

type RefreshExecutor interface {
	Execute(ctx context.Context, cmd usecases.RefreshCommand) (*dto.RefreshResult, error)
}

type AuthHandler struct {
	registerUC RegisterExecutor
	loginUC    LoginExecutor
	refreshUC  RefreshExecutor
	logger     logger.Interface
}

func NewAuthHandler(registerUC RegisterExecutor, loginUC LoginExecutor, refreshUC RefreshExecutor) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		refreshUC:  refreshUC,
		logger:     logger.NewLogger(),
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result)
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "refresh token is required")
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result)
}

// Logout handles POST /auth/logout. Tokens are stateless, so logout is a
// client-side discard; the endpoint exists for API symmetry.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.MessageResponse(c, "Logged out successfully")
}
