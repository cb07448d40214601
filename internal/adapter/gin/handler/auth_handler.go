package handler

import (
	"context"
	"errors"
	"net/http"

	"saas-landing-api/internal/usecase/auth"
	pkgerrors "saas-landing-api/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthUsecase is the slice of the auth usecase the handler depends on.
type AuthUsecase interface {
	Signup(ctx context.Context, req auth.SignupRequest) (*auth.AuthResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error)
}

// AuthHandler handles HTTP requests for signup and login.
type AuthHandler struct {
	uc  AuthUsecase
	log *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(uc AuthUsecase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		uc:  uc,
		log: log,
	}
}

// SignupRequest represents the HTTP request body for registering an account
type SignupRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the HTTP request body for a credential check
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the HTTP confirmation envelope for both endpoints
type AuthResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
	Plan    string `json:"plan,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.Signup(c.Request.Context(), auth.SignupRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Message: resp.Message,
		UserID:  resp.UserID,
		Plan:    resp.Plan,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.Login(c.Request.Context(), auth.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Message: resp.Message,
		UserID:  resp.UserID,
		Plan:    resp.Plan,
	})
}

// handleError maps usecase errors onto HTTP responses via their status.
// Duplicate email shares the 400 status with validation failures, so it is
// classified by type to keep its own error code.
func (h *AuthHandler) handleError(c *gin.Context, err error) {
	var exists *pkgerrors.AlreadyExistsError
	if errors.As(err, &exists) {
		c.JSON(exists.HTTPStatus(), ErrorResponse{
			Error:   "already_exists",
			Message: err.Error(),
		})
		return
	}

	var statuser pkgerrors.HTTPStatuser
	if errors.As(err, &statuser) {
		status := statuser.HTTPStatus()
		c.JSON(status, ErrorResponse{
			Error:   errorCode(status),
			Message: err.Error(),
		})
		return
	}

	h.log.Error("unclassified handler error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}

// errorCode gives the machine-readable code for a status.
func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "validation_error"
	case http.StatusUnauthorized:
		return "unauthorized"
	default:
		return "internal_error"
	}
}
