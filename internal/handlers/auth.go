package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"streaming-backend/internal/service/auth"
	"streaming-backend/pkg/api"

	"go.uber.org/zap"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	authService *auth.Service
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler with dependency injection.
func NewAuthHandler(authService *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "corpo da requisição ausente ou inválido")
		return
	}

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	api.Success(w, http.StatusCreated, api.RegisterResponse{
		Message: "usuário registrado com sucesso",
		User: api.UserResponse{
			Email:     user.Email,
			Name:      user.Name,
			CreatedAt: user.CreatedAt.Format(time.RFC3339),
		},
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "corpo da requisição ausente ou inválido")
		return
	}

	token, err := h.authService.Login(r.Context(), req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	api.Success(w, http.StatusOK, api.LoginResponse{
		Message: "login bem-sucedido",
		Token:   token,
	})
}
