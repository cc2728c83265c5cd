package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secret-server/internal/domain/services"
	"secret-server/internal/interfaces/dto"
)

type AuthHandler struct {
	authSvc *services.AuthService
}

func NewAuthHandler(authSvc *services.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, 400, err.Error())
		return
	}

	token, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondWithSuccess(c, dto.LoginResponse{Token: token}, nil)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		respondWithError(c, http.StatusBadRequest, 400, "token is required")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		handleServiceError(c, err)
		return
	}

	respondWithSuccess(c, dto.LogoutResponse{Success: true}, nil)
}
