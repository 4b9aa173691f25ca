package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/dto"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/request"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/response"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type AuthHandler struct {
	service   AuthService
	validator *validator.Validate
}

func NewAuthHandler(service AuthService, validator *validator.Validate) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: validator,
	}
}

// Login godoc
// @Summary Admin login
// @Description Exchanges admin credentials for a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Credentials"
// @Success 200 {object} response.LoginResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "invalid credentials")
		return
	}

	respondJSON(w, http.StatusOK, response.LoginResponse{Token: token})
}
