package handlers

import (
	"encoding/json"
	"net/http"

	"homehealhub/internal/logger"
	"homehealhub/internal/services"
	helpers "homehealhub/internal/utils/helpres"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login godoc
// @Summary Вход администратора
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Пароль администратора"
// @Success 200 {object} loginResponse
// @Failure 401 {string} string "Неверный пароль"
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при входе", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	token, err := h.authService.Login(r.Context(), req.Password)
	if err != nil {
		helpers.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, loginResponse{AccessToken: token})
}
