package adaptor

import (
	"net/http"
	"time"

	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/apperr"
	"marketplace-api/pkg/utils"

	"go.uber.org/zap"
)

const refreshCookieName = "refresh_token"

type AuthHandler struct {
	service usecase.AuthService
	config  *utils.Config
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, config *utils.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		config:  config,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login requests a login code for the given email.
// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	if err := h.service.IssueCode(r.Context(), &req); err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Login code sent", nil)
}

// Confirm exchanges an emailed code for tokens. The access token goes
// in the body; the refresh token rides an http-only cookie.
// POST /auth/confirm
func (h *AuthHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req request.ConfirmRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	tokens, err := h.service.ConfirmCode(r.Context(), &req)
	if err != nil {
		// An unknown code is a bad request here, not a missing
		// resource: the client supplied the wrong credentials.
		if apperr.IsKind(err, apperr.KindNotFound) {
			utils.ResponseBadRequest(w, "Invalid login code", nil)
			return
		}
		utils.ResponseAppError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    tokens.RefreshToken,
		Path:     "/",
		MaxAge:   h.config.JWT.RefreshExpiryHrs * int(time.Hour/time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.ResponseSuccess(w, "Login successful", tokens)
}
