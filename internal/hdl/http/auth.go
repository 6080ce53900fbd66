package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/indianiiot/telemetry-backend/internal/auth"
	"github.com/indianiiot/telemetry-backend/internal/config"
	"github.com/indianiiot/telemetry-backend/internal/ctrl"
	"github.com/indianiiot/telemetry-backend/internal/dto"
	"github.com/indianiiot/telemetry-backend/internal/hdl"
	mid "github.com/indianiiot/telemetry-backend/internal/hdl/http/middleware"
	"github.com/indianiiot/telemetry-backend/internal/hdl/http/utils"
	"go.uber.org/zap"
)

func (h *Handler) RegisterAuthRoutes() {
	h.router.Post("/api/v1/auth/jwt", h.authenticate)
	h.router.Post("/api/v1/auth/jwt/refresh", h.refresh)
	h.router.With(mid.Auth(h.au)).Post("/api/v1/auth/logout", h.logout)
}

// authenticate godoc
//
//	@Summary		Authenticate using email & password
//	@Description	Verify credentials, issue a JWT pair and set cookies
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body	dto.EmailAndPasswordRequest	true	"Login credentials"
//	@Success		200		"Successfully authenticated (sets cookies)"
//	@Failure		400		{object}	utils.ErrorsResponse
//	@Failure		401		{object}	utils.ErrorsResponse
//	@Failure		404		{object}	utils.ErrorsResponse
//	@Failure		500		{object}	utils.ErrorsResponse
//	@Router			/api/v1/auth/jwt [post]
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	req := &dto.EmailAndPasswordRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Authenticate(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SetAuthCookies(w, res.Access, res.Refresh)
	utils.StatusResponse(w, http.StatusOK)
}

// refresh godoc
//
//	@Summary		Refresh JWT tokens
//	@Description	Validate refresh token from cookie and issue new tokens
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Success		200	"Successfully refreshed tokens (sets cookies)"
//	@Failure		400	{object}	utils.ErrorsResponse
//	@Failure		401	{object}	utils.ErrorsResponse
//	@Failure		404	{object}	utils.ErrorsResponse
//	@Failure		500	{object}	utils.ErrorsResponse
//	@Router			/api/v1/auth/jwt/refresh [post]
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(config.RefreshCookieName)
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return
	}

	res, err := h.ctrl.Refresh(
		r.Context(), &dto.RefreshRequest{
			Refresh: cookie.Value,
		},
	)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		} else if errors.Is(err, auth.ErrTokenRevoked) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SetAuthCookies(w, res.Access, res.Refresh)
	utils.StatusResponse(w, http.StatusOK)
}

// logout godoc
//
//	@Summary		Logout user
//	@Description	Revoke refresh tokens, clear JWT cookies
//	@Tags			Authentication
//	@Produce		json
//	@Success		200	"Revoked refresh tokens, cleared cookies"
//	@Failure		401	{object}	utils.ErrorsResponse	"unauthorized"
//	@Failure		500	{object}	utils.ErrorsResponse	"internal error"
//	@Router			/api/v1/auth/logout [post]
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok || uid == uuid.Nil {
		zap.L().Error(
			hdl.ErrFailedToGetUUID.Error(),
			zap.Any("uid", r.Context().Value(config.UidKey)),
		)
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrFailedToGetUUID)
		return
	}

	if err := h.ctrl.Logout(r.Context(), uid); err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.ClearAuthCookies(w)
	utils.StatusResponse(w, http.StatusOK)
}
