package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/indianiiot/telemetry-backend/internal/config"
	"github.com/indianiiot/telemetry-backend/internal/hdl"
	mid "github.com/indianiiot/telemetry-backend/internal/hdl/http/middleware"
	"github.com/indianiiot/telemetry-backend/internal/hdl/http/utils"
	"go.uber.org/zap"
)

func (h *Handler) RegisterDeviceRoutes() {
	h.router.With(mid.Auth(h.au)).Get("/api/v1/devices", h.listDevices)
}

// listDevices godoc
//
//	@Summary		List own devices
//	@Description	Returns every device registered to the authenticated user
//	@Tags			Device
//	@Produce		json
//	@Success		200	{array}		models.Device
//	@Failure		401	{object}	utils.ErrorsResponse	"unauthorized"
//	@Failure		500	{object}	utils.ErrorsResponse	"internal error"
//	@Router			/api/v1/devices [get]
func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok || uid == uuid.Nil {
		zap.L().Error(
			hdl.ErrFailedToGetUUID.Error(),
			zap.Any("uid", r.Context().Value(config.UidKey)),
		)
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrFailedToGetUUID)
		return
	}

	res, err := h.ctrl.ListDevices(r.Context(), uid)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}
