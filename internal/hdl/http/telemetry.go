package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/indianiiot/telemetry-backend/internal/config"
	"github.com/indianiiot/telemetry-backend/internal/ctrl"
	"github.com/indianiiot/telemetry-backend/internal/dto"
	"github.com/indianiiot/telemetry-backend/internal/hdl"
	mid "github.com/indianiiot/telemetry-backend/internal/hdl/http/middleware"
	"github.com/indianiiot/telemetry-backend/internal/hdl/http/utils"
	"go.uber.org/zap"
)

func (h *Handler) RegisterTelemetryRoutes() {
	h.router.Post("/api/v1/ingest", h.ingest)
	h.router.With(mid.Auth(h.au)).Get("/api/v1/data/{device_id}/readings", h.listSensorData)
}

// ingest godoc
//
//	@Summary		Ingest a sensor reading
//	@Description	Authenticates the device by token, classifies the reading and stores it
//	@Tags			Telemetry
//	@Accept			json
//	@Produce		json
//	@Param			Device-Token	header		string				true	"Device shared secret"
//	@Param			body			body		dto.IngestRequest	true	"Sensor reading"
//	@Success		200				{object}	models.SensorData
//	@Failure		400				{object}	utils.ErrorsResponse	"bad request"
//	@Failure		401				{object}	utils.ErrorsResponse	"invalid device token"
//	@Failure		404				{object}	utils.ErrorsResponse	"device not found"
//	@Failure		500				{object}	utils.ErrorsResponse	"internal error"
//	@Router			/api/v1/ingest [post]
func (h *Handler) ingest(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(config.DeviceTokenHeader)
	if token == "" {
		utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrMissingDeviceToken)
		return
	}

	req := &dto.IngestRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.IngestSensorData(r.Context(), token, req)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		if errors.Is(err, ctrl.ErrInvalidDeviceToken) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// listSensorData godoc
//
//	@Summary		List sensor readings for an owned device
//	@Description	Paginated reading history, newest first, optional status filter
//	@Tags			Telemetry
//	@Produce		json
//	@Param			device_id	path		string	true	"Device id"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			size		query		int		false	"Page size"		default(40)
//	@Param			status		query		string	false	"Status filter (SAFE, WARNING, DANGER)"
//	@Success		200			{object}	dto.PaginatedSensorDataResponse
//	@Failure		401			{object}	utils.ErrorsResponse	"unauthorized"
//	@Failure		404			{object}	utils.ErrorsResponse	"device not found or access denied"
//	@Failure		500			{object}	utils.ErrorsResponse	"internal error"
//	@Router			/api/v1/data/{device_id}/readings [get]
func (h *Handler) listSensorData(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok || uid == uuid.Nil {
		zap.L().Error(
			hdl.ErrFailedToGetUUID.Error(),
			zap.Any("uid", r.Context().Value(config.UidKey)),
		)
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrFailedToGetUUID)
		return
	}

	deviceID := chi.URLParam(r, "device_id")
	if deviceID == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	page, size := utils.ParsePaginationValues(r)
	filters := utils.ParseFiltersByURL(r)

	res, err := h.ctrl.ListSensorData(r.Context(), uid, deviceID, page, size, filters)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}
