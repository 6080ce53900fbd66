package http

import (
	"errors"
	"net/http"
	"strconv"

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

func (h *Handler) RegisterLDRRoutes() {
	h.router.Post("/api/v1/ldr/{device_id}/readings", h.createLDRReading)
	h.router.With(mid.Auth(h.au)).Get("/api/v1/ldr/{device_id}/readings", h.listLDRReadings)
	h.router.With(mid.Auth(h.au)).Post("/api/v1/ldr/{device_id}/outputs", h.createOutput)
	// The outputs list is read by the firmware itself, which has no user
	// session. Kept open for compatibility with deployed devices.
	h.router.Get("/api/v1/ldr/{device_id}/outputs", h.listOutputs)
	h.router.With(mid.Auth(h.au)).Put("/api/v1/ldr/outputs/{output_id}", h.updateOutputState)
}

// createLDRReading godoc
//
//	@Summary		Store a light-sensor reading
//	@Description	Authenticates the device by token and stores the reading verbatim
//	@Tags			LDR
//	@Accept			json
//	@Produce		json
//	@Param			Device-Token	header		string						true	"Device shared secret"
//	@Param			device_id		path		string						true	"Device id"
//	@Param			body			body		dto.CreateLDRReadingRequest	true	"LDR reading"
//	@Success		200				{object}	models.LDRReading
//	@Failure		400				{object}	utils.ErrorsResponse	"bad request"
//	@Failure		401				{object}	utils.ErrorsResponse	"invalid device token"
//	@Failure		404				{object}	utils.ErrorsResponse	"device not found"
//	@Failure		500				{object}	utils.ErrorsResponse	"internal error"
//	@Router			/api/v1/ldr/{device_id}/readings [post]
func (h *Handler) createLDRReading(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(config.DeviceTokenHeader)
	if token == "" {
		utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrMissingDeviceToken)
		return
	}

	deviceID := chi.URLParam(r, "device_id")
	if deviceID == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	req := &dto.CreateLDRReadingRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateLDRReading(r.Context(), deviceID, token, req)
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

// listLDRReadings godoc
//
//	@Summary		List light-sensor readings for an owned device
//	@Description	Newest first, truncated to the limit (default 50)
//	@Tags			LDR
//	@Produce		json
//	@Param			device_id	path		string	true	"Device id"
//	@Param			limit		query		int		false	"Max rows"	default(50)
//	@Success		200			{array}		models.LDRReading
//	@Failure		401			{object}	utils.ErrorsResponse	"unauthorized"
//	@Failure		404			{object}	utils.ErrorsResponse	"device not found or access denied"
//	@Failure		500			{object}	utils.ErrorsResponse	"internal error"
//	@Router			/api/v1/ldr/{device_id}/readings [get]
func (h *Handler) listLDRReadings(w http.ResponseWriter, r *http.Request) {
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

	res, err := h.ctrl.ListLDRReadings(r.Context(), uid, deviceID, utils.ParseLimit(r))
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

// createOutput godoc
//
//	@Summary		Create a device output
//	@Description	Registers a controllable output (relay, bulb) on an owned device
//	@Tags			Output
//	@Accept			json
//	@Produce		json
//	@Param			device_id	path		string					true	"Device id"
//	@Param			body		body		dto.CreateOutputRequest	true	"Output payload"
//	@Success		201			{object}	models.DeviceOutput
//	@Failure		400			{object}	utils.ErrorsResponse	"bad request"
//	@Failure		401			{object}	utils.ErrorsResponse	"unauthorized"
//	@Failure		404			{object}	utils.ErrorsResponse	"device not found or access denied"
//	@Failure		500			{object}	utils.ErrorsResponse	"internal error"
//	@Router			/api/v1/ldr/{device_id}/outputs [post]
func (h *Handler) createOutput(w http.ResponseWriter, r *http.Request) {
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

	req := &dto.CreateOutputRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateOutput(r.Context(), uid, deviceID, req)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

// listOutputs godoc
//
//	@Summary		List outputs for a device
//	@Description	Returns every output registered on the device id
//	@Tags			Output
//	@Produce		json
//	@Param			device_id	path		string	true	"Device id"
//	@Success		200			{array}		models.DeviceOutput
//	@Failure		500			{object}	utils.ErrorsResponse	"internal error"
//	@Router			/api/v1/ldr/{device_id}/outputs [get]
func (h *Handler) listOutputs(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")
	if deviceID == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	res, err := h.ctrl.ListOutputs(r.Context(), deviceID)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// updateOutputState godoc
//
//	@Summary		Toggle an output
//	@Description	Overwrites the active flag and refreshes last_updated
//	@Tags			Output
//	@Accept			json
//	@Produce		json
//	@Param			output_id	path		int						true	"Output id"
//	@Param			body		body		dto.UpdateOutputRequest	true	"New state"
//	@Success		200			{object}	models.DeviceOutput
//	@Failure		400			{object}	utils.ErrorsResponse	"bad request"
//	@Failure		401			{object}	utils.ErrorsResponse	"unauthorized"
//	@Failure		403			{object}	utils.ErrorsResponse	"not the owner"
//	@Failure		404			{object}	utils.ErrorsResponse	"output not found"
//	@Failure		500			{object}	utils.ErrorsResponse	"internal error"
//	@Router			/api/v1/ldr/outputs/{output_id} [put]
func (h *Handler) updateOutputState(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok || uid == uuid.Nil {
		zap.L().Error(
			hdl.ErrFailedToGetUUID.Error(),
			zap.Any("uid", r.Context().Value(config.UidKey)),
		)
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrFailedToGetUUID)
		return
	}

	outputID, err := strconv.ParseUint(chi.URLParam(r, "output_id"), 10, 64)
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	req := &dto.UpdateOutputRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.UpdateOutputState(r.Context(), uid, outputID, *req.IsActive)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		if errors.Is(err, ctrl.ErrAccessDenied) {
			utils.ErrResponse(w, http.StatusForbidden, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}
