package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/indianiiot/telemetry-backend/internal/config"
	"github.com/indianiiot/telemetry-backend/internal/hdl"
	"github.com/indianiiot/telemetry-backend/internal/hdl/http/utils"
	"github.com/indianiiot/telemetry-backend/internal/models"
	"github.com/indianiiot/telemetry-backend/tests/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_ListDevices(t *testing.T) {
	const uri = "/api/v1/devices"
	mock := gomock.NewController(t)
	defer mock.Finish()

	testErr := errors.New("testErr")
	testUUID := uuid.New()
	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockCore(mock)
	h := New(mauth, mctrl)

	testDevices := []models.Device{
		{
			ID:         "esp32-kitchen-01",
			OwnerID:    testUUID,
			DeviceType: "gas_sensor",
			CreatedAt:  time.Now(),
		},
		{
			ID:         "esp32-garden-02",
			OwnerID:    testUUID,
			DeviceType: "ldr",
			CreatedAt:  time.Now(),
		},
	}

	tests := []struct {
		name       string
		uid        any
		status     int
		expect     func()
		assertions func(r *httptest.ResponseRecorder)
	}{
		{
			name:   "ErrFailedToGetUUID_Nil",
			uid:    uuid.Nil,
			status: http.StatusInternalServerError,
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.Equal(t, hdl.ErrFailedToGetUUID.Error(), res.Errors[0])
			},
			expect: func() {},
		},
		{
			name:   "ErrFailedToGetUUID_InvalidType",
			uid:    "invalid-uuid",
			status: http.StatusInternalServerError,
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.Equal(t, hdl.ErrFailedToGetUUID.Error(), res.Errors[0])
			},
			expect: func() {},
		},
		{
			name:   "StatusInternalServerError",
			uid:    testUUID,
			status: http.StatusInternalServerError,
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.Equal(t, hdl.ErrInternal.Error(), res.Errors[0])
			},
			expect: func() {
				mctrl.EXPECT().ListDevices(gomock.Any(), testUUID).Return(nil, testErr)
			},
		},
		{
			name:   "Success",
			uid:    testUUID,
			status: http.StatusOK,
			assertions: func(r *httptest.ResponseRecorder) {
				res := &struct {
					Data []models.Device `json:"data"`
				}{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.Len(t, res.Data, 2)
				assert.Equal(t, testDevices[0].ID, res.Data[0].ID)
				assert.Equal(t, testDevices[1].ID, res.Data[1].ID)
			},
			expect: func() {
				mctrl.EXPECT().ListDevices(gomock.Any(), testUUID).Return(testDevices, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect()

			req := httptest.NewRequest(http.MethodGet, uri, nil)
			ctx := context.WithValue(req.Context(), config.UidKey, tt.uid)
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()
			h.listDevices(w, req)
			assert.Equal(t, tt.status, w.Result().StatusCode)

			defer func() {
				assert.Nil(t, w.Result().Body.Close())
			}()

			tt.assertions(w)
		})
	}
}
