package ctrl

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/indianiiot/telemetry-backend/internal/cache/redis"
	"github.com/indianiiot/telemetry-backend/internal/dto"
	md "github.com/indianiiot/telemetry-backend/internal/models"
	"github.com/indianiiot/telemetry-backend/internal/repo"
	"github.com/indianiiot/telemetry-backend/tests/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestController_CreateOutput(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache)

	testUserID := uuid.New()
	testDeviceID := "esp32-garden-02"
	testDevice := &md.Device{ID: testDeviceID, OwnerID: testUserID}

	testRequest := &dto.CreateOutputRequest{OutputName: "water pump", GpioPin: 26}
	expectedRow := &md.DeviceOutput{ID: 1, DeviceID: testDeviceID, OutputName: "water pump", GpioPin: 26}

	tests := []struct {
		name     string
		setup    func()
		expected *md.DeviceOutput
		wantErr  bool
		err      error
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().
					GetOwnedDevice(gomock.Any(), testUserID, testDeviceID).
					Return(testDevice, nil)

				mockRepo.EXPECT().
					CreateOutput(gomock.Any(), testDeviceID, testRequest).
					Return(expectedRow, nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), fmt.Sprintf(outputsListKey, testDeviceID)).
					Return()
			},
			expected: expectedRow,
			wantErr:  false,
		},
		{
			name: "ForeignDeviceCollapsesToNotFound",
			setup: func() {
				mockRepo.EXPECT().
					GetOwnedDevice(gomock.Any(), testUserID, testDeviceID).
					Return(nil, repo.ErrNotFound)
			},
			wantErr: true,
			err:     ErrNotFound,
		},
		{
			name: "RepositoryError",
			setup: func() {
				mockRepo.EXPECT().
					GetOwnedDevice(gomock.Any(), testUserID, testDeviceID).
					Return(testDevice, nil)

				mockRepo.EXPECT().
					CreateOutput(gomock.Any(), testDeviceID, testRequest).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			result, err := ctrl.CreateOutput(ctx, testUserID, testDeviceID, testRequest)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestController_ListOutputs(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache)

	testDeviceID := "esp32-garden-02"
	cacheKey := fmt.Sprintf(outputsListKey, testDeviceID)

	expectedRows := []md.DeviceOutput{
		{ID: 1, DeviceID: testDeviceID, OutputName: "water pump", GpioPin: 26, IsActive: true},
		{ID: 2, DeviceID: testDeviceID, OutputName: "grow light", GpioPin: 27},
	}

	tests := []struct {
		name     string
		setup    func()
		expected []md.DeviceOutput
		wantErr  bool
	}{
		{
			name: "SuccessWithCacheHit",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), cacheKey, gomock.Any()).
					Return(nil)
			},
			expected: []md.DeviceOutput{},
			wantErr:  false,
		},
		{
			name: "SuccessWithCacheMiss",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), cacheKey, gomock.Any()).
					Return(redis.ErrNotFoundInCache)

				mockRepo.EXPECT().
					ListOutputs(gomock.Any(), testDeviceID).
					Return(expectedRows, nil)

				mockCache.EXPECT().
					Set(gomock.Any(), gomock.Any(), cacheKey, gomock.Any()).
					Return()
			},
			expected: expectedRows,
			wantErr:  false,
		},
		{
			name: "RepositoryError",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), cacheKey, gomock.Any()).
					Return(redis.ErrNotFoundInCache)

				mockRepo.EXPECT().
					ListOutputs(gomock.Any(), testDeviceID).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			result, err := ctrl.ListOutputs(ctx, testDeviceID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestController_UpdateOutputState(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache)

	testUserID := uuid.New()
	testDeviceID := "esp32-garden-02"
	testOutputID := uint64(7)
	testDevice := &md.Device{ID: testDeviceID, OwnerID: testUserID}

	existingRow := &md.DeviceOutput{ID: testOutputID, DeviceID: testDeviceID, OutputName: "water pump"}
	updatedRow := &md.DeviceOutput{ID: testOutputID, DeviceID: testDeviceID, OutputName: "water pump", IsActive: true}

	tests := []struct {
		name     string
		setup    func()
		expected *md.DeviceOutput
		wantErr  bool
		err      error
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().
					GetOutput(gomock.Any(), testOutputID).
					Return(existingRow, nil)

				mockRepo.EXPECT().
					GetOwnedDevice(gomock.Any(), testUserID, testDeviceID).
					Return(testDevice, nil)

				mockRepo.EXPECT().
					UpdateOutputState(gomock.Any(), testOutputID, true).
					Return(updatedRow, nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), fmt.Sprintf(outputsListKey, testDeviceID)).
					Return()
			},
			expected: updatedRow,
			wantErr:  false,
		},
		{
			name: "OutputNotFound",
			setup: func() {
				mockRepo.EXPECT().
					GetOutput(gomock.Any(), testOutputID).
					Return(nil, repo.ErrNotFound)
			},
			wantErr: true,
			err:     ErrNotFound,
		},
		{
			name: "NotOwnerIsAccessDenied",
			setup: func() {
				mockRepo.EXPECT().
					GetOutput(gomock.Any(), testOutputID).
					Return(existingRow, nil)

				mockRepo.EXPECT().
					GetOwnedDevice(gomock.Any(), testUserID, testDeviceID).
					Return(nil, repo.ErrNotFound)
			},
			wantErr: true,
			err:     ErrAccessDenied,
		},
		{
			name: "RepositoryError",
			setup: func() {
				mockRepo.EXPECT().
					GetOutput(gomock.Any(), testOutputID).
					Return(existingRow, nil)

				mockRepo.EXPECT().
					GetOwnedDevice(gomock.Any(), testUserID, testDeviceID).
					Return(testDevice, nil)

				mockRepo.EXPECT().
					UpdateOutputState(gomock.Any(), testOutputID, true).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			result, err := ctrl.UpdateOutputState(ctx, testUserID, testOutputID, true)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
