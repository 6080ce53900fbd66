package ctrl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/indianiiot/telemetry-backend/internal/auth"
	"github.com/indianiiot/telemetry-backend/internal/auth/jwt"
	"github.com/indianiiot/telemetry-backend/internal/dto"
	md "github.com/indianiiot/telemetry-backend/internal/models"
	"github.com/indianiiot/telemetry-backend/internal/repo"
	"github.com/indianiiot/telemetry-backend/tests/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestController_GenPair(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache)

	testUserID := uuid.New()
	refreshTime := time.Now().Add(7 * 24 * time.Hour)

	tests := []struct {
		name     string
		setup    func()
		expected dto.TokenPair
		wantErr  bool
	}{
		{
			name: "Success",
			setup: func() {
				mockAuth.EXPECT().
					GenPair(gomock.Any(), testUserID).
					Return("access-token", "refresh-token", nil)

				mockAuth.EXPECT().
					GetRefreshTime().
					Return(refreshTime)

				mockRepo.EXPECT().
					CreateToken(gomock.Any(), testUserID, "refresh-token", refreshTime).
					Return(nil)
			},
			expected: dto.TokenPair{Access: "access-token", Refresh: "refresh-token"},
			wantErr:  false,
		},
		{
			name: "SignError",
			setup: func() {
				mockAuth.EXPECT().
					GenPair(gomock.Any(), testUserID).
					Return("", "", errors.New("sign error"))
			},
			wantErr: true,
		},
		{
			name: "PersistError",
			setup: func() {
				mockAuth.EXPECT().
					GenPair(gomock.Any(), testUserID).
					Return("access-token", "refresh-token", nil)

				mockAuth.EXPECT().
					GetRefreshTime().
					Return(refreshTime)

				mockRepo.EXPECT().
					CreateToken(gomock.Any(), testUserID, "refresh-token", refreshTime).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			result, err := ctrl.GenPair(ctx, testUserID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestController_Authenticate(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache)

	testUserID := uuid.New()
	testUser := &md.User{ID: testUserID, Email: "test@example.com", Password: "hashed"}
	testRequest := &dto.EmailAndPasswordRequest{Email: "test@example.com", Password: "password123"}
	refreshTime := time.Now().Add(7 * 24 * time.Hour)

	tests := []struct {
		name     string
		setup    func()
		expected *dto.TokenPair
		wantErr  bool
		err      error
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail(gomock.Any(), testRequest.Email).
					Return(testUser, nil)

				mockAuth.EXPECT().
					ComparePasswords([]byte("hashed"), []byte("password123")).
					Return(nil)

				mockAuth.EXPECT().
					GenPair(gomock.Any(), testUserID).
					Return("access-token", "refresh-token", nil)

				mockAuth.EXPECT().
					GetRefreshTime().
					Return(refreshTime)

				mockRepo.EXPECT().
					CreateToken(gomock.Any(), testUserID, "refresh-token", refreshTime).
					Return(nil)
			},
			expected: &dto.TokenPair{Access: "access-token", Refresh: "refresh-token"},
			wantErr:  false,
		},
		{
			name: "UserNotFound",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail(gomock.Any(), testRequest.Email).
					Return(nil, repo.ErrNotFound)
			},
			wantErr: true,
			err:     ErrNotFound,
		},
		{
			name: "WrongPassword",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail(gomock.Any(), testRequest.Email).
					Return(testUser, nil)

				mockAuth.EXPECT().
					ComparePasswords([]byte("hashed"), []byte("password123")).
					Return(errors.New("mismatch"))
			},
			wantErr: true,
			err:     auth.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			result, err := ctrl.Authenticate(ctx, testRequest)

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

func TestController_Refresh(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache)

	testUserID := uuid.New()
	testRequest := &dto.RefreshRequest{Refresh: "old-refresh"}
	testClaims := jwt.Claims{UID: testUserID}
	refreshTime := time.Now().Add(7 * 24 * time.Hour)

	tests := []struct {
		name     string
		setup    func()
		expected *dto.TokenPair
		wantErr  bool
		err      error
	}{
		{
			name: "SuccessRotatesTokens",
			setup: func() {
				mockAuth.EXPECT().
					ParseClaims(gomock.Any(), "old-refresh").
					Return(testClaims, nil)

				mockRepo.EXPECT().
					IsTokenValid(gomock.Any(), testUserID, "old-refresh").
					Return(true, nil)

				mockAuth.EXPECT().
					GenPair(gomock.Any(), testUserID).
					Return("new-access", "new-refresh", nil)

				mockRepo.EXPECT().
					RevokeAllTokens(gomock.Any(), testUserID).
					Return(nil)

				mockAuth.EXPECT().
					GetRefreshTime().
					Return(refreshTime)

				mockRepo.EXPECT().
					CreateToken(gomock.Any(), testUserID, "new-refresh", refreshTime).
					Return(nil)
			},
			expected: &dto.TokenPair{Access: "new-access", Refresh: "new-refresh"},
			wantErr:  false,
		},
		{
			name: "InvalidToken",
			setup: func() {
				mockAuth.EXPECT().
					ParseClaims(gomock.Any(), "old-refresh").
					Return(jwt.Claims{}, auth.ErrInvalidToken)
			},
			wantErr: true,
			err:     auth.ErrInvalidToken,
		},
		{
			name: "RevokedToken",
			setup: func() {
				mockAuth.EXPECT().
					ParseClaims(gomock.Any(), "old-refresh").
					Return(testClaims, nil)

				mockRepo.EXPECT().
					IsTokenValid(gomock.Any(), testUserID, "old-refresh").
					Return(false, nil)
			},
			wantErr: true,
			err:     auth.ErrTokenRevoked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			result, err := ctrl.Refresh(ctx, testRequest)

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

func TestController_Logout(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache)

	testUserID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			RevokeAllTokens(gomock.Any(), testUserID).
			Return(nil)

		assert.NoError(t, ctrl.Logout(ctx, testUserID))
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockRepo.EXPECT().
			RevokeAllTokens(gomock.Any(), testUserID).
			Return(errors.New("database error"))

		assert.Error(t, ctrl.Logout(ctx, testUserID))
	})
}
