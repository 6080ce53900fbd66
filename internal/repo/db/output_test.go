package db

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/indianiiot/telemetry-backend/internal/dto"
	md "github.com/indianiiot/telemetry-backend/internal/models"
	"github.com/indianiiot/telemetry-backend/internal/repo"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestRepository_CreateOutput(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	r := &Repository{conn: sqlx.NewDb(db, "sqlmock")}

	testDeviceID := "esp32-garden-02"
	testRequest := &dto.CreateOutputRequest{OutputName: "water pump", GpioPin: 26, IsActive: false}
	now := time.Now()

	tests := []struct {
		name        string
		mock        func()
		expected    *md.DeviceOutput
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(outputCreateQ)).
					WithArgs(testDeviceID, "water pump", 26, false).
					WillReturnRows(
						sqlmock.NewRows([]string{
							"id", "device_id", "output_name", "gpio_pin", "is_active", "last_updated",
						}).AddRow(1, testDeviceID, "water pump", 26, false, now),
					)
			},
			expected: &md.DeviceOutput{
				ID:          1,
				DeviceID:    testDeviceID,
				OutputName:  "water pump",
				GpioPin:     26,
				IsActive:    false,
				LastUpdated: now,
			},
			expectedErr: nil,
		},
		{
			name: "QueryError",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(outputCreateQ)).
					WithArgs(testDeviceID, "water pump", 26, false).
					WillReturnError(errors.New("insert error"))
			},
			expected:    nil,
			expectedErr: errors.New("insert error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			result, err := r.CreateOutput(context.Background(), testDeviceID, testRequest)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListOutputs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	r := &Repository{conn: sqlx.NewDb(db, "sqlmock")}

	testDeviceID := "esp32-garden-02"
	now := time.Now()

	testRows := []md.DeviceOutput{
		{ID: 1, DeviceID: testDeviceID, OutputName: "water pump", GpioPin: 26, IsActive: true, LastUpdated: now},
		{ID: 2, DeviceID: testDeviceID, OutputName: "grow light", GpioPin: 27, IsActive: false, LastUpdated: now},
	}

	tests := []struct {
		name        string
		mock        func()
		expected    []md.DeviceOutput
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				rows := sqlmock.NewRows([]string{
					"id", "device_id", "output_name", "gpio_pin", "is_active", "last_updated",
				})
				for _, row := range testRows {
					rows.AddRow(row.ID, row.DeviceID, row.OutputName, row.GpioPin, row.IsActive, row.LastUpdated)
				}
				mock.ExpectQuery(regexp.QuoteMeta(outputListQ)).
					WithArgs(testDeviceID).
					WillReturnRows(rows)
			},
			expected:    testRows,
			expectedErr: nil,
		},
		{
			name: "EmptyResult",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(outputListQ)).
					WithArgs(testDeviceID).
					WillReturnRows(
						sqlmock.NewRows([]string{
							"id", "device_id", "output_name", "gpio_pin", "is_active", "last_updated",
						}),
					)
			},
			expected:    []md.DeviceOutput{},
			expectedErr: nil,
		},
		{
			name: "QueryError",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(outputListQ)).
					WithArgs(testDeviceID).
					WillReturnError(errors.New("query error"))
			},
			expected:    nil,
			expectedErr: errors.New("query error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			result, err := r.ListOutputs(context.Background(), testDeviceID)

			if tt.expectedErr != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetOutput(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	r := &Repository{conn: sqlx.NewDb(db, "sqlmock")}

	now := time.Now()
	testOutput := &md.DeviceOutput{
		ID:          7,
		DeviceID:    "esp32-garden-02",
		OutputName:  "water pump",
		GpioPin:     26,
		IsActive:    true,
		LastUpdated: now,
	}

	tests := []struct {
		name        string
		mock        func()
		expected    *md.DeviceOutput
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(outputGetQ)).
					WithArgs(testOutput.ID).
					WillReturnRows(
						sqlmock.NewRows([]string{
							"id", "device_id", "output_name", "gpio_pin", "is_active", "last_updated",
						}).AddRow(
							testOutput.ID, testOutput.DeviceID, testOutput.OutputName,
							testOutput.GpioPin, testOutput.IsActive, testOutput.LastUpdated,
						),
					)
			},
			expected:    testOutput,
			expectedErr: nil,
		},
		{
			name: "NotFound",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(outputGetQ)).
					WithArgs(testOutput.ID).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			expected:    nil,
			expectedErr: repo.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			result, err := r.GetOutput(context.Background(), testOutput.ID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateOutputState(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	r := &Repository{conn: sqlx.NewDb(db, "sqlmock")}

	now := time.Now()
	testOutputID := uint64(7)
	updatedRow := &md.DeviceOutput{
		ID:          testOutputID,
		DeviceID:    "esp32-garden-02",
		OutputName:  "water pump",
		GpioPin:     26,
		IsActive:    true,
		LastUpdated: now,
	}

	tests := []struct {
		name        string
		mock        func()
		expected    *md.DeviceOutput
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(outputUpdateStateQ)).
					WithArgs(true, testOutputID).
					WillReturnRows(
						sqlmock.NewRows([]string{
							"id", "device_id", "output_name", "gpio_pin", "is_active", "last_updated",
						}).AddRow(
							updatedRow.ID, updatedRow.DeviceID, updatedRow.OutputName,
							updatedRow.GpioPin, updatedRow.IsActive, updatedRow.LastUpdated,
						),
					)
			},
			expected:    updatedRow,
			expectedErr: nil,
		},
		{
			name: "NotFound",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(outputUpdateStateQ)).
					WithArgs(true, testOutputID).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			expected:    nil,
			expectedErr: repo.ErrNotFound,
		},
		{
			name: "QueryError",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(outputUpdateStateQ)).
					WithArgs(true, testOutputID).
					WillReturnError(errors.New("update error"))
			},
			expected:    nil,
			expectedErr: errors.New("update error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			result, err := r.UpdateOutputState(context.Background(), testOutputID, true)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
