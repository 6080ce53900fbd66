package ctrl

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/indianiiot/telemetry-backend/internal/config"
	"github.com/indianiiot/telemetry-backend/internal/dto"
	md "github.com/indianiiot/telemetry-backend/internal/models"
	"github.com/opentracing/opentracing-go"
)

type telemetryCtrl interface {
	IngestSensorData(
		ctx context.Context,
		token string,
		req *dto.IngestRequest,
	) (*md.SensorData, error)
	ListSensorData(
		ctx context.Context,
		userID uuid.UUID,
		deviceID string,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedSensorDataResponse, error)
	CreateLDRReading(
		ctx context.Context,
		deviceID, token string,
		req *dto.CreateLDRReadingRequest,
	) (*md.LDRReading, error)
	ListLDRReadings(
		ctx context.Context,
		userID uuid.UUID,
		deviceID string,
		limit int,
	) ([]md.LDRReading, error)
}

type telemetryRepo interface {
	CreateSensorData(
		ctx context.Context,
		req *dto.IngestRequest,
		status md.Status,
	) (*md.SensorData, error)
	ListSensorData(
		ctx context.Context,
		deviceID string,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedSensorDataResponse, error)
	CreateLDRReading(
		ctx context.Context,
		deviceID string,
		req *dto.CreateLDRReadingRequest,
	) (*md.LDRReading, error)
	ListLDRReadings(ctx context.Context, deviceID string, limit int) ([]md.LDRReading, error)
}

const (
	sensorListKey     = "sensor-data-list:%v:%v:%v:%v"
	sensorListPattern = "sensor-data-list:%v:*"
	ldrListKey        = "ldr-list:%v:%v"
	ldrListPattern    = "ldr-list:%v:*"
)

// Classification thresholds. Fixed by the firmware contract.
const (
	gasDanger      = 1000
	gasWarning     = 500
	tempWarning    = 40
	distanceDanger = 20

	// defaultSafeDistance substitutes a missing distance so it cannot
	// trip the proximity check.
	defaultSafeDistance = 9999
)

// CalculateStatus maps a reading to a severity label. Absent values are
// substituted, never rejected; the DANGER branch wins over WARNING when
// both match.
func CalculateStatus(gas, temperature, distance *float64) md.Status {
	gasVal, tempVal := 0.0, 0.0
	distVal := float64(defaultSafeDistance)

	if gas != nil {
		gasVal = *gas
	}
	if temperature != nil {
		tempVal = *temperature
	}
	if distance != nil {
		distVal = *distance
	}

	switch {
	case gasVal > gasDanger || distVal < distanceDanger:
		return md.StatusDanger
	case gasVal > gasWarning || tempVal > tempWarning:
		return md.StatusWarning
	default:
		return md.StatusSafe
	}
}

// IngestSensorData authenticates the device named in the payload,
// classifies the reading and persists it with a server-assigned
// timestamp. One immutable row per call.
func (c *Controller) IngestSensorData(
	ctx context.Context,
	token string,
	req *dto.IngestRequest,
) (*md.SensorData, error) {
	const op = "telemetry.IngestSensorData.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.AuthenticateDevice(ctx, req.DeviceID, token); err != nil {
		return nil, err
	}

	status := CalculateStatus(req.Gas, req.Temperature, req.Distance)

	res, err := c.repo.CreateSensorData(ctx, req, status)
	if err != nil {
		return nil, err
	}

	go c.cache.InvalidateKeysByPattern(ctx, fmt.Sprintf(sensorListPattern, req.DeviceID))

	return res, nil
}

func (c *Controller) ListSensorData(
	ctx context.Context,
	userID uuid.UUID,
	deviceID string,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedSensorDataResponse, error) {
	const op = "telemetry.ListSensorData.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.GetOwnedDevice(ctx, userID, deviceID); err != nil {
		return nil, err
	}

	cached := &dto.PaginatedSensorDataResponse{}
	cacheKey := fmt.Sprintf(sensorListKey, deviceID, page, size, filters)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListSensorData(ctx, deviceID, page, size, filters)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.MinCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) CreateLDRReading(
	ctx context.Context,
	deviceID, token string,
	req *dto.CreateLDRReadingRequest,
) (*md.LDRReading, error) {
	const op = "telemetry.CreateLDRReading.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.AuthenticateDevice(ctx, deviceID, token); err != nil {
		return nil, err
	}

	res, err := c.repo.CreateLDRReading(ctx, deviceID, req)
	if err != nil {
		return nil, err
	}

	go c.cache.InvalidateKeysByPattern(ctx, fmt.Sprintf(ldrListPattern, deviceID))

	return res, nil
}

func (c *Controller) ListLDRReadings(
	ctx context.Context,
	userID uuid.UUID,
	deviceID string,
	limit int,
) ([]md.LDRReading, error) {
	const op = "telemetry.ListLDRReadings.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.GetOwnedDevice(ctx, userID, deviceID); err != nil {
		return nil, err
	}

	cached := make([]md.LDRReading, 0)
	cacheKey := fmt.Sprintf(ldrListKey, deviceID, limit)
	if err := c.cache.GetToStruct(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListLDRReadings(ctx, deviceID, limit)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.MinCacheTime, cacheKey, bytes)
	}

	return res, nil
}
