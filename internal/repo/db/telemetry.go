package db

import (
	"context"

	"github.com/indianiiot/telemetry-backend/internal/dto"
	md "github.com/indianiiot/telemetry-backend/internal/models"
	"github.com/opentracing/opentracing-go"
)

// CreateSensorData persists one classified reading. The timestamp is
// assigned by the database, never taken from the payload.
func (r *Repository) CreateSensorData(
	ctx context.Context,
	req *dto.IngestRequest,
	status md.Status,
) (*md.SensorData, error) {
	const op = "telemetry.CreateSensorData.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.SensorData{}
	err := r.conn.QueryRowxContext(
		ctx,
		sensorCreateQ,
		req.DeviceID,
		req.Gas,
		req.Temperature,
		req.Humidity,
		req.Distance,
		status,
	).StructScan(res)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListSensorData(
	ctx context.Context,
	deviceID string,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedSensorDataResponse, error) {
	const op = "telemetry.ListSensorData.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, err := buildSensorListQuery(ctx, deviceID, page, size, filters)
	if err != nil {
		return nil, err
	}

	var count int64
	if err = r.conn.GetContext(ctx, &count, q.countQ, q.countArgs...); err != nil {
		return nil, err
	}

	res := make([]*md.SensorData, 0, size)
	if err = r.conn.SelectContext(ctx, &res, q.dataQ, q.dataArgs...); err != nil {
		return nil, err
	}

	totalPages := int((count + int64(size) - 1) / int64(size))
	return &dto.PaginatedSensorDataResponse{
		Data:        res,
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
	}, nil
}

func (r *Repository) CreateLDRReading(
	ctx context.Context,
	deviceID string,
	req *dto.CreateLDRReadingRequest,
) (*md.LDRReading, error) {
	const op = "telemetry.CreateLDRReading.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.LDRReading{}
	err := r.conn.QueryRowxContext(
		ctx,
		ldrCreateQ,
		deviceID,
		req.DigitalValue,
		req.AnalogValue,
	).StructScan(res)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListLDRReadings(
	ctx context.Context,
	deviceID string,
	limit int,
) ([]md.LDRReading, error) {
	const op = "telemetry.ListLDRReadings.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.LDRReading, 0, limit)
	if err := r.conn.SelectContext(ctx, &res, ldrListQ, deviceID, limit); err != nil {
		return nil, err
	}

	return res, nil
}
