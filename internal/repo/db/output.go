package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/indianiiot/telemetry-backend/internal/dto"
	md "github.com/indianiiot/telemetry-backend/internal/models"
	"github.com/indianiiot/telemetry-backend/internal/repo"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) CreateOutput(
	ctx context.Context,
	deviceID string,
	req *dto.CreateOutputRequest,
) (*md.DeviceOutput, error) {
	const op = "outputs.CreateOutput.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.DeviceOutput{}
	err := r.conn.QueryRowxContext(
		ctx,
		outputCreateQ,
		deviceID,
		req.OutputName,
		req.GpioPin,
		req.IsActive,
	).StructScan(res)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListOutputs(ctx context.Context, deviceID string) ([]md.DeviceOutput, error) {
	const op = "outputs.ListOutputs.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.DeviceOutput, 0)
	if err := r.conn.SelectContext(ctx, &res, outputListQ, deviceID); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetOutput(ctx context.Context, outputID uint64) (*md.DeviceOutput, error) {
	const op = "outputs.GetOutput.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.DeviceOutput{}
	err := r.conn.GetContext(ctx, res, outputGetQ, outputID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

// UpdateOutputState overwrites the active flag and refreshes last_updated
// in one statement, last writer wins.
func (r *Repository) UpdateOutputState(
	ctx context.Context,
	outputID uint64,
	isActive bool,
) (*md.DeviceOutput, error) {
	const op = "outputs.UpdateOutputState.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.DeviceOutput{}
	err := r.conn.QueryRowxContext(ctx, outputUpdateStateQ, isActive, outputID).StructScan(res)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}
