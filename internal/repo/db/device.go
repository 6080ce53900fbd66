package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	md "github.com/indianiiot/telemetry-backend/internal/models"
	"github.com/indianiiot/telemetry-backend/internal/repo"
	"github.com/opentracing/opentracing-go"
)

// GetDeviceByID looks a device up by its caller-assigned id regardless of
// owner. It backs the device-token gate, so the returned row includes the
// stored token.
func (r *Repository) GetDeviceByID(ctx context.Context, deviceID string) (*md.Device, error) {
	const op = "devices.GetDeviceByID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Device{}
	err := r.conn.GetContext(ctx, res, deviceGetByIDQ, deviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

// GetOwnedDevice resolves a device only when it belongs to ownerID. A
// missing device and a device owned by someone else are indistinguishable
// to the caller.
func (r *Repository) GetOwnedDevice(
	ctx context.Context,
	ownerID uuid.UUID,
	deviceID string,
) (*md.Device, error) {
	const op = "devices.GetOwnedDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Device{}
	err := r.conn.GetContext(ctx, res, deviceGetOwnedQ, deviceID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListDevices(ctx context.Context, ownerID uuid.UUID) ([]md.Device, error) {
	const op = "devices.ListDevices.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.Device, 0)
	if err := r.conn.SelectContext(ctx, &res, deviceListByOwnerQ, ownerID); err != nil {
		return nil, err
	}

	return res, nil
}
