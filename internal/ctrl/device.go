package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/indianiiot/telemetry-backend/internal/config"
	md "github.com/indianiiot/telemetry-backend/internal/models"
	"github.com/indianiiot/telemetry-backend/internal/repo"
	"github.com/opentracing/opentracing-go"
)

type deviceCtrl interface {
	AuthenticateDevice(ctx context.Context, deviceID, token string) (*md.Device, error)
	GetOwnedDevice(ctx context.Context, userID uuid.UUID, deviceID string) (*md.Device, error)
	ListDevices(ctx context.Context, userID uuid.UUID) ([]md.Device, error)
}

type deviceRepo interface {
	GetDeviceByID(ctx context.Context, deviceID string) (*md.Device, error)
	GetOwnedDevice(ctx context.Context, ownerID uuid.UUID, deviceID string) (*md.Device, error)
	ListDevices(ctx context.Context, ownerID uuid.UUID) ([]md.Device, error)
}

const devicesListKey = "devices-list:%v"

// AuthenticateDevice is the device-authentication gate. Every
// device-facing operation goes through here, there is no session: the
// presented token is compared byte-for-byte with the stored one on each
// request. Lookups always hit the store, credentials are never cached.
func (c *Controller) AuthenticateDevice(
	ctx context.Context,
	deviceID, token string,
) (*md.Device, error) {
	const op = "devices.AuthenticateDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	device, err := c.repo.GetDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if device.DeviceToken != token {
		return nil, ErrInvalidDeviceToken
	}

	return device, nil
}

// GetOwnedDevice is the shared ownership check behind every user-facing
// device operation. A device that does not exist and a device owned by a
// different user both come back as ErrNotFound so callers cannot probe
// for foreign device ids.
func (c *Controller) GetOwnedDevice(
	ctx context.Context,
	userID uuid.UUID,
	deviceID string,
) (*md.Device, error) {
	const op = "devices.GetOwnedDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	device, err := c.repo.GetOwnedDevice(ctx, userID, deviceID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return device, nil
}

func (c *Controller) ListDevices(ctx context.Context, userID uuid.UUID) ([]md.Device, error) {
	const op = "devices.ListDevices.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := make([]md.Device, 0)
	cacheKey := fmt.Sprintf(devicesListKey, userID)
	if err := c.cache.GetToStruct(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListDevices(ctx, userID)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}
