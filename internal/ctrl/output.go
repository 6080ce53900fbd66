package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/indianiiot/telemetry-backend/internal/config"
	"github.com/indianiiot/telemetry-backend/internal/dto"
	md "github.com/indianiiot/telemetry-backend/internal/models"
	"github.com/indianiiot/telemetry-backend/internal/repo"
	"github.com/opentracing/opentracing-go"
)

type outputCtrl interface {
	CreateOutput(
		ctx context.Context,
		userID uuid.UUID,
		deviceID string,
		req *dto.CreateOutputRequest,
	) (*md.DeviceOutput, error)
	ListOutputs(ctx context.Context, deviceID string) ([]md.DeviceOutput, error)
	UpdateOutputState(
		ctx context.Context,
		userID uuid.UUID,
		outputID uint64,
		isActive bool,
	) (*md.DeviceOutput, error)
}

type outputRepo interface {
	CreateOutput(
		ctx context.Context,
		deviceID string,
		req *dto.CreateOutputRequest,
	) (*md.DeviceOutput, error)
	ListOutputs(ctx context.Context, deviceID string) ([]md.DeviceOutput, error)
	GetOutput(ctx context.Context, outputID uint64) (*md.DeviceOutput, error)
	UpdateOutputState(ctx context.Context, outputID uint64, isActive bool) (*md.DeviceOutput, error)
}

const outputsListKey = "outputs-list:%v"

func (c *Controller) CreateOutput(
	ctx context.Context,
	userID uuid.UUID,
	deviceID string,
	req *dto.CreateOutputRequest,
) (*md.DeviceOutput, error) {
	const op = "outputs.CreateOutput.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.GetOwnedDevice(ctx, userID, deviceID); err != nil {
		return nil, err
	}

	res, err := c.repo.CreateOutput(ctx, deviceID, req)
	if err != nil {
		return nil, err
	}

	c.cache.Delete(ctx, fmt.Sprintf(outputsListKey, deviceID))

	return res, nil
}

// ListOutputs has no caller identity on purpose: the firmware polls the
// desired relay state with nothing but its device id.
func (c *Controller) ListOutputs(ctx context.Context, deviceID string) ([]md.DeviceOutput, error) {
	const op = "outputs.ListOutputs.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := make([]md.DeviceOutput, 0)
	cacheKey := fmt.Sprintf(outputsListKey, deviceID)
	if err := c.cache.GetToStruct(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListOutputs(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.MinCacheTime, cacheKey, bytes)
	}

	return res, nil
}

// UpdateOutputState resolves the output, re-derives its owning device and
// verifies the acting user owns it before overwriting the flag. A missing
// output and a foreign output are distinct failures here: the output id
// space is surrogate and leaks nothing about devices.
func (c *Controller) UpdateOutputState(
	ctx context.Context,
	userID uuid.UUID,
	outputID uint64,
	isActive bool,
) (*md.DeviceOutput, error) {
	const op = "outputs.UpdateOutputState.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	output, err := c.repo.GetOutput(ctx, outputID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err = c.repo.GetOwnedDevice(ctx, userID, output.DeviceID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, err
	}

	res, err := c.repo.UpdateOutputState(ctx, outputID, isActive)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	c.cache.Delete(ctx, fmt.Sprintf(outputsListKey, output.DeviceID))

	return res, nil
}
