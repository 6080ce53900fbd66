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

type userCtrl interface {
	IsUserExist(ctx context.Context, email string) (*dto.ExistsUserResponse, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error)
	CreateUser(ctx context.Context, u *dto.CreateUserRequest) (*dto.CreateUserResponse, error)
}

type userRepo interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error)
	GetUserByEmail(ctx context.Context, email string) (*md.User, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (uuid.UUID, error)
}

const (
	userCacheKey = "user:%v"
	userPattern  = "user*"
)

func (c *Controller) IsUserExist(
	ctx context.Context,
	email string,
) (*dto.ExistsUserResponse, error) {
	const op = "users.IsUserExist.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &dto.ExistsUserResponse{Exists: false}

	_, err := c.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return res, nil
		}
		return nil, err
	}

	res.Exists = true

	return res, nil
}

func (c *Controller) GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error) {
	const op = "users.GetUserByID.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &md.User{}
	cacheKey := fmt.Sprintf(userCacheKey, userID)
	err := c.cache.GetToStruct(ctx, cacheKey, cached)
	if err == nil {
		return cached, nil
	}

	res, err := c.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) CreateUser(
	ctx context.Context,
	u *dto.CreateUserRequest,
) (*dto.CreateUserResponse, error) {
	const op = "users.CreateUser.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var err error

	u.Password, err = c.au.Hash(u.Password)
	if err != nil {
		return nil, err
	}

	id, err := c.repo.CreateUser(ctx, u)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	go c.cache.InvalidateKeysByPattern(ctx, userPattern)

	return &dto.CreateUserResponse{
		ID: id,
	}, nil
}
