package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/indianiiot/telemetry-backend/internal/auth"
)

type AppRepo interface {
	userRepo
	authRepo
	deviceRepo
	telemetryRepo
	outputRepo
}

type AppCtrl interface {
	userCtrl
	authCtrl
	deviceCtrl
	telemetryCtrl
	outputCtrl
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

type Controller struct {
	au    auth.Core
	repo  AppRepo
	cache CacheService
}

func New(au auth.Core, repo AppRepo, cache CacheService) *Controller {
	return &Controller{
		au:    au,
		repo:  repo,
		cache: cache,
	}
}
