package setup

import (
	"github.com/taskhive-dev/taskhive/internal/config"
	"github.com/taskhive-dev/taskhive/internal/handler"
	"github.com/taskhive-dev/taskhive/internal/jwt"
	"github.com/taskhive-dev/taskhive/internal/middleware"
	"github.com/taskhive-dev/taskhive/internal/service"
	"github.com/taskhive-dev/taskhive/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
}

// SetupDependencies initializes all dependencies required for the
// application. A missing signing key fails here, before any traffic is
// served.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	tokens, err := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	auth := service.NewAuth(storage, tokens)
	task := service.NewTask(storage)

	h := handler.New(auth, task, storage)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(tokens),
	}, nil
}
