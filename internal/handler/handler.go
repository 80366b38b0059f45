package handler

import (
	"context"

	"github.com/taskhive-dev/taskhive/internal/service"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth   service.AuthService
	task   service.TaskService
	health Pinger
}

func New(auth service.AuthService, task service.TaskService, health Pinger) *Handler {
	return &Handler{auth: auth, task: task, health: health}
}
