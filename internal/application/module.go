package application

import (
	"github.com/leanmaker/leanmaker/internal/application/internal/domain"
	"github.com/leanmaker/leanmaker/internal/application/internal/service"
	"github.com/leanmaker/leanmaker/internal/application/internal/web"
)

type (
	Handler     = web.Handler
	Service     = service.ApplicationService
	Application = domain.Application
	Assignment  = domain.Assignment
	Status      = domain.Status
)

const (
	StatusPending   = domain.StatusPending
	StatusAccepted  = domain.StatusAccepted
	StatusActive    = domain.StatusActive
	StatusCompleted = domain.StatusCompleted
)

type Module struct {
	Hdl *Handler
	Svc Service
}
