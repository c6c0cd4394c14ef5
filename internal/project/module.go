package project

import (
	"github.com/leanmaker/leanmaker/internal/project/internal/domain"
	"github.com/leanmaker/leanmaker/internal/project/internal/job"
	"github.com/leanmaker/leanmaker/internal/project/internal/service"
	"github.com/leanmaker/leanmaker/internal/project/internal/web"
)

type (
	AdminHandler      = web.AdminHandler
	Handler           = web.Handler
	Service           = service.ProjectService
	Project           = domain.Project
	Status            = domain.Status
	CompletionMintJob = job.CompletionMintJob
)

const (
	StatusDraft      = domain.StatusDraft
	StatusPublished  = domain.StatusPublished
	StatusActive     = domain.StatusActive
	StatusInProgress = domain.StatusInProgress
	StatusCompleted  = domain.StatusCompleted
	StatusCancelled  = domain.StatusCancelled
	StatusSuspended  = domain.StatusSuspended
	StatusDeleted    = domain.StatusDeleted
)

// ParseStatus 供接入层归一化外部状态输入
var ParseStatus = domain.ParseStatus

type Module struct {
	AdminHdl *AdminHandler
	Hdl      *Handler
	Svc      Service
	MintJob  *CompletionMintJob
}
