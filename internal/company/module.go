package company

import (
	"github.com/leanmaker/leanmaker/internal/company/internal/domain"
	"github.com/leanmaker/leanmaker/internal/company/internal/service"
	"github.com/leanmaker/leanmaker/internal/company/internal/web"
)

type (
	AdminHandler  = web.CompanyHandler
	Handler       = web.Handler
	Service       = service.CompanyService
	Company       = domain.Company
	CompanyStatus = domain.CompanyStatus
)

const (
	CompanyStatusActive    = domain.CompanyStatusActive
	CompanyStatusInactive  = domain.CompanyStatusInactive
	CompanyStatusSuspended = domain.CompanyStatusSuspended
)

type Module struct {
	AdminHdl *AdminHandler
	Hdl      *Handler
	Svc      Service
}
