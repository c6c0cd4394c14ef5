package workhour

import (
	"github.com/leanmaker/leanmaker/internal/workhour/internal/domain"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/service"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/web"
)

type (
	Handler  = web.Handler
	Service  = service.WorkHourService
	WorkHour = domain.WorkHour
)

const MaxHoursPerEntry = domain.MaxHoursPerEntry

type Module struct {
	Hdl *Handler
	Svc Service
}
