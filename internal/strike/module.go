package strike

import (
	"github.com/leanmaker/leanmaker/internal/strike/internal/domain"
	"github.com/leanmaker/leanmaker/internal/strike/internal/service"
	"github.com/leanmaker/leanmaker/internal/strike/internal/web"
)

type (
	AdminHandler = web.AdminHandler
	Handler      = web.Handler
	Service      = service.StrikeService
	Strike       = domain.Strike
)

const MaxActiveStrikes = domain.MaxActiveStrikes

type Module struct {
	AdminHdl *AdminHandler
	Hdl      *Handler
	Svc      Service
}
