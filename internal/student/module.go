package student

import (
	"github.com/leanmaker/leanmaker/internal/student/internal/domain"
	"github.com/leanmaker/leanmaker/internal/student/internal/service"
	"github.com/leanmaker/leanmaker/internal/student/internal/web"
)

type (
	AdminHandler  = web.StudentHandler
	Handler       = web.Handler
	Service       = service.StudentService
	Student       = domain.Student
	StudentStatus = domain.StudentStatus
)

const (
	StudentStatusPending   = domain.StudentStatusPending
	StudentStatusApproved  = domain.StudentStatusApproved
	StudentStatusSuspended = domain.StudentStatusSuspended
	StudentStatusRejected  = domain.StudentStatusRejected
	StudentStatusBlocked   = domain.StudentStatusBlocked

	MaxActiveStrikes = domain.MaxActiveStrikes
)

type Module struct {
	AdminHdl *AdminHandler
	Hdl      *Handler
	Svc      Service
}
