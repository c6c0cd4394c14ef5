package evaluation

import (
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/domain"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/job"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/service"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/web"
)

type (
	AdminHandler = web.AdminHandler
	Handler      = web.Handler
	Service      = service.EvaluationService
	Evaluation   = domain.Evaluation
	Type         = domain.Type

	RecomputeAggregatesJob = job.RecomputeAggregatesJob
)

const (
	TypeCompanyToStudent = domain.TypeCompanyToStudent
	TypeStudentToCompany = domain.TypeStudentToCompany
)

type Module struct {
	AdminHdl     *AdminHandler
	Hdl          *Handler
	Svc          Service
	RecomputeJob *RecomputeAggregatesJob
}
