// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package evaluation

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/leanmaker/leanmaker/internal/application"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/event"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/job"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/repository"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/repository/dao"
	service3 "github.com/leanmaker/leanmaker/internal/evaluation/internal/service"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/web"
	"github.com/leanmaker/leanmaker/internal/project"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, q mq.MQ, projectModule *project.Module, applicationModule *application.Module) (*Module, error) {
	projectService := projectModule.Svc
	applicationService := applicationModule.Svc
	evaluationService, err := InitService(db, q, projectService, applicationService)
	if err != nil {
		return nil, err
	}
	adminHandler := web.NewAdminHandler(evaluationService)
	handler := web.NewHandler(evaluationService)
	recomputeAggregatesJob := job.NewRecomputeAggregatesJob(evaluationService)
	module := &Module{
		AdminHdl:     adminHandler,
		Hdl:          handler,
		Svc:          evaluationService,
		RecomputeJob: recomputeAggregatesJob,
	}
	return module, nil
}

func InitService(db *gorm.DB, q mq.MQ, projectSvc project.Service, applicationSvc application.Service) (service3.EvaluationService, error) {
	evaluationDAO := InitTablesOnce(db)
	evaluationRepository := repository.NewEvaluationRepository(evaluationDAO)
	completedProducer, err := event.NewCompletedProducer(q)
	if err != nil {
		return nil, err
	}
	recomputedProducer, err := event.NewRecomputedProducer(q)
	if err != nil {
		return nil, err
	}
	int2 := initRecomputeBatchSize()
	evaluationService := service3.NewEvaluationService(evaluationRepository, projectSvc, applicationSvc, completedProducer, recomputedProducer, int2)
	return evaluationService, nil
}

// wire.go:

var HandlerSet = wire.NewSet(
	InitService, web.NewHandler, web.NewAdminHandler,
)

// 全量重算的扫表批大小，默认 500
func initRecomputeBatchSize() int {
	size := econf.GetInt("plpe.reconcileBatchSize")
	if size <= 0 {
		size = 500
	}
	return size
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.EvaluationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMEvaluationDAO(db)
}
