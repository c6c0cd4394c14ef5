//go:build wireinject

package evaluation

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/leanmaker/leanmaker/internal/application"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/event"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/job"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/repository"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/repository/dao"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/service"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/web"
	"github.com/leanmaker/leanmaker/internal/project"
)

var HandlerSet = wire.NewSet(
	InitService,
	web.NewHandler,
	web.NewAdminHandler,
)

func InitModule(db *egorm.Component, q mq.MQ,
	projectModule *project.Module, applicationModule *application.Module) (*Module, error) {
	wire.Build(
		HandlerSet,
		job.NewRecomputeAggregatesJob,
		wire.FieldsOf(new(*project.Module), "Svc"),
		wire.FieldsOf(new(*application.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func InitService(db *egorm.Component, q mq.MQ,
	projectSvc project.Service, applicationSvc application.Service) (Service, error) {
	wire.Build(
		InitTablesOnce,
		initRecomputeBatchSize,
		event.NewCompletedProducer,
		event.NewRecomputedProducer,
		repository.NewEvaluationRepository,
		service.NewEvaluationService,
	)
	return nil, nil
}

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
