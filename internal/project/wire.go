//go:build wireinject

package project

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/leanmaker/leanmaker/internal/project/internal/event"
	"github.com/leanmaker/leanmaker/internal/project/internal/job"
	"github.com/leanmaker/leanmaker/internal/project/internal/repository"
	"github.com/leanmaker/leanmaker/internal/project/internal/repository/cache"
	"github.com/leanmaker/leanmaker/internal/project/internal/repository/dao"
	"github.com/leanmaker/leanmaker/internal/project/internal/service"
	"github.com/leanmaker/leanmaker/internal/project/internal/web"
	"github.com/leanmaker/leanmaker/internal/workhour"
)

var HandlerSet = wire.NewSet(
	InitService,
	web.NewHandler,
	web.NewAdminHandler,
	job.NewCompletionMintJob,
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, workHourModule *workhour.Module) (*Module, error) {
	wire.Build(
		HandlerSet,
		wire.FieldsOf(new(*workhour.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func InitService(db *egorm.Component, ec ecache.Cache, q mq.MQ, workHourSvc workhour.Service) (Service, error) {
	wire.Build(
		InitTablesOnce,
		initCapabilityPolicy,
		initReconcileBatchSize,
		cache.NewProjectCache,
		event.NewStateChangedProducer,
		event.NewRepairedProducer,
		repository.NewProjectRepository,
		service.NewProjectService,
	)
	return nil, nil
}

// 能力档位的处置策略在建站时定死，默认 strict
func initCapabilityPolicy() service.CapabilityPolicy {
	policy := econf.GetString("plpe.capabilityPolicy")
	if policy == "" {
		policy = string(service.PolicyStrict)
	}
	return service.CapabilityPolicy(policy)
}

// 结项补账扫描的批大小，与聚合重算共用一个配置
func initReconcileBatchSize() int {
	size := econf.GetInt("plpe.reconcileBatchSize")
	if size <= 0 {
		size = 500
	}
	return size
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ProjectDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMProjectDAO(db)
}
