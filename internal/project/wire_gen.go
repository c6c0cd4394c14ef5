// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package project

import (
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
	service2 "github.com/leanmaker/leanmaker/internal/project/internal/service"
	"github.com/leanmaker/leanmaker/internal/project/internal/web"
	"github.com/leanmaker/leanmaker/internal/workhour"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, ec ecache.Cache, q mq.MQ, workHourModule *workhour.Module) (*Module, error) {
	workHourService := workHourModule.Svc
	projectService, err := InitService(db, ec, q, workHourService)
	if err != nil {
		return nil, err
	}
	adminHandler := web.NewAdminHandler(projectService)
	handler := web.NewHandler(projectService)
	completionMintJob := job.NewCompletionMintJob(projectService)
	module := &Module{
		AdminHdl: adminHandler,
		Hdl:      handler,
		Svc:      projectService,
		MintJob:  completionMintJob,
	}
	return module, nil
}

func InitService(db *gorm.DB, ec ecache.Cache, q mq.MQ, workHourSvc workhour.Service) (service2.ProjectService, error) {
	projectDAO := InitTablesOnce(db)
	projectCache := cache.NewProjectCache(ec)
	projectRepository := repository.NewProjectRepository(projectDAO, projectCache)
	capabilityPolicy := initCapabilityPolicy()
	int2 := initReconcileBatchSize()
	stateChangedProducer, err := event.NewStateChangedProducer(q)
	if err != nil {
		return nil, err
	}
	repairedProducer, err := event.NewRepairedProducer(q)
	if err != nil {
		return nil, err
	}
	projectService := service2.NewProjectService(projectRepository, workHourSvc, capabilityPolicy, int2, stateChangedProducer, repairedProducer)
	return projectService, nil
}

// wire.go:

var HandlerSet = wire.NewSet(
	InitService, web.NewHandler, web.NewAdminHandler, job.NewCompletionMintJob,
)

// 能力档位的处置策略在建站时定死，默认 strict
func initCapabilityPolicy() service2.CapabilityPolicy {
	policy := econf.GetString("plpe.capabilityPolicy")
	if policy == "" {
		policy = string(service2.PolicyStrict)
	}
	return service2.CapabilityPolicy(policy)
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
