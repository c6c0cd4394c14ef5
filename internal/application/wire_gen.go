// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package application

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/leanmaker/leanmaker/internal/application/internal/event"
	"github.com/leanmaker/leanmaker/internal/application/internal/repository"
	"github.com/leanmaker/leanmaker/internal/application/internal/repository/dao"
	service3 "github.com/leanmaker/leanmaker/internal/application/internal/service"
	"github.com/leanmaker/leanmaker/internal/application/internal/web"
	"github.com/leanmaker/leanmaker/internal/project"
	"github.com/leanmaker/leanmaker/internal/student"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, q mq.MQ, studentModule *student.Module, projectModule *project.Module) (*Module, error) {
	studentService := studentModule.Svc
	projectService := projectModule.Svc
	applicationService, err := InitService(db, q, studentService, projectService)
	if err != nil {
		return nil, err
	}
	handler := web.NewHandler(applicationService)
	module := &Module{
		Hdl: handler,
		Svc: applicationService,
	}
	return module, nil
}

func InitService(db *gorm.DB, q mq.MQ, studentSvc student.Service, projectSvc project.Service) (service3.ApplicationService, error) {
	applicationDAO := InitTablesOnce(db)
	applicationRepository := repository.NewApplicationRepository(applicationDAO)
	acceptedProducer, err := event.NewAcceptedProducer(q)
	if err != nil {
		return nil, err
	}
	applicationService := service3.NewApplicationService(applicationRepository, studentSvc, projectSvc, acceptedProducer)
	return applicationService, nil
}

// wire.go:

var HandlerSet = wire.NewSet(
	InitService, web.NewHandler,
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ApplicationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMApplicationDAO(db)
}
