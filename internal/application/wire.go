//go:build wireinject

package application

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/leanmaker/leanmaker/internal/application/internal/event"
	"github.com/leanmaker/leanmaker/internal/application/internal/repository"
	"github.com/leanmaker/leanmaker/internal/application/internal/repository/dao"
	"github.com/leanmaker/leanmaker/internal/application/internal/service"
	"github.com/leanmaker/leanmaker/internal/application/internal/web"
	"github.com/leanmaker/leanmaker/internal/project"
	"github.com/leanmaker/leanmaker/internal/student"
)

var HandlerSet = wire.NewSet(
	InitService,
	web.NewHandler,
)

func InitModule(db *egorm.Component, q mq.MQ,
	studentModule *student.Module, projectModule *project.Module) (*Module, error) {
	wire.Build(
		HandlerSet,
		wire.FieldsOf(new(*student.Module), "Svc"),
		wire.FieldsOf(new(*project.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func InitService(db *egorm.Component, q mq.MQ,
	studentSvc student.Service, projectSvc project.Service) (Service, error) {
	wire.Build(
		InitTablesOnce,
		event.NewAcceptedProducer,
		repository.NewApplicationRepository,
		service.NewApplicationService,
	)
	return nil, nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ApplicationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMApplicationDAO(db)
}
