// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package workhour

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/event"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/repository"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/repository/dao"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/service"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/web"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, q mq.MQ) (*Module, error) {
	workHourService, err := InitService(db, q)
	if err != nil {
		return nil, err
	}
	handler := web.NewHandler(workHourService)
	module := &Module{
		Hdl: handler,
		Svc: workHourService,
	}
	return module, nil
}

func InitService(db *gorm.DB, q mq.MQ) (service.WorkHourService, error) {
	workHourDAO := InitTablesOnce(db)
	workHourRepository := repository.NewWorkHourRepository(workHourDAO)
	workHourVerifiedProducer, err := event.NewWorkHourVerifiedProducer(q)
	if err != nil {
		return nil, err
	}
	workHourService := service.NewWorkHourService(workHourRepository, workHourVerifiedProducer)
	return workHourService, nil
}

// wire.go:

var HandlerSet = wire.NewSet(
	InitService, web.NewHandler,
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.WorkHourDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMWorkHourDAO(db)
}
