// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package strike

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/leanmaker/leanmaker/internal/strike/internal/event"
	"github.com/leanmaker/leanmaker/internal/strike/internal/repository"
	"github.com/leanmaker/leanmaker/internal/strike/internal/repository/dao"
	"github.com/leanmaker/leanmaker/internal/strike/internal/service"
	"github.com/leanmaker/leanmaker/internal/strike/internal/web"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, q mq.MQ) (*Module, error) {
	strikeService, err := InitService(db, q)
	if err != nil {
		return nil, err
	}
	adminHandler := web.NewAdminHandler(strikeService)
	handler := web.NewHandler(strikeService)
	module := &Module{
		AdminHdl: adminHandler,
		Hdl:      handler,
		Svc:      strikeService,
	}
	return module, nil
}

func InitService(db *gorm.DB, q mq.MQ) (service.StrikeService, error) {
	strikeDAO := InitTablesOnce(db)
	strikeRepository := repository.NewStrikeRepository(strikeDAO)
	suspendedProducer, err := event.NewSuspendedProducer(q)
	if err != nil {
		return nil, err
	}
	strikeService := service.NewStrikeService(strikeRepository, suspendedProducer)
	return strikeService, nil
}

// wire.go:

var HandlerSet = wire.NewSet(
	InitService, web.NewHandler, web.NewAdminHandler,
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.StrikeDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMStrikeDAO(db)
}
