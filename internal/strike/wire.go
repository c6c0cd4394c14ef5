//go:build wireinject

package strike

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/leanmaker/leanmaker/internal/strike/internal/event"
	"github.com/leanmaker/leanmaker/internal/strike/internal/repository"
	"github.com/leanmaker/leanmaker/internal/strike/internal/repository/dao"
	"github.com/leanmaker/leanmaker/internal/strike/internal/service"
	"github.com/leanmaker/leanmaker/internal/strike/internal/web"
)

var HandlerSet = wire.NewSet(
	InitService,
	web.NewHandler,
	web.NewAdminHandler,
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(HandlerSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

func InitService(db *egorm.Component, q mq.MQ) (Service, error) {
	wire.Build(
		InitTablesOnce,
		event.NewSuspendedProducer,
		repository.NewStrikeRepository,
		service.NewStrikeService,
	)
	return nil, nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.StrikeDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMStrikeDAO(db)
}
