//go:build wireinject

package workhour

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/event"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/repository"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/repository/dao"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/service"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/web"
)

var HandlerSet = wire.NewSet(
	InitService,
	web.NewHandler,
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(HandlerSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

func InitService(db *egorm.Component, q mq.MQ) (Service, error) {
	wire.Build(
		InitTablesOnce,
		event.NewWorkHourVerifiedProducer,
		repository.NewWorkHourRepository,
		service.NewWorkHourService,
	)
	return nil, nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.WorkHourDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMWorkHourDAO(db)
}
