//go:build wireinject

package student

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/leanmaker/leanmaker/internal/student/internal/repository"
	"github.com/leanmaker/leanmaker/internal/student/internal/repository/dao"
	"github.com/leanmaker/leanmaker/internal/student/internal/service"
	"github.com/leanmaker/leanmaker/internal/student/internal/web"
)

var HandlerSet = wire.NewSet(
	InitService,
	web.NewStudentHandler,
	web.NewHandler,
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(HandlerSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

func InitService(db *egorm.Component) Service {
	wire.Build(
		InitTablesOnce,
		repository.NewStudentRepository,
		service.NewStudentService,
	)
	return nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.StudentDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMStudentDAO(db)
}
