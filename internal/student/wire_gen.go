// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package student

import (
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/leanmaker/leanmaker/internal/student/internal/repository"
	"github.com/leanmaker/leanmaker/internal/student/internal/repository/dao"
	"github.com/leanmaker/leanmaker/internal/student/internal/service"
	"github.com/leanmaker/leanmaker/internal/student/internal/web"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB) (*Module, error) {
	studentService := InitService(db)
	studentHandler := web.NewStudentHandler(studentService)
	handler := web.NewHandler(studentService)
	module := &Module{
		AdminHdl: studentHandler,
		Hdl:      handler,
		Svc:      studentService,
	}
	return module, nil
}

func InitService(db *gorm.DB) service.StudentService {
	studentDAO := InitTablesOnce(db)
	studentRepository := repository.NewStudentRepository(studentDAO)
	studentService := service.NewStudentService(studentRepository)
	return studentService
}

// wire.go:

var HandlerSet = wire.NewSet(
	InitService, web.NewStudentHandler, web.NewHandler,
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.StudentDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMStudentDAO(db)
}
