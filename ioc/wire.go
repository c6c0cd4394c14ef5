//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/leanmaker/leanmaker/internal/application"
	"github.com/leanmaker/leanmaker/internal/company"
	"github.com/leanmaker/leanmaker/internal/evaluation"
	"github.com/leanmaker/leanmaker/internal/project"
	"github.com/leanmaker/leanmaker/internal/strike"
	"github.com/leanmaker/leanmaker/internal/student"
	"github.com/leanmaker/leanmaker/internal/workhour"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		company.InitModule,
		wire.FieldsOf(new(*company.Module), "Hdl", "AdminHdl"),
		student.InitModule,
		wire.FieldsOf(new(*student.Module), "Hdl", "AdminHdl"),
		workhour.InitModule,
		wire.FieldsOf(new(*workhour.Module), "Hdl"),
		project.InitModule,
		wire.FieldsOf(new(*project.Module), "Hdl", "AdminHdl", "MintJob"),
		application.InitModule,
		wire.FieldsOf(new(*application.Module), "Hdl"),
		evaluation.InitModule,
		wire.FieldsOf(new(*evaluation.Module), "Hdl", "AdminHdl", "RecomputeJob"),
		strike.InitModule,
		wire.FieldsOf(new(*strike.Module), "Hdl", "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs,
	)
	return new(App), nil
}
