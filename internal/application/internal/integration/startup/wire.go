//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/leanmaker/leanmaker/internal/application"
	"github.com/leanmaker/leanmaker/internal/project"
	"github.com/leanmaker/leanmaker/internal/student"
	testioc "github.com/leanmaker/leanmaker/internal/test/ioc"
	"github.com/leanmaker/leanmaker/internal/workhour"
)

func InitModule() (*application.Module, error) {
	wire.Build(
		testioc.BaseSet,
		workhour.InitModule,
		project.InitModule,
		student.InitModule,
		application.InitModule,
	)
	return new(application.Module), nil
}
