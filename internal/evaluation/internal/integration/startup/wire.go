//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/leanmaker/leanmaker/internal/application"
	"github.com/leanmaker/leanmaker/internal/evaluation"
	"github.com/leanmaker/leanmaker/internal/project"
	"github.com/leanmaker/leanmaker/internal/student"
	testioc "github.com/leanmaker/leanmaker/internal/test/ioc"
	"github.com/leanmaker/leanmaker/internal/workhour"
)

func InitModule() (*evaluation.Module, error) {
	wire.Build(
		testioc.BaseSet,
		workhour.InitModule,
		project.InitModule,
		student.InitModule,
		application.InitModule,
		evaluation.InitModule,
	)
	return new(evaluation.Module), nil
}
