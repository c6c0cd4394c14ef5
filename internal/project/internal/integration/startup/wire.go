//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/leanmaker/leanmaker/internal/project"
	testioc "github.com/leanmaker/leanmaker/internal/test/ioc"
	"github.com/leanmaker/leanmaker/internal/workhour"
)

func InitModule() (*project.Module, error) {
	wire.Build(testioc.BaseSet, workhour.InitModule, project.InitModule)
	return new(project.Module), nil
}
