//go:build wireinject

package startup

import (
	"github.com/google/wire"
	testioc "github.com/leanmaker/leanmaker/internal/test/ioc"
	"github.com/leanmaker/leanmaker/internal/workhour"
)

func InitModule() (*workhour.Module, error) {
	wire.Build(testioc.BaseSet, workhour.InitModule)
	return new(workhour.Module), nil
}
