//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/leanmaker/leanmaker/internal/strike"
	testioc "github.com/leanmaker/leanmaker/internal/test/ioc"
)

func InitModule() (*strike.Module, error) {
	wire.Build(testioc.BaseSet, strike.InitModule)
	return new(strike.Module), nil
}
