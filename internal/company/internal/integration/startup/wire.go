//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/leanmaker/leanmaker/internal/company"
	testioc "github.com/leanmaker/leanmaker/internal/test/ioc"
)

func InitModule() (*company.Module, error) {
	wire.Build(testioc.BaseSet, company.InitModule)
	return new(company.Module), nil
}
