//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/leanmaker/leanmaker/internal/student"
	testioc "github.com/leanmaker/leanmaker/internal/test/ioc"
)

func InitModule() (*student.Module, error) {
	wire.Build(testioc.BaseSet, student.InitModule)
	return new(student.Module), nil
}
