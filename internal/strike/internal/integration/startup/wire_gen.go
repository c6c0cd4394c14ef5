// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/leanmaker/leanmaker/internal/strike"
	"github.com/leanmaker/leanmaker/internal/test/ioc"
)

// Injectors from wire.go:

func InitModule() (*strike.Module, error) {
	db := testioc.InitDB()
	mq := testioc.InitMQ()
	module, err := strike.InitModule(db, mq)
	if err != nil {
		return nil, err
	}
	return module, nil
}
