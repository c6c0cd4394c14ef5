// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/leanmaker/leanmaker/internal/project"
	"github.com/leanmaker/leanmaker/internal/test/ioc"
	"github.com/leanmaker/leanmaker/internal/workhour"
)

// Injectors from wire.go:

func InitModule() (*project.Module, error) {
	db := testioc.InitDB()
	cache := testioc.InitCache()
	mq := testioc.InitMQ()
	module, err := workhour.InitModule(db, mq)
	if err != nil {
		return nil, err
	}
	projectModule, err := project.InitModule(db, cache, mq, module)
	if err != nil {
		return nil, err
	}
	return projectModule, nil
}
