// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/leanmaker/leanmaker/internal/application"
	"github.com/leanmaker/leanmaker/internal/project"
	"github.com/leanmaker/leanmaker/internal/student"
	"github.com/leanmaker/leanmaker/internal/test/ioc"
	"github.com/leanmaker/leanmaker/internal/workhour"
)

// Injectors from wire.go:

func InitModule() (*application.Module, error) {
	db := testioc.InitDB()
	mq := testioc.InitMQ()
	module, err := student.InitModule(db)
	if err != nil {
		return nil, err
	}
	cache := testioc.InitCache()
	workhourModule, err := workhour.InitModule(db, mq)
	if err != nil {
		return nil, err
	}
	projectModule, err := project.InitModule(db, cache, mq, workhourModule)
	if err != nil {
		return nil, err
	}
	applicationModule, err := application.InitModule(db, mq, module, projectModule)
	if err != nil {
		return nil, err
	}
	return applicationModule, nil
}
