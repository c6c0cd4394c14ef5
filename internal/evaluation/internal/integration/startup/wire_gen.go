// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/leanmaker/leanmaker/internal/application"
	"github.com/leanmaker/leanmaker/internal/evaluation"
	"github.com/leanmaker/leanmaker/internal/project"
	"github.com/leanmaker/leanmaker/internal/student"
	"github.com/leanmaker/leanmaker/internal/test/ioc"
	"github.com/leanmaker/leanmaker/internal/workhour"
)

// Injectors from wire.go:

func InitModule() (*evaluation.Module, error) {
	db := testioc.InitDB()
	mq := testioc.InitMQ()
	cache := testioc.InitCache()
	module, err := workhour.InitModule(db, mq)
	if err != nil {
		return nil, err
	}
	projectModule, err := project.InitModule(db, cache, mq, module)
	if err != nil {
		return nil, err
	}
	studentModule, err := student.InitModule(db)
	if err != nil {
		return nil, err
	}
	applicationModule, err := application.InitModule(db, mq, studentModule, projectModule)
	if err != nil {
		return nil, err
	}
	evaluationModule, err := evaluation.InitModule(db, mq, projectModule, applicationModule)
	if err != nil {
		return nil, err
	}
	return evaluationModule, nil
}
