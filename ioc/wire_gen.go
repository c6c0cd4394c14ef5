// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/leanmaker/leanmaker/internal/application"
	"github.com/leanmaker/leanmaker/internal/company"
	"github.com/leanmaker/leanmaker/internal/evaluation"
	"github.com/leanmaker/leanmaker/internal/project"
	"github.com/leanmaker/leanmaker/internal/strike"
	"github.com/leanmaker/leanmaker/internal/student"
	"github.com/leanmaker/leanmaker/internal/workhour"
)

// Injectors from wire.go:

func InitApp() (*App, error) {
	cmdable := InitRedis()
	provider := InitSession(cmdable)
	db := InitDB()
	cache := InitCache(cmdable)
	mq := InitMQ()
	module, err := workhour.InitModule(db, mq)
	if err != nil {
		return nil, err
	}
	projectModule, err := project.InitModule(db, cache, mq, module)
	if err != nil {
		return nil, err
	}
	handler := projectModule.Hdl
	studentModule, err := student.InitModule(db)
	if err != nil {
		return nil, err
	}
	applicationModule, err := application.InitModule(db, mq, studentModule, projectModule)
	if err != nil {
		return nil, err
	}
	webHandler := applicationModule.Hdl
	handler2 := module.Hdl
	evaluationModule, err := evaluation.InitModule(db, mq, projectModule, applicationModule)
	if err != nil {
		return nil, err
	}
	handler3 := evaluationModule.Hdl
	strikeModule, err := strike.InitModule(db, mq)
	if err != nil {
		return nil, err
	}
	handler4 := strikeModule.Hdl
	handler5 := studentModule.Hdl
	companyModule, err := company.InitModule(db)
	if err != nil {
		return nil, err
	}
	handler6 := companyModule.Hdl
	component := initGinxServer(provider, handler, webHandler, handler2, handler3, handler4, handler5, handler6)
	adminHandler := projectModule.AdminHdl
	webAdminHandler := evaluationModule.AdminHdl
	adminHandler2 := strikeModule.AdminHdl
	studentHandler := studentModule.AdminHdl
	companyHandler := companyModule.AdminHdl
	adminServer := InitAdminServer(adminHandler, webAdminHandler, adminHandler2, studentHandler, companyHandler)
	recomputeAggregatesJob := evaluationModule.RecomputeJob
	completionMintJob := projectModule.MintJob
	v := initCronJobs(recomputeAggregatesJob, completionMintJob)
	app := &App{
		Web:   component,
		Admin: adminServer,
		Crons: v,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)
