// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/leanmaker/leanmaker/internal/student"
	"github.com/leanmaker/leanmaker/internal/test/ioc"
)

// Injectors from wire.go:

func InitModule() (*student.Module, error) {
	db := testioc.InitDB()
	module, err := student.InitModule(db)
	if err != nil {
		return nil, err
	}
	return module, nil
}
