// Copyright 2023 leanmaker
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package database

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "leanmaker/internal/pkg/database"
	// span 在 gorm 实例设置里的存取键
	spanKey = "leanmaker:db:span"
)

// GormTracingPlugin 给每条 gorm 语句挂一个 otel 客户端 span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "leanmaker-db-tracing"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	type hook struct {
		op       string
		register func(before, after func(*gorm.DB)) error
	}
	hooks := []hook{
		{"select", func(b, a func(*gorm.DB)) error {
			if err := db.Callback().Query().Before("gorm:query").Register("leanmaker:trace_before_select", b); err != nil {
				return err
			}
			return db.Callback().Query().After("gorm:query").Register("leanmaker:trace_after_select", a)
		}},
		{"insert", func(b, a func(*gorm.DB)) error {
			if err := db.Callback().Create().Before("gorm:create").Register("leanmaker:trace_before_insert", b); err != nil {
				return err
			}
			return db.Callback().Create().After("gorm:create").Register("leanmaker:trace_after_insert", a)
		}},
		{"update", func(b, a func(*gorm.DB)) error {
			if err := db.Callback().Update().Before("gorm:update").Register("leanmaker:trace_before_update", b); err != nil {
				return err
			}
			return db.Callback().Update().After("gorm:update").Register("leanmaker:trace_after_update", a)
		}},
		{"delete", func(b, a func(*gorm.DB)) error {
			if err := db.Callback().Delete().Before("gorm:delete").Register("leanmaker:trace_before_delete", b); err != nil {
				return err
			}
			return db.Callback().Delete().After("gorm:delete").Register("leanmaker:trace_after_delete", a)
		}},
		{"raw", func(b, a func(*gorm.DB)) error {
			if err := db.Callback().Raw().Before("gorm:raw").Register("leanmaker:trace_before_raw", b); err != nil {
				return err
			}
			return db.Callback().Raw().After("gorm:raw").Register("leanmaker:trace_after_raw", a)
		}},
	}
	for _, h := range hooks {
		if err := h.register(p.before(h.op), p.after); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(op string) func(*gorm.DB) {
	spanName := "db." + op
	return func(db *gorm.DB) {
		ctx := context.Background()
		if db.Statement != nil && db.Statement.Context != nil {
			ctx = db.Statement.Context
		}
		ctx, span := p.tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.Set(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	v, ok := db.Get(spanKey)
	if !ok {
		return
	}
	span, ok := v.(trace.Span)
	if !ok {
		return
	}
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.String("db.system", "mysql"),
	}
	if stmt := db.Statement; stmt != nil {
		table := stmt.Table
		if stmt.Schema != nil {
			table = stmt.Schema.Table
		}
		if table != "" {
			attrs = append(attrs, attribute.String("db.table", table))
		}
		if sql := stmt.SQL.String(); sql != "" {
			attrs = append(attrs, attribute.String("db.statement", sql))
		}
		if stmt.RowsAffected > 0 {
			attrs = append(attrs, attribute.Int64("db.rows_affected", stmt.RowsAffected))
		}
	}
	span.SetAttributes(attrs...)

	// 查不到记录属于业务分支，不算语句失败
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
