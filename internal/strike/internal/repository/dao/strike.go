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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrStrikeNotActive = errors.New("记过已失效")

// IssueResult 签发后的学生侧状态
type IssueResult struct {
	Id int64
	// 签发后学生的生效记过数
	ActiveStrikes int64
	// 本次签发是否触发了停用
	Suspended bool
}

type StrikeDAO interface {
	// Issue 签发记过并同步学生计数，满三次在同一事务里停用学生
	Issue(ctx context.Context, strike Strike) (IssueResult, error)
	// Deactivate 把记过置为失效并回退计数，不自动恢复学生状态
	Deactivate(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (Strike, error)
	ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]Strike, error)
	CountActive(ctx context.Context, studentId int64) (int64, error)
}

type GORMStrikeDAO struct {
	db *egorm.Component
}

func NewGORMStrikeDAO(db *egorm.Component) StrikeDAO {
	return &GORMStrikeDAO{db: db}
}

func (g *GORMStrikeDAO) Issue(ctx context.Context, strike Strike) (IssueResult, error) {
	var res IssueResult
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var student StudentRef
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", strike.StudentId).First(&student).Error; err != nil {
			return err
		}
		strike.IsActive = true
		if strike.IssuedAt == 0 {
			strike.IssuedAt = now
		}
		strike.Ctime, strike.Utime = now, now
		if err := tx.Create(&strike).Error; err != nil {
			return err
		}
		res.Id = strike.Id
		res.ActiveStrikes = student.Strikes + 1
		updates := map[string]any{
			"strikes": gorm.Expr("strikes + 1"),
			"utime":   now,
		}
		// 三次生效记过直接在签发事务里停用
		if res.ActiveStrikes >= 3 && student.Status != "suspended" {
			updates["status"] = "suspended"
			res.Suspended = true
		}
		return tx.Model(&StudentRef{}).Where("id = ?", strike.StudentId).
			Updates(updates).Error
	})
	return res, err
}

func (g *GORMStrikeDAO) Deactivate(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var strike Strike
		if err := tx.Where("id = ?", id).First(&strike).Error; err != nil {
			return err
		}
		if !strike.IsActive {
			return ErrStrikeNotActive
		}
		now := time.Now().UnixMilli()
		if err := tx.Model(&Strike{}).Where("id = ?", id).
			Updates(map[string]any{"is_active": false, "utime": now}).Error; err != nil {
			return err
		}
		// 只回退计数，停用状态要管理员另行恢复
		return tx.Model(&StudentRef{}).
			Where("id = ? AND strikes > 0", strike.StudentId).
			Updates(map[string]any{
				"strikes": gorm.Expr("strikes - 1"),
				"utime":   now,
			}).Error
	})
}

func (g *GORMStrikeDAO) FindById(ctx context.Context, id int64) (Strike, error) {
	var strike Strike
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&strike).Error
	return strike, err
}

func (g *GORMStrikeDAO) ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]Strike, error) {
	var strikes []Strike
	err := g.db.WithContext(ctx).Where("student_id = ?", studentId).
		Order("id DESC").Offset(offset).Limit(limit).Find(&strikes).Error
	return strikes, err
}

func (g *GORMStrikeDAO) CountActive(ctx context.Context, studentId int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Strike{}).
		Where("student_id = ? AND is_active = true", studentId).Count(&count).Error
	return count, err
}

type Strike struct {
	Id        int64 `gorm:"primaryKey;autoIncrement"`
	StudentId int64 `gorm:"not null;index:idx_student_id"`
	CompanyId sql.Null[int64]
	ProjectId sql.Null[int64]
	Reason    string `gorm:"type:varchar(512);not null"`
	Severity  string `gorm:"type:varchar(16);not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	IssuedAt  int64  `gorm:"not null"`
	Ctime     int64
	Utime     int64
}

func (Strike) TableName() string {
	return "strikes"
}

// StudentRef 是 students 表的局部映射，归属 student 模块，
// strikes 与停用状态只在本模块的签发/失效事务里改动
type StudentRef struct {
	Id      int64
	Strikes int64
	Status  string
	Utime   int64
}

func (StudentRef) TableName() string {
	return "students"
}
