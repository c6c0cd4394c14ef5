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
	"github.com/leanmaker/leanmaker/internal/project/internal/domain"
	"gorm.io/gorm"
)

var (
	ErrConcurrentTransition     = errors.New("项目状态已被并发修改")
	ErrNoAcceptedApplications   = errors.New("没有已接受的申请，项目不能启动")
	ErrCapacityBelowCurrent     = errors.New("名额不能低于当前在派人数")
	ErrProjectNotFound          = gorm.ErrRecordNotFound
)

type ProjectDAO interface {
	// Create 建项目并累加企业的项目总数
	Create(ctx context.Context, p Project) (int64, error)
	FindById(ctx context.Context, id int64) (Project, error)
	ListPublished(ctx context.Context, offset, limit int) ([]Project, error)
	CountPublished(ctx context.Context) (int64, error)
	ListByCompany(ctx context.Context, companyId int64, offset, limit int) ([]Project, error)
	List(ctx context.Context, offset, limit int) ([]Project, error)
	Count(ctx context.Context) (int64, error)
	// ListCompletedAfter 按 id 升序分批捞已结项的项目，结项补账用
	ListCompletedAfter(ctx context.Context, lastId int64, limit int) ([]Project, error)
	// UpdateFields 只更新 fields 里的列；调低名额时以当前在派人数为下限
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	// Transition 带审计的条件状态流转，终态会级联派遣与申请
	Transition(ctx context.Context, id int64, from, to domain.Status, actorId int64, role string, note string) error
	IncrViews(ctx context.Context, id int64) error
	Audits(ctx context.Context, id int64) ([]StatusAudit, error)
}

type GORMProjectDAO struct {
	db *egorm.Component
}

func NewGORMProjectDAO(db *egorm.Component) ProjectDAO {
	return &GORMProjectDAO{db: db}
}

func (g *GORMProjectDAO) Create(ctx context.Context, p Project) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		return tx.Model(&CompanyRef{}).Where("id = ?", p.CompanyId).
			Updates(map[string]any{
				"total_projects": gorm.Expr("total_projects + 1"),
				"utime":          now,
			}).Error
	})
	if err != nil {
		return 0, err
	}
	return p.Id, nil
}

func (g *GORMProjectDAO) FindById(ctx context.Context, id int64) (Project, error) {
	var p Project
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (g *GORMProjectDAO) ListPublished(ctx context.Context, offset, limit int) ([]Project, error) {
	var res []Project
	err := g.db.WithContext(ctx).Where("status = ?", domain.StatusPublished.String()).
		Order("published_at DESC, id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMProjectDAO) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Project{}).
		Where("status = ?", domain.StatusPublished.String()).Count(&count).Error
	return count, err
}

func (g *GORMProjectDAO) ListByCompany(ctx context.Context, companyId int64, offset, limit int) ([]Project, error) {
	var res []Project
	err := g.db.WithContext(ctx).Where("company_id = ?", companyId).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMProjectDAO) List(ctx context.Context, offset, limit int) ([]Project, error) {
	var res []Project
	err := g.db.WithContext(ctx).Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMProjectDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Project{}).Count(&count).Error
	return count, err
}

func (g *GORMProjectDAO) ListCompletedAfter(ctx context.Context, lastId int64, limit int) ([]Project, error) {
	var res []Project
	err := g.db.WithContext(ctx).
		Where("status = 'completed' AND id > ?", lastId).
		Order("id ASC").Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMProjectDAO) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	fields["utime"] = time.Now().UnixMilli()
	query := g.db.WithContext(ctx).Model(&Project{}).Where("id = ?", id)
	if maxStudents, ok := fields["max_students"]; ok {
		query = query.Where("current_students <= ?", maxStudents)
	}
	res := query.Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var p Project
		if err := g.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
			return err
		}
		return ErrCapacityBelowCurrent
	}
	return nil
}

func (g *GORMProjectDAO) Transition(ctx context.Context, id int64, from, to domain.Status,
	actorId int64, role string, note string) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p Project
		if err := tx.Where("id = ?", id).First(&p).Error; err != nil {
			return err
		}
		if from == domain.StatusPublished && to == domain.StatusActive {
			var accepted int64
			err := tx.Model(&ApplicationRef{}).
				Where("project_id = ? AND status IN ('accepted', 'active')", id).
				Count(&accepted).Error
			if err != nil {
				return err
			}
			if accepted == 0 {
				return ErrNoAcceptedApplications
			}
		}
		res := tx.Model(&Project{}).
			Where("id = ? AND status = ?", id, from.String()).
			Updates(map[string]any{"status": to.String(), "utime": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConcurrentTransition
		}
		if to == domain.StatusPublished {
			// published_at 只在首次发布时落值，同时把项目工时计入企业的总供给
			res = tx.Model(&Project{}).
				Where("id = ? AND published_at IS NULL", id).
				Updates(map[string]any{"published_at": now})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				if err := tx.Model(&CompanyRef{}).Where("id = ?", p.CompanyId).
					Updates(map[string]any{
						"total_hours_offered": gorm.Expr("total_hours_offered + ?", p.RequiredHours),
						"utime":               now,
					}).Error; err != nil {
					return err
				}
			}
		}
		if to.IsFinalized() {
			if err := tx.Model(&Project{}).
				Where("id = ? AND real_end_date IS NULL", id).
				Updates(map[string]any{"real_end_date": now}).Error; err != nil {
				return err
			}
			if err := g.cascadeFinalize(tx, id, to, now); err != nil {
				return err
			}
			if to == domain.StatusCompleted {
				if err := tx.Model(&CompanyRef{}).Where("id = ?", p.CompanyId).
					Updates(map[string]any{
						"projects_completed": gorm.Expr("projects_completed + 1"),
						"utime":              now,
					}).Error; err != nil {
					return err
				}
			}
		}
		audit := StatusAudit{
			SubjectType: "project",
			SubjectId:   id,
			FromStatus:  from.String(),
			ToStatus:    to.String(),
			ActorId:     actorId,
			ActorRole:   role,
			Note:        note,
			Ctime:       now,
		}
		return tx.Create(&audit).Error
	})
}

// cascadeFinalize 项目进入终态时收口它名下的派遣和申请
func (g *GORMProjectDAO) cascadeFinalize(tx *gorm.DB, projectId int64, to domain.Status, now int64) error {
	asgTarget := "cancelled"
	if to == domain.StatusCompleted {
		asgTarget = "completed"
	}
	err := tx.Model(&AssignmentRef{}).
		Where("project_id = ? AND status IN ('pending', 'active')", projectId).
		Updates(map[string]any{
			"status":   asgTarget,
			"end_date": now,
			"utime":    now,
		}).Error
	if err != nil {
		return err
	}
	if to == domain.StatusCompleted {
		// 在岗的申请随项目完结，未处理的申请按容量策略拒绝
		err = tx.Model(&ApplicationRef{}).
			Where("project_id = ? AND status IN ('accepted', 'active')", projectId).
			Updates(map[string]any{
				"status":     "completed",
				"active_key": nil,
				"utime":      now,
			}).Error
		if err != nil {
			return err
		}
		return tx.Model(&ApplicationRef{}).
			Where("project_id = ? AND status IN ('pending', 'reviewing', 'interviewed')", projectId).
			Updates(map[string]any{
				"status":     "rejected",
				"active_key": nil,
				"utime":      now,
			}).Error
	}
	return tx.Model(&ApplicationRef{}).
		Where("project_id = ? AND status IN ('pending', 'reviewing', 'interviewed', 'accepted', 'active')", projectId).
		Updates(map[string]any{
			"status":     "cancelled",
			"active_key": nil,
			"utime":      now,
		}).Error
}

func (g *GORMProjectDAO) IncrViews(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Model(&Project{}).Where("id = ?", id).
		Updates(map[string]any{"views_count": gorm.Expr("views_count + 1")}).Error
}

func (g *GORMProjectDAO) Audits(ctx context.Context, id int64) ([]StatusAudit, error) {
	var res []StatusAudit
	err := g.db.WithContext(ctx).
		Where("subject_type = 'project' AND subject_id = ?", id).
		Order("id ASC").Find(&res).Error
	return res, err
}

type Project struct {
	Id           int64  `gorm:"primaryKey;autoIncrement"`
	CompanyId    int64  `gorm:"not null;index:idx_company_id"`
	Title        string `gorm:"type:varchar(256);not null"`
	Description  string `gorm:"type:text"`
	Requirements string `gorm:"type:text"`
	Status       string `gorm:"type:varchar(32);not null;default:'draft';index:idx_status;comment:项目状态"`
	Trl          int    `gorm:"not null;comment:技术成熟度 1-9"`
	ApiLevel     int    `gorm:"not null;comment:由TRL推导的能力等级 1-4"`
	MinApiLevel  int    `gorm:"not null;comment:报名学生的能力门槛"`
	RequiredHours   int `gorm:"not null"`
	HoursPerWeek    int `gorm:"not null"`
	DurationWeeks   int `gorm:"not null"`
	MaxStudents     int `gorm:"not null;default:1"`
	CurrentStudents int `gorm:"not null;default:0"`
	StartDate        int64 `gorm:"not null;default:0"`
	EstimatedEndDate int64 `gorm:"not null;default:0"`
	RealEndDate      sql.Null[int64]
	ApplicationsCount int64 `gorm:"not null;default:0"`
	ViewsCount        int64 `gorm:"not null;default:0"`
	PublishedAt       sql.Null[int64]
	Ctime             int64
	Utime             int64
}

func (Project) TableName() string {
	return "projects"
}

// StatusAudit 项目与申请共用的状态流转审计表，由本模块建表
type StatusAudit struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	SubjectType string `gorm:"type:varchar(32);not null;index:idx_subject,priority:1;comment:project 或 application"`
	SubjectId   int64  `gorm:"not null;index:idx_subject,priority:2"`
	FromStatus  string `gorm:"type:varchar(32);not null"`
	ToStatus    string `gorm:"type:varchar(32);not null"`
	ActorId     int64  `gorm:"not null"`
	ActorRole   string `gorm:"type:varchar(16);not null"`
	Note        string `gorm:"type:varchar(512)"`
	Ctime       int64
}

func (StatusAudit) TableName() string {
	return "status_audits"
}

// CompanyRef 是 companies 表的局部映射，归属 company 模块
type CompanyRef struct {
	Id                int64
	TotalProjects     int64
	ProjectsCompleted int64
	TotalHoursOffered int64
	Utime             int64
}

func (CompanyRef) TableName() string {
	return "companies"
}

// ApplicationRef 是 applications 表的局部映射，归属 application 模块
type ApplicationRef struct {
	Id        int64
	ProjectId int64
	StudentId int64
	Status    string
	ActiveKey sql.Null[uint8]
	Utime     int64
}

func (ApplicationRef) TableName() string {
	return "applications"
}

// AssignmentRef 是 assignments 表的局部映射，归属 application 模块
type AssignmentRef struct {
	Id        int64
	ProjectId int64
	Status    string
	EndDate   sql.Null[int64]
	Utime     int64
}

func (AssignmentRef) TableName() string {
	return "assignments"
}
