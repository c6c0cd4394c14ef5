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
	"github.com/go-sql-driver/mysql"
	"github.com/leanmaker/leanmaker/internal/application/internal/domain"
	"gorm.io/gorm"
)

var (
	ErrDuplicateApplication = errors.New("该项目上已有未完结的申请")
	ErrCapacityExceeded     = errors.New("项目名额已满")
	ErrConcurrentTransition = errors.New("申请状态已被并发修改")
	ErrProjectNotAccepting  = errors.New("项目当前不接受接收操作")
)

// AcceptResult Accept 事务的落账结果
type AcceptResult struct {
	AssignmentId int64
	// CascadeRejected 因名额占满被顺带拒绝的申请数
	CascadeRejected int64
	// ProjectActivated 名额占满后项目是否自动从 published 进入 active
	ProjectActivated bool
}

type ApplicationDAO interface {
	// Insert 落一条 pending 申请并累加项目的申请数
	Insert(ctx context.Context, app Application) (int64, error)
	FindById(ctx context.Context, id int64) (Application, error)
	HasNonTerminal(ctx context.Context, projectId, studentId int64) (bool, error)
	// Transition 简单流转：审阅、面试、拒绝、撤回、管理员兜底
	Transition(ctx context.Context, id int64, from, to domain.Status, actorId int64, role string, note string) error
	// Accept 接受申请：占名额、建派遣、满员级联拒绝并推进项目
	Accept(ctx context.Context, id int64, from domain.Status, actorId int64, role string) (AcceptResult, error)
	ListByProject(ctx context.Context, projectId int64, offset, limit int) ([]Application, error)
	CountByProject(ctx context.Context, projectId int64) (int64, error)
	ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]Application, error)
	FindAssignmentById(ctx context.Context, id int64) (Assignment, error)
	FindAssignmentByApplication(ctx context.Context, applicationId int64) (Assignment, error)
	ListAssignmentsByStudent(ctx context.Context, studentId int64, offset, limit int) ([]Assignment, error)
	HasAssignment(ctx context.Context, projectId, studentId int64) (bool, error)
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (g *GORMApplicationDAO) Insert(ctx context.Context, app Application) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime, app.Utime = now, now
	app.AppliedAt = now
	app.Status = domain.StatusPending.String()
	app.ActiveKey = sql.Null[uint8]{V: 1, Valid: true}
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&app).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) {
				const uniqueIndexErrNo uint16 = 1062
				if me.Number == uniqueIndexErrNo {
					return ErrDuplicateApplication
				}
			}
			return err
		}
		return tx.Model(&ProjectRef{}).Where("id = ?", app.ProjectId).
			Updates(map[string]any{
				"applications_count": gorm.Expr("applications_count + 1"),
				"utime":              now,
			}).Error
	})
	if err != nil {
		return 0, err
	}
	return app.Id, nil
}

func (g *GORMApplicationDAO) FindById(ctx context.Context, id int64) (Application, error) {
	var app Application
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	return app, err
}

func (g *GORMApplicationDAO) HasNonTerminal(ctx context.Context, projectId, studentId int64) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Application{}).
		Where("project_id = ? AND student_id = ? AND active_key IS NOT NULL", projectId, studentId).
		Count(&count).Error
	return count > 0, err
}

func (g *GORMApplicationDAO) Transition(ctx context.Context, id int64, from, to domain.Status,
	actorId int64, role string, note string) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{"status": to.String(), "utime": now}
		if to == domain.StatusReviewing || to == domain.StatusInterviewed {
			updates["reviewed_at"] = gorm.Expr("COALESCE(reviewed_at, ?)", now)
		}
		if to == domain.StatusAccepted || to == domain.StatusRejected {
			updates["responded_at"] = gorm.Expr("COALESCE(responded_at, ?)", now)
		}
		if to.IsTerminal() {
			updates["active_key"] = nil
		}
		res := tx.Model(&Application{}).
			Where("id = ? AND status = ?", id, from.String()).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConcurrentTransition
		}
		return tx.Create(&StatusAudit{
			SubjectType: "application",
			SubjectId:   id,
			FromStatus:  from.String(),
			ToStatus:    to.String(),
			ActorId:     actorId,
			ActorRole:   role,
			Note:        note,
			Ctime:       now,
		}).Error
	})
}

func (g *GORMApplicationDAO) Accept(ctx context.Context, id int64, from domain.Status,
	actorId int64, role string) (AcceptResult, error) {
	var result AcceptResult
	now := time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var app Application
		if err := tx.Where("id = ?", id).First(&app).Error; err != nil {
			return err
		}
		// 名额预占：条件更新保证并发接受不会超员
		res := tx.Model(&ProjectRef{}).
			Where("id = ? AND current_students < max_students AND status IN ('published', 'active')", app.ProjectId).
			Updates(map[string]any{
				"current_students": gorm.Expr("current_students + 1"),
				"utime":            now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var prj ProjectRef
			if err := tx.Where("id = ?", app.ProjectId).First(&prj).Error; err != nil {
				return err
			}
			if prj.CurrentStudents >= prj.MaxStudents {
				return ErrCapacityExceeded
			}
			return ErrProjectNotAccepting
		}
		res = tx.Model(&Application{}).
			Where("id = ? AND status = ?", id, from.String()).
			Updates(map[string]any{
				"status":       domain.StatusAccepted.String(),
				"responded_at": gorm.Expr("COALESCE(responded_at, ?)", now),
				"utime":        now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConcurrentTransition
		}
		if err := tx.Create(&StatusAudit{
			SubjectType: "application",
			SubjectId:   id,
			FromStatus:  from.String(),
			ToStatus:    domain.StatusAccepted.String(),
			ActorId:     actorId,
			ActorRole:   role,
			Ctime:       now,
		}).Error; err != nil {
			return err
		}

		var prj ProjectRef
		if err := tx.Where("id = ?", app.ProjectId).First(&prj).Error; err != nil {
			return err
		}
		startDate := prj.StartDate
		if startDate == 0 {
			startDate = now
		}
		asg := Assignment{
			ApplicationId: app.Id,
			StudentId:     app.StudentId,
			ProjectId:     app.ProjectId,
			Status:        domain.AssignmentStatusPending.String(),
			StartDate:     startDate,
			Ctime:         now,
			Utime:         now,
		}
		if err := tx.Create(&asg).Error; err != nil {
			return err
		}
		result.AssignmentId = asg.Id

		if prj.CurrentStudents >= prj.MaxStudents {
			// 满员：其余未完结申请按容量策略拒绝
			var others []Application
			err := tx.Where("project_id = ? AND id != ? AND status IN ('pending', 'reviewing', 'interviewed')",
				app.ProjectId, id).Find(&others).Error
			if err != nil {
				return err
			}
			for _, other := range others {
				res = tx.Model(&Application{}).
					Where("id = ? AND status = ?", other.Id, other.Status).
					Updates(map[string]any{
						"status":        domain.StatusRejected.String(),
						"company_notes": "auto:capacity",
						"responded_at":  gorm.Expr("COALESCE(responded_at, ?)", now),
						"active_key":    nil,
						"utime":         now,
					})
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					continue
				}
				result.CascadeRejected++
				if err := tx.Create(&StatusAudit{
					SubjectType: "application",
					SubjectId:   other.Id,
					FromStatus:  other.Status,
					ToStatus:    domain.StatusRejected.String(),
					ActorId:     actorId,
					ActorRole:   role,
					Note:        "auto:capacity",
					Ctime:       now,
				}).Error; err != nil {
					return err
				}
			}
			// 项目若还在 published，自动推进到 active
			res = tx.Model(&ProjectRef{}).
				Where("id = ? AND status = 'published'", app.ProjectId).
				Updates(map[string]any{"status": "active", "utime": now})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				result.ProjectActivated = true
				if err := tx.Create(&StatusAudit{
					SubjectType: "project",
					SubjectId:   app.ProjectId,
					FromStatus:  "published",
					ToStatus:    "active",
					ActorId:     actorId,
					ActorRole:   role,
					Note:        "auto:capacity-full",
					Ctime:       now,
				}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	return result, err
}

func (g *GORMApplicationDAO) ListByProject(ctx context.Context, projectId int64, offset, limit int) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).Where("project_id = ?", projectId).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) CountByProject(ctx context.Context, projectId int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Application{}).
		Where("project_id = ?", projectId).Count(&count).Error
	return count, err
}

func (g *GORMApplicationDAO) ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).Where("student_id = ?", studentId).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) FindAssignmentById(ctx context.Context, id int64) (Assignment, error) {
	var asg Assignment
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&asg).Error
	return asg, err
}

func (g *GORMApplicationDAO) FindAssignmentByApplication(ctx context.Context, applicationId int64) (Assignment, error) {
	var asg Assignment
	err := g.db.WithContext(ctx).Where("application_id = ?", applicationId).First(&asg).Error
	return asg, err
}

func (g *GORMApplicationDAO) ListAssignmentsByStudent(ctx context.Context, studentId int64, offset, limit int) ([]Assignment, error) {
	var res []Assignment
	err := g.db.WithContext(ctx).Where("student_id = ?", studentId).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) HasAssignment(ctx context.Context, projectId, studentId int64) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Assignment{}).
		Where("project_id = ? AND student_id = ?", projectId, studentId).
		Count(&count).Error
	return count > 0, err
}

type Application struct {
	Id        int64 `gorm:"primaryKey;autoIncrement"`
	ProjectId int64 `gorm:"not null;index:idx_project_id;uniqueIndex:unq_active,priority:1"`
	StudentId int64 `gorm:"not null;index:idx_student_id;uniqueIndex:unq_active,priority:2"`
	Status    string `gorm:"type:varchar(32);not null;default:'pending';comment:申请状态"`
	// 未完结时为 1，进入终态置 NULL，唯一索引保证同一学生同一项目至多一条未完结申请
	ActiveKey          sql.Null[uint8] `gorm:"uniqueIndex:unq_active,priority:3"`
	CompatibilityScore int             `gorm:"not null;default:0;comment:外部匹配程序给出的 0-100 契合度"`
	CoverLetter        string          `gorm:"type:text"`
	StudentNotes       string          `gorm:"type:text"`
	CompanyNotes       string          `gorm:"type:varchar(512)"`
	PortfolioUrl       string          `gorm:"type:varchar(512)"`
	GithubUrl          string          `gorm:"type:varchar(512)"`
	LinkedinUrl        string          `gorm:"type:varchar(512)"`
	AppliedAt          int64           `gorm:"not null"`
	ReviewedAt         sql.Null[int64]
	RespondedAt        sql.Null[int64]
	Ctime              int64
	Utime              int64
}

func (Application) TableName() string {
	return "applications"
}

type Assignment struct {
	Id            int64  `gorm:"primaryKey;autoIncrement"`
	ApplicationId int64  `gorm:"not null;uniqueIndex:unq_application_id"`
	StudentId     int64  `gorm:"not null;index:idx_student_id"`
	ProjectId     int64  `gorm:"not null;index:idx_project_id"`
	Status        string `gorm:"type:varchar(16);not null;default:'pending'"`
	StartDate     int64  `gorm:"not null"`
	EndDate       sql.Null[int64]
	HoursWorked    int64 `gorm:"not null;default:0"`
	TasksCompleted int64 `gorm:"not null;default:0"`
	Ctime          int64
	Utime          int64
}

func (Assignment) TableName() string {
	return "assignments"
}

// ProjectRef 是 projects 表的局部映射，归属 project 模块，
// 名额与申请计数在这里的事务内维护
type ProjectRef struct {
	Id                int64
	CompanyId         int64
	Status            string
	StartDate         int64
	MaxStudents       int
	CurrentStudents   int
	ApplicationsCount int64
	Utime             int64
}

func (ProjectRef) TableName() string {
	return "projects"
}

// StatusAudit 项目与申请共用的审计表，归属 project 模块
type StatusAudit struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	SubjectType string `gorm:"type:varchar(32);not null;index:idx_subject,priority:1"`
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
