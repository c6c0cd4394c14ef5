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
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAssignmentNotWorkable = errors.New("派遣不在可记工时状态")
	ErrProjectClosed         = errors.New("项目已取消或删除，不能记工时")
	ErrAlreadyVerified       = errors.New("工时已核验")
	ErrAlreadyReversed       = errors.New("工时已冲正")
	ErrNotVerified           = errors.New("工时尚未核验")
)

type WorkHourDAO interface {
	// Append 追加一条正常流水，内部会按需激活派遣并推进项目到 in-progress
	Append(ctx context.Context, entry WorkHour) (int64, error)
	FindById(ctx context.Context, id int64) (WorkHour, error)
	// Verify 把流水核验为有效并同步学生累计工时；approved=false 表示驳回，单独落驳回印记
	Verify(ctx context.Context, id int64, verifierId int64, approved bool) error
	// Reverse 为已核验流水追加一条负数冲正流水并回退学生累计工时
	Reverse(ctx context.Context, originalId int64, byId int64, reason string) (int64, error)
	// MintCompletion 为项目上有派遣的每个学生铸造结项流水，幂等
	MintCompletion(ctx context.Context, projectId int64, requiredHours int, verifiedBy int64) (int64, error)
	ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]WorkHour, error)
	CountByStudent(ctx context.Context, studentId int64) (int64, error)
	ListByProject(ctx context.Context, projectId int64, offset, limit int) ([]WorkHour, error)
	// SumVerified 统计某学生在某项目上已核验的工时净额
	SumVerified(ctx context.Context, studentId, projectId int64) (int64, error)
	FindAssignment(ctx context.Context, assignmentId int64) (AssignmentRef, error)
	FindProjectRef(ctx context.Context, projectId int64) (ProjectRef, error)
}

type GORMWorkHourDAO struct {
	db *egorm.Component
}

func NewGORMWorkHourDAO(db *egorm.Component) WorkHourDAO {
	return &GORMWorkHourDAO{db: db}
}

func (g *GORMWorkHourDAO) Append(ctx context.Context, entry WorkHour) (int64, error) {
	now := time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var asg AssignmentRef
		if err := tx.Where("id = ?", entry.AssignmentId).First(&asg).Error; err != nil {
			return err
		}
		// 项目已开始但派遣还没激活的，先激活
		if asg.Status == "pending" && asg.StartDate <= now {
			res := tx.Model(&AssignmentRef{}).
				Where("id = ? AND status = 'pending'", asg.Id).
				Updates(map[string]any{"status": "active", "utime": now})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				asg.Status = "active"
				// 申请同步进入 active
				if err := tx.Model(&ApplicationRef{}).
					Where("id = ? AND status = 'accepted'", asg.ApplicationId).
					Updates(map[string]any{"status": "active", "utime": now}).Error; err != nil {
					return err
				}
			}
		}
		if asg.Status != "active" && asg.Status != "completed" {
			return ErrAssignmentNotWorkable
		}

		var prj ProjectRef
		if err := tx.Where("id = ?", asg.ProjectId).First(&prj).Error; err != nil {
			return err
		}
		if prj.Status == "deleted" || prj.Status == "cancelled" {
			return ErrProjectClosed
		}

		entry.StudentId = asg.StudentId
		entry.ProjectId = asg.ProjectId
		entry.Ctime, entry.Utime = now, now
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		// 第一条工时落账时项目自动从 active 进入 in-progress
		res := tx.Model(&ProjectRef{}).
			Where("id = ? AND status = 'active'", prj.Id).
			Updates(map[string]any{"status": "in-progress", "utime": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			audit := StatusAudit{
				SubjectType: "project",
				SubjectId:   prj.Id,
				FromStatus:  "active",
				ToStatus:    "in-progress",
				ActorId:     asg.StudentId,
				ActorRole:   "student",
				Note:        "auto:first-workhour",
				Ctime:       now,
			}
			if err := tx.Create(&audit).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return entry.Id, nil
}

func (g *GORMWorkHourDAO) FindById(ctx context.Context, id int64) (WorkHour, error) {
	var wh WorkHour
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&wh).Error
	return wh, err
}

func (g *GORMWorkHourDAO) Verify(ctx context.Context, id int64, verifierId int64, approved bool) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var wh WorkHour
		if err := tx.Where("id = ?", id).First(&wh).Error; err != nil {
			return err
		}
		if wh.IsVerified {
			return ErrAlreadyVerified
		}
		now := time.Now().UnixMilli()
		updates := map[string]any{"utime": now}
		if approved {
			updates["is_verified"] = true
			updates["verified_by"] = verifierId
			updates["verified_at"] = now
			// 驳回后复核通过的，清掉驳回印记
			updates["rejected_by"] = nil
			updates["rejected_at"] = nil
		} else {
			// 驳回单独落印记，不占用核验字段
			updates["rejected_by"] = verifierId
			updates["rejected_at"] = now
		}
		if err := tx.Model(&WorkHour{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		if !approved {
			return nil
		}
		// 核验生效是学生累计工时唯一的入账时机
		return tx.Model(&StudentRef{}).Where("id = ?", wh.StudentId).
			Updates(map[string]any{
				"total_hours": gorm.Expr("total_hours + ?", wh.HoursWorked),
				"utime":       now,
			}).Error
	})
}

func (g *GORMWorkHourDAO) Reverse(ctx context.Context, originalId int64, byId int64, reason string) (int64, error) {
	var reversalId int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var orig WorkHour
		if err := tx.Where("id = ?", originalId).First(&orig).Error; err != nil {
			return err
		}
		if !orig.IsVerified {
			return ErrNotVerified
		}
		var count int64
		if err := tx.Model(&WorkHour{}).Where("reversal_of = ?", originalId).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyReversed
		}
		now := time.Now().UnixMilli()
		reversal := WorkHour{
			StudentId:    orig.StudentId,
			ProjectId:    orig.ProjectId,
			AssignmentId: orig.AssignmentId,
			Date:         orig.Date,
			HoursWorked:  -orig.HoursWorked,
			Description:  reason,
			IsVerified:   true,
			VerifiedBy:   sql.Null[int64]{V: byId, Valid: true},
			VerifiedAt:   sql.Null[int64]{V: now, Valid: true},
			ReversalOf:   sql.Null[int64]{V: originalId, Valid: true},
			Ctime:        now,
			Utime:        now,
		}
		if err := tx.Create(&reversal).Error; err != nil {
			return err
		}
		reversalId = reversal.Id
		return tx.Model(&StudentRef{}).Where("id = ?", orig.StudentId).
			Updates(map[string]any{
				"total_hours": gorm.Expr("total_hours - ?", orig.HoursWorked),
				"utime":       now,
			}).Error
	})
	return reversalId, err
}

func (g *GORMWorkHourDAO) MintCompletion(ctx context.Context, projectId int64, requiredHours int, verifiedBy int64) (int64, error) {
	var minted int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var asgs []AssignmentRef
		if err := tx.Where("project_id = ?", projectId).Find(&asgs).Error; err != nil {
			return err
		}
		now := time.Now().UnixMilli()
		seen := make(map[int64]struct{}, len(asgs))
		for _, asg := range asgs {
			if _, ok := seen[asg.StudentId]; ok {
				continue
			}
			seen[asg.StudentId] = struct{}{}
			entry := WorkHour{
				StudentId:     asg.StudentId,
				ProjectId:     projectId,
				AssignmentId:  asg.Id,
				Date:          now,
				HoursWorked:   requiredHours,
				Description:   "项目结项工时",
				IsVerified:    true,
				VerifiedBy:    sql.Null[int64]{V: verifiedBy, Valid: true},
				VerifiedAt:    sql.Null[int64]{V: now, Valid: true},
				CompletionKey: sql.Null[uint8]{V: 1, Valid: true},
				Ctime:         now,
				Utime:         now,
			}
			// 唯一索引 (student_id, project_id, completion_key) 保证重复调用不会二次铸造
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry)
			if res.Error != nil {
				return fmt.Errorf("铸造结项流水失败: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				continue
			}
			minted++
			if err := tx.Model(&StudentRef{}).Where("id = ?", asg.StudentId).
				Updates(map[string]any{
					"total_hours":        gorm.Expr("total_hours + ?", requiredHours),
					"completed_projects": gorm.Expr("completed_projects + 1"),
					"utime":              now,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return minted, err
}

func (g *GORMWorkHourDAO) ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]WorkHour, error) {
	var entries []WorkHour
	err := g.db.WithContext(ctx).Where("student_id = ?", studentId).
		Order("date DESC, id DESC").Offset(offset).Limit(limit).Find(&entries).Error
	return entries, err
}

func (g *GORMWorkHourDAO) CountByStudent(ctx context.Context, studentId int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&WorkHour{}).Where("student_id = ?", studentId).Count(&count).Error
	return count, err
}

func (g *GORMWorkHourDAO) ListByProject(ctx context.Context, projectId int64, offset, limit int) ([]WorkHour, error) {
	var entries []WorkHour
	err := g.db.WithContext(ctx).Where("project_id = ?", projectId).
		Order("date DESC, id DESC").Offset(offset).Limit(limit).Find(&entries).Error
	return entries, err
}

func (g *GORMWorkHourDAO) SumVerified(ctx context.Context, studentId, projectId int64) (int64, error) {
	var total sql.Null[int64]
	err := g.db.WithContext(ctx).Model(&WorkHour{}).
		Select("SUM(hours_worked)").
		Where("student_id = ? AND project_id = ? AND is_verified = true", studentId, projectId).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total.V, nil
}

func (g *GORMWorkHourDAO) FindAssignment(ctx context.Context, assignmentId int64) (AssignmentRef, error) {
	var asg AssignmentRef
	err := g.db.WithContext(ctx).Where("id = ?", assignmentId).First(&asg).Error
	return asg, err
}

func (g *GORMWorkHourDAO) FindProjectRef(ctx context.Context, projectId int64) (ProjectRef, error) {
	var prj ProjectRef
	err := g.db.WithContext(ctx).Where("id = ?", projectId).First(&prj).Error
	return prj, err
}

type WorkHour struct {
	Id        int64 `gorm:"primaryKey;autoIncrement"`
	StudentId int64 `gorm:"not null;index:idx_student_id;uniqueIndex:unq_completion,priority:1"`
	ProjectId int64 `gorm:"not null;index:idx_project_id;uniqueIndex:unq_completion,priority:2"`
	// 结项流水也挂在一条派遣上
	AssignmentId int64 `gorm:"not null;index:idx_assignment_id"`
	Date         int64 `gorm:"not null;comment:工作日期"`
	// 正数为正常流水，负数为冲正流水
	HoursWorked int    `gorm:"not null"`
	Description string `gorm:"type:varchar(512)"`
	IsVerified  bool   `gorm:"not null;default:false"`
	VerifiedBy  sql.Null[int64]
	VerifiedAt  sql.Null[int64]
	// 驳回印记与核验印记互斥，复核通过时清除
	RejectedBy sql.Null[int64]
	RejectedAt sql.Null[int64]
	// 结项流水为 1，普通流水为 NULL，配合唯一索引保证每个学生每个项目至多一条结项流水
	CompletionKey sql.Null[uint8] `gorm:"uniqueIndex:unq_completion,priority:3"`
	ReversalOf    sql.Null[int64] `gorm:"index:idx_reversal_of;comment:冲正流水指向的原始流水"`
	Ctime         int64
	Utime         int64
}

func (WorkHour) TableName() string {
	return "work_hours"
}

// AssignmentRef 是 assignments 表的局部映射，归属 application 模块，
// 这里只在事务里读取和激活
type AssignmentRef struct {
	Id            int64
	ApplicationId int64
	StudentId     int64
	ProjectId     int64
	Status        string
	StartDate     int64
	Utime         int64
}

func (AssignmentRef) TableName() string {
	return "assignments"
}

// ProjectRef 是 projects 表的局部映射，归属 project 模块
type ProjectRef struct {
	Id            int64
	CompanyId     int64
	Status        string
	RequiredHours int
	Utime         int64
}

func (ProjectRef) TableName() string {
	return "projects"
}

// StudentRef 是 students 表的局部映射，归属 student 模块，
// total_hours 只能由本模块的核验/冲正/铸造事务改动
type StudentRef struct {
	Id                int64
	TotalHours        int64
	CompletedProjects int64
	Utime             int64
}

func (StudentRef) TableName() string {
	return "students"
}

// ApplicationRef 是 applications 表的局部映射，归属 application 模块
type ApplicationRef struct {
	Id     int64
	Status string
	Utime  int64
}

func (ApplicationRef) TableName() string {
	return "applications"
}

// StatusAudit 项目与申请共用的状态流转审计表，归属 project 模块
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
