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
	"math"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDuplicateEvaluation = errors.New("该项目该学生该方向已有完成的评价")
	ErrAlreadyFlagged      = errors.New("评价已被标记")
)

const (
	typeStudentToCompany = "student_to_company"
	typeCompanyToStudent = "company_to_student"
)

// SubmitResult 提交评价后带回受影响聚合的最新值
type SubmitResult struct {
	Id int64
	// student_to_company 时为企业评分，company_to_student 时为学生 GPA
	Aggregate float64
	// 聚合归属方：企业 id 或学生 id
	SubjectId int64
}

type RecomputeStats struct {
	Companies int64
	Students  int64
}

type EvaluationDAO interface {
	// Submit 落一条 completed 评价并在同一事务里重算受影响的聚合
	Submit(ctx context.Context, eval Evaluation) (SubmitResult, error)
	// Flag 把评价标记为 flagged，原先 completed 的要重算聚合
	Flag(ctx context.Context, id int64) (SubmitResult, error)
	FindById(ctx context.Context, id int64) (Evaluation, error)
	ListByProject(ctx context.Context, projectId int64, offset, limit int) ([]Evaluation, error)
	ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]Evaluation, error)
	// RecomputeCompany 对单个企业从评价全集重算评分，幂等
	RecomputeCompany(ctx context.Context, companyId int64) (float64, error)
	// RecomputeStudent 对单个学生从评价全集重算 GPA，幂等
	RecomputeStudent(ctx context.Context, studentId int64) (float64, error)
	// RecomputeAll 分批扫全量企业与学生重算聚合
	RecomputeAll(ctx context.Context, batchSize int) (RecomputeStats, error)
	FindProjectRef(ctx context.Context, projectId int64) (ProjectRef, error)
}

type GORMEvaluationDAO struct {
	db *egorm.Component
}

func NewGORMEvaluationDAO(db *egorm.Component) EvaluationDAO {
	return &GORMEvaluationDAO{db: db}
}

func (g *GORMEvaluationDAO) Submit(ctx context.Context, eval Evaluation) (SubmitResult, error) {
	var res SubmitResult
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		eval.Status = "completed"
		eval.CompletedKey = sql.Null[uint8]{V: 1, Valid: true}
		if eval.EvaluationDate == 0 {
			eval.EvaluationDate = now
		}
		eval.Ctime, eval.Utime = now, now
		if err := tx.Create(&eval).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) && me.Number == 1062 {
				return ErrDuplicateEvaluation
			}
			return err
		}
		res.Id = eval.Id
		agg, subjectId, err := g.recomputeFor(tx, eval.Type, eval.ProjectId, eval.StudentId)
		if err != nil {
			return err
		}
		res.Aggregate, res.SubjectId = agg, subjectId
		return nil
	})
	return res, err
}

func (g *GORMEvaluationDAO) Flag(ctx context.Context, id int64) (SubmitResult, error) {
	var res SubmitResult
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var eval Evaluation
		if err := tx.Where("id = ?", id).First(&eval).Error; err != nil {
			return err
		}
		if eval.Status == "flagged" {
			return ErrAlreadyFlagged
		}
		wasCompleted := eval.Status == "completed"
		now := time.Now().UnixMilli()
		if err := tx.Model(&Evaluation{}).Where("id = ?", id).
			Updates(map[string]any{
				"status":        "flagged",
				"completed_key": nil,
				"utime":         now,
			}).Error; err != nil {
			return err
		}
		res.Id = id
		if !wasCompleted {
			return nil
		}
		agg, subjectId, err := g.recomputeFor(tx, eval.Type, eval.ProjectId, eval.StudentId)
		if err != nil {
			return err
		}
		res.Aggregate, res.SubjectId = agg, subjectId
		return nil
	})
	return res, err
}

// recomputeFor 在调用方事务里锁住聚合行并从评价全集重算，
// 企业评分来自学生提交的评价，学生 GPA 来自企业提交的评价
func (g *GORMEvaluationDAO) recomputeFor(tx *gorm.DB, evalType string, projectId, studentId int64) (float64, int64, error) {
	if evalType == typeStudentToCompany {
		var prj ProjectRef
		if err := tx.Where("id = ?", projectId).First(&prj).Error; err != nil {
			return 0, 0, err
		}
		agg, err := recomputeCompanyLocked(tx, prj.CompanyId)
		return agg, prj.CompanyId, err
	}
	agg, err := recomputeStudentLocked(tx, studentId)
	return agg, studentId, err
}

func recomputeCompanyLocked(tx *gorm.DB, companyId int64) (float64, error) {
	var company CompanyRef
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", companyId).First(&company).Error; err != nil {
		return 0, err
	}
	var avg sql.Null[float64]
	err := tx.Model(&Evaluation{}).
		Select("AVG(evaluations.score)").
		Joins("JOIN projects ON projects.id = evaluations.project_id").
		Where("projects.company_id = ? AND evaluations.type = ? AND evaluations.status = 'completed'",
			companyId, typeStudentToCompany).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	rating := round2(avg.V)
	return rating, tx.Model(&CompanyRef{}).Where("id = ?", companyId).
		Updates(map[string]any{"rating": rating, "utime": time.Now().UnixMilli()}).Error
}

func recomputeStudentLocked(tx *gorm.DB, studentId int64) (float64, error) {
	var student StudentRef
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", studentId).First(&student).Error; err != nil {
		return 0, err
	}
	var avg sql.Null[float64]
	err := tx.Model(&Evaluation{}).
		Select("AVG(score)").
		Where("student_id = ? AND type = ? AND status = 'completed'", studentId, typeCompanyToStudent).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	gpa := round2(avg.V)
	return gpa, tx.Model(&StudentRef{}).Where("id = ?", studentId).
		Updates(map[string]any{"gpa": gpa, "utime": time.Now().UnixMilli()}).Error
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (g *GORMEvaluationDAO) FindById(ctx context.Context, id int64) (Evaluation, error) {
	var eval Evaluation
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&eval).Error
	return eval, err
}

func (g *GORMEvaluationDAO) ListByProject(ctx context.Context, projectId int64, offset, limit int) ([]Evaluation, error) {
	var evals []Evaluation
	err := g.db.WithContext(ctx).Where("project_id = ?", projectId).
		Order("id DESC").Offset(offset).Limit(limit).Find(&evals).Error
	return evals, err
}

func (g *GORMEvaluationDAO) ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]Evaluation, error) {
	var evals []Evaluation
	err := g.db.WithContext(ctx).Where("student_id = ?", studentId).
		Order("id DESC").Offset(offset).Limit(limit).Find(&evals).Error
	return evals, err
}

func (g *GORMEvaluationDAO) RecomputeCompany(ctx context.Context, companyId int64) (float64, error) {
	var rating float64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		rating, err = recomputeCompanyLocked(tx, companyId)
		return err
	})
	return rating, err
}

func (g *GORMEvaluationDAO) RecomputeStudent(ctx context.Context, studentId int64) (float64, error) {
	var gpa float64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		gpa, err = recomputeStudentLocked(tx, studentId)
		return err
	})
	return gpa, err
}

func (g *GORMEvaluationDAO) RecomputeAll(ctx context.Context, batchSize int) (RecomputeStats, error) {
	var stats RecomputeStats
	var lastId int64
	for {
		var ids []int64
		err := g.db.WithContext(ctx).Model(&CompanyRef{}).
			Where("id > ?", lastId).Order("id").Limit(batchSize).
			Pluck("id", &ids).Error
		if err != nil {
			return stats, err
		}
		for _, id := range ids {
			if _, err = g.RecomputeCompany(ctx, id); err != nil {
				return stats, err
			}
			stats.Companies++
			lastId = id
		}
		if len(ids) < batchSize {
			break
		}
	}
	lastId = 0
	for {
		var ids []int64
		err := g.db.WithContext(ctx).Model(&StudentRef{}).
			Where("id > ?", lastId).Order("id").Limit(batchSize).
			Pluck("id", &ids).Error
		if err != nil {
			return stats, err
		}
		for _, id := range ids {
			if _, err = g.RecomputeStudent(ctx, id); err != nil {
				return stats, err
			}
			stats.Students++
			lastId = id
		}
		if len(ids) < batchSize {
			break
		}
	}
	return stats, nil
}

func (g *GORMEvaluationDAO) FindProjectRef(ctx context.Context, projectId int64) (ProjectRef, error) {
	var prj ProjectRef
	err := g.db.WithContext(ctx).Where("id = ?", projectId).First(&prj).Error
	return prj, err
}

type Evaluation struct {
	Id          int64 `gorm:"primaryKey;autoIncrement"`
	ProjectId   int64 `gorm:"not null;index:idx_project_id;uniqueIndex:unq_completed,priority:1"`
	StudentId   int64 `gorm:"not null;index:idx_student_id;uniqueIndex:unq_completed,priority:2"`
	EvaluatorId int64 `gorm:"not null"`
	// 提交人的角色，admin 可以代任意一方提交
	EvaluatorRole       string  `gorm:"type:varchar(16);not null"`
	Type                string  `gorm:"type:varchar(32);not null;uniqueIndex:unq_completed,priority:3"`
	Score               float64 `gorm:"type:decimal(2,1);not null"`
	Comments            string  `gorm:"type:varchar(2048)"`
	Strengths           string  `gorm:"type:varchar(1024)"`
	AreasForImprovement string  `gorm:"type:varchar(1024)"`
	Status              string  `gorm:"type:varchar(16);not null"`
	// completed 为 1，其余为 NULL，配合唯一索引保证每个 (项目, 学生, 方向) 至多一条完成评价
	CompletedKey   sql.Null[uint8] `gorm:"uniqueIndex:unq_completed,priority:4"`
	EvaluationDate int64           `gorm:"not null"`
	Ctime          int64
	Utime          int64
}

func (Evaluation) TableName() string {
	return "evaluations"
}

// ProjectRef 是 projects 表的局部映射，归属 project 模块
type ProjectRef struct {
	Id        int64
	CompanyId int64
	Status    string
}

func (ProjectRef) TableName() string {
	return "projects"
}

// CompanyRef 是 companies 表的局部映射，归属 company 模块，
// rating 只能由本模块的重算事务改动
type CompanyRef struct {
	Id     int64
	Rating float64
	Utime  int64
}

func (CompanyRef) TableName() string {
	return "companies"
}

// StudentRef 是 students 表的局部映射，归属 student 模块，
// gpa 只能由本模块的重算事务改动
type StudentRef struct {
	Id    int64
	Gpa   float64
	Utime int64
}

func (StudentRef) TableName() string {
	return "students"
}
