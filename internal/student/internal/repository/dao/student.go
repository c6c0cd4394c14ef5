package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type StudentDAO interface {
	Save(ctx context.Context, s Student) (int64, error)
	FindById(ctx context.Context, id int64) (Student, error)
	FindByIds(ctx context.Context, ids []int64) ([]Student, error)
	List(ctx context.Context, offset int, limit int) ([]Student, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type GORMStudentDAO struct {
	db *egorm.Component
}

func NewGORMStudentDAO(db *egorm.Component) StudentDAO {
	return &GORMStudentDAO{
		db: db,
	}
}

func (d *GORMStudentDAO) Save(ctx context.Context, student Student) (int64, error) {
	now := time.Now().UnixMilli()
	student.Utime = now
	student.Ctime = now
	// strikes/gpa/total_hours/completed_projects 不走保存路径，
	// 分别由违规、评价、工时、项目模块在各自的事务里维护
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "user_id", "api_level", "trl_level", "utime",
		}),
	}).Create(&student).Error
	return student.Id, err
}

func (d *GORMStudentDAO) FindById(ctx context.Context, id int64) (Student, error) {
	var student Student
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&student).Error
	return student, err
}

func (d *GORMStudentDAO) FindByIds(ctx context.Context, ids []int64) ([]Student, error) {
	var students []Student
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&students).Error
	return students, err
}

func (d *GORMStudentDAO) List(ctx context.Context, offset int, limit int) ([]Student, error) {
	var students []Student
	err := d.db.WithContext(ctx).Offset(offset).Limit(limit).Order("utime DESC").Find(&students).Error
	return students, err
}

func (d *GORMStudentDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Student{}).Count(&count).Error
	return count, err
}

func (d *GORMStudentDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	return d.db.WithContext(ctx).Model(&Student{}).Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

type Student struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	UserId   int64  `gorm:"not null;uniqueIndex:unq_user_id;comment:关联的用户ID"`
	Name     string `gorm:"type:varchar(256);not null"`
	ApiLevel int    `gorm:"not null;default:1;comment:学生API等级 1-4"`
	TrlLevel int    `gorm:"not null;default:0;comment:自报TRL熟悉度,0表示未填写"`
	Strikes  int    `gorm:"not null;default:0;comment:有效违规计数"`
	// 已完成 company_to_student 评价的平均分，两位小数
	Gpa               float64 `gorm:"type:decimal(3,2);not null;default:0"`
	CompletedProjects int64   `gorm:"not null;default:0"`
	TotalHours        int64   `gorm:"not null;default:0;comment:已核验工时累计"`
	Status            string  `gorm:"type:ENUM('pending','approved','suspended','rejected','blocked');not null;default:'pending'"`
	Ctime             int64
	Utime             int64
}
