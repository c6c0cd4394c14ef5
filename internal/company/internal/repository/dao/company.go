package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type CompanyDAO interface {
	Save(ctx context.Context, c Company) (int64, error)
	FindById(ctx context.Context, id int64) (Company, error)
	FindByIds(ctx context.Context, ids []int64) ([]Company, error)
	List(ctx context.Context, offset int, limit int) ([]Company, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	UpdateVerified(ctx context.Context, id int64, verified bool) error
}

type GORMCompanyDAO struct {
	db *egorm.Component
}

func NewGORMCompanyDAO(db *egorm.Component) CompanyDAO {
	return &GORMCompanyDAO{
		db: db,
	}
}

func (c *GORMCompanyDAO) Save(ctx context.Context, company Company) (int64, error) {
	now := time.Now().UnixMilli()
	company.Utime = now
	company.Ctime = now
	// 聚合值（rating、各计数器）不走保存路径，
	// 只由项目/评价模块在各自的事务里维护
	err := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "user_id", "utime"}),
	}).Create(&company).Error
	return company.Id, err
}

func (c *GORMCompanyDAO) FindById(ctx context.Context, id int64) (Company, error) {
	var company Company
	err := c.db.WithContext(ctx).Where("id = ?", id).First(&company).Error
	return company, err
}

func (c *GORMCompanyDAO) FindByIds(ctx context.Context, ids []int64) ([]Company, error) {
	var companies []Company
	err := c.db.WithContext(ctx).Where("id IN ?", ids).Find(&companies).Error
	return companies, err
}

func (c *GORMCompanyDAO) List(ctx context.Context, offset int, limit int) ([]Company, error) {
	var companies []Company
	err := c.db.WithContext(ctx).Offset(offset).Limit(limit).Order("utime DESC").Find(&companies).Error
	return companies, err
}

func (c *GORMCompanyDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&Company{}).Count(&count).Error
	return count, err
}

func (c *GORMCompanyDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	return c.db.WithContext(ctx).Model(&Company{}).Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (c *GORMCompanyDAO) UpdateVerified(ctx context.Context, id int64, verified bool) error {
	return c.db.WithContext(ctx).Model(&Company{}).Where("id = ?", id).
		Updates(map[string]any{
			"verified": verified,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

type Company struct {
	Id     int64  `gorm:"primaryKey,autoIncrement"`
	UserId int64  `gorm:"not null;uniqueIndex:unq_user_id;comment:关联的用户ID"`
	Name   string `gorm:"type:varchar(256);not null"`
	// 已完成 student_to_company 评价的平均分，两位小数
	Rating            float64 `gorm:"type:decimal(3,2);not null;default:0"`
	TotalProjects     int64   `gorm:"not null;default:0;comment:发布过的项目总数"`
	ProjectsCompleted int64   `gorm:"not null;default:0;comment:已完成的项目数"`
	TotalHoursOffered int64   `gorm:"not null;default:0;comment:发布项目累计提供的工时"`
	Verified          bool    `gorm:"not null;default:false"`
	Status            string  `gorm:"type:ENUM('active','inactive','suspended');not null;default:'active'"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
