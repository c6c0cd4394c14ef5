package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/leanmaker/leanmaker/internal/student/internal/domain"
	"github.com/leanmaker/leanmaker/internal/student/internal/repository/dao"
)

type StudentRepository interface {
	Save(ctx context.Context, s domain.Student) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Student, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Student, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Student, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.StudentStatus) error
}

type studentRepository struct {
	dao dao.StudentDAO
}

func NewStudentRepository(dao dao.StudentDAO) StudentRepository {
	return &studentRepository{
		dao: dao,
	}
}

func (r *studentRepository) Save(ctx context.Context, s domain.Student) (int64, error) {
	return r.dao.Save(ctx, r.domainToEntity(s))
}

func (r *studentRepository) FindById(ctx context.Context, id int64) (domain.Student, error) {
	entity, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Student{}, err
	}
	return r.entityToDomain(entity), nil
}

func (r *studentRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Student, error) {
	entities, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Student) domain.Student {
		return r.entityToDomain(src)
	}), nil
}

func (r *studentRepository) List(ctx context.Context, offset int, limit int) ([]domain.Student, error) {
	entities, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Student) domain.Student {
		return r.entityToDomain(src)
	}), nil
}

func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *studentRepository) UpdateStatus(ctx context.Context, id int64, status domain.StudentStatus) error {
	return r.dao.UpdateStatus(ctx, id, status.String())
}

func (r *studentRepository) domainToEntity(s domain.Student) dao.Student {
	return dao.Student{
		Id:       s.ID,
		UserId:   s.UserID,
		Name:     s.Name,
		ApiLevel: s.APILevel,
		TrlLevel: s.TRLLevel,
		Ctime:    s.Ctime,
		Utime:    s.Utime,
	}
}

func (r *studentRepository) entityToDomain(s dao.Student) domain.Student {
	return domain.Student{
		ID:                s.Id,
		UserID:            s.UserId,
		Name:              s.Name,
		APILevel:          s.ApiLevel,
		TRLLevel:          s.TrlLevel,
		Strikes:           s.Strikes,
		GPA:               s.Gpa,
		CompletedProjects: s.CompletedProjects,
		TotalHours:        s.TotalHours,
		Status:            domain.StudentStatus(s.Status),
		Ctime:             s.Ctime,
		Utime:             s.Utime,
	}
}
