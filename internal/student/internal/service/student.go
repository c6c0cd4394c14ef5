package service

import (
	"context"
	"errors"

	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	"github.com/leanmaker/leanmaker/internal/student/internal/domain"
	"github.com/leanmaker/leanmaker/internal/student/internal/repository"
)

var (
	ErrForbidden     = errors.New("无权操作该学生")
	ErrInvalidStatus = errors.New("无效的学生状态")
)

//go:generate mockgen -source=./student.go -destination=../../mocks/student.mock.go -package=studentmocks -typed StudentService
type StudentService interface {
	Save(ctx context.Context, student domain.Student) (int64, error)
	GetById(ctx context.Context, id int64) (domain.Student, error)
	GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Student, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Student, int64, error)
	// UpdateStatus 管理员审核/停用/拉黑学生
	UpdateStatus(ctx context.Context, opr actor.Actor, id int64, status domain.StudentStatus) error
}

type studentService struct {
	repo repository.StudentRepository
}

func NewStudentService(repo repository.StudentRepository) StudentService {
	return &studentService{
		repo: repo,
	}
}

func (s *studentService) Save(ctx context.Context, student domain.Student) (int64, error) {
	return s.repo.Save(ctx, student)
}

func (s *studentService) GetById(ctx context.Context, id int64) (domain.Student, error) {
	return s.repo.FindById(ctx, id)
}

func (s *studentService) GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Student, error) {
	students, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Student, len(students))
	for _, student := range students {
		res[student.ID] = student
	}
	return res, nil
}

func (s *studentService) List(ctx context.Context, offset int, limit int) ([]domain.Student, int64, error) {
	students, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (s *studentService) UpdateStatus(ctx context.Context, opr actor.Actor, id int64, status domain.StudentStatus) error {
	if !opr.IsAdmin() {
		return ErrForbidden
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
