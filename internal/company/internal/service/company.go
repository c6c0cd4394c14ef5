package service

import (
	"context"
	"errors"

	"github.com/leanmaker/leanmaker/internal/company/internal/domain"
	"github.com/leanmaker/leanmaker/internal/company/internal/repository"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
)

var ErrForbidden = errors.New("无权操作该公司")

//go:generate mockgen -source=./company.go -destination=../../mocks/company.mock.go -package=companymocks -typed CompanyService
type CompanyService interface {
	Save(ctx context.Context, company domain.Company) (int64, error)
	GetById(ctx context.Context, id int64) (domain.Company, error)
	GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Company, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Company, int64, error)
	// UpdateStatus 管理员启停公司
	UpdateStatus(ctx context.Context, opr actor.Actor, id int64, status domain.CompanyStatus) error
	// Verify 管理员核验公司资质
	Verify(ctx context.Context, opr actor.Actor, id int64) error
}

type companyService struct {
	repo repository.CompanyRepository
}

func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{
		repo: repo,
	}
}

func (s *companyService) Save(ctx context.Context, company domain.Company) (int64, error) {
	return s.repo.Save(ctx, company)
}

func (s *companyService) GetById(ctx context.Context, id int64) (domain.Company, error) {
	return s.repo.FindById(ctx, id)
}

func (s *companyService) GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Company, error) {
	companies, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Company)
	for _, company := range companies {
		res[company.ID] = company
	}
	return res, nil
}

func (s *companyService) List(ctx context.Context, offset int, limit int) ([]domain.Company, int64, error) {
	companies, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

func (s *companyService) UpdateStatus(ctx context.Context, opr actor.Actor, id int64, status domain.CompanyStatus) error {
	if !opr.IsAdmin() {
		return ErrForbidden
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *companyService) Verify(ctx context.Context, opr actor.Actor, id int64) error {
	if !opr.IsAdmin() {
		return ErrForbidden
	}
	return s.repo.UpdateVerified(ctx, id, true)
}
