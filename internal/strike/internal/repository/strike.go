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

package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/leanmaker/leanmaker/internal/strike/internal/domain"
	"github.com/leanmaker/leanmaker/internal/strike/internal/repository/dao"
)

var ErrStrikeNotActive = dao.ErrStrikeNotActive

type IssueResult = dao.IssueResult

type StrikeRepository interface {
	Issue(ctx context.Context, strike domain.Strike) (IssueResult, error)
	Deactivate(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (domain.Strike, error)
	ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]domain.Strike, error)
	CountActive(ctx context.Context, studentId int64) (int64, error)
}

type strikeRepository struct {
	dao dao.StrikeDAO
}

func NewStrikeRepository(dao dao.StrikeDAO) StrikeRepository {
	return &strikeRepository{
		dao: dao,
	}
}

func (r *strikeRepository) Issue(ctx context.Context, strike domain.Strike) (IssueResult, error) {
	entity := dao.Strike{
		StudentId: strike.StudentID,
		Reason:    strike.Reason,
		Severity:  string(strike.Severity),
		IssuedAt:  strike.IssuedAt,
	}
	if strike.CompanyID > 0 {
		entity.CompanyId = sql.Null[int64]{V: strike.CompanyID, Valid: true}
	}
	if strike.ProjectID > 0 {
		entity.ProjectId = sql.Null[int64]{V: strike.ProjectID, Valid: true}
	}
	return r.dao.Issue(ctx, entity)
}

func (r *strikeRepository) Deactivate(ctx context.Context, id int64) error {
	return r.dao.Deactivate(ctx, id)
}

func (r *strikeRepository) FindById(ctx context.Context, id int64) (domain.Strike, error) {
	entity, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Strike{}, err
	}
	return r.entityToDomain(entity), nil
}

func (r *strikeRepository) ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]domain.Strike, error) {
	entities, err := r.dao.ListByStudent(ctx, studentId, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Strike) domain.Strike {
		return r.entityToDomain(src)
	}), nil
}

func (r *strikeRepository) CountActive(ctx context.Context, studentId int64) (int64, error) {
	return r.dao.CountActive(ctx, studentId)
}

func (r *strikeRepository) entityToDomain(strike dao.Strike) domain.Strike {
	return domain.Strike{
		ID:        strike.Id,
		StudentID: strike.StudentId,
		CompanyID: nullInt64(strike.CompanyId),
		ProjectID: nullInt64(strike.ProjectId),
		Reason:    strike.Reason,
		Severity:  domain.Severity(strike.Severity),
		IsActive:  strike.IsActive,
		IssuedAt:  strike.IssuedAt,
		Ctime:     strike.Ctime,
		Utime:     strike.Utime,
	}
}

func nullInt64(v sql.Null[int64]) int64 {
	if v.Valid {
		return v.V
	}
	return 0
}
