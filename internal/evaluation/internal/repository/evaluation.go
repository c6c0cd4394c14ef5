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

	"github.com/ecodeclub/ekit/slice"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/domain"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/repository/dao"
)

var (
	ErrDuplicateEvaluation = dao.ErrDuplicateEvaluation
	ErrAlreadyFlagged      = dao.ErrAlreadyFlagged
)

type (
	SubmitResult   = dao.SubmitResult
	RecomputeStats = dao.RecomputeStats
)

type EvaluationRepository interface {
	Submit(ctx context.Context, eval domain.Evaluation) (SubmitResult, error)
	Flag(ctx context.Context, id int64) (SubmitResult, error)
	FindById(ctx context.Context, id int64) (domain.Evaluation, error)
	ListByProject(ctx context.Context, projectId int64, offset, limit int) ([]domain.Evaluation, error)
	ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]domain.Evaluation, error)
	RecomputeCompany(ctx context.Context, companyId int64) (float64, error)
	RecomputeStudent(ctx context.Context, studentId int64) (float64, error)
	RecomputeAll(ctx context.Context, batchSize int) (RecomputeStats, error)
	FindProjectCompany(ctx context.Context, projectId int64) (int64, error)
}

type evaluationRepository struct {
	dao dao.EvaluationDAO
}

func NewEvaluationRepository(dao dao.EvaluationDAO) EvaluationRepository {
	return &evaluationRepository{
		dao: dao,
	}
}

func (r *evaluationRepository) Submit(ctx context.Context, eval domain.Evaluation) (SubmitResult, error) {
	return r.dao.Submit(ctx, dao.Evaluation{
		ProjectId:           eval.ProjectID,
		StudentId:           eval.StudentID,
		EvaluatorId:         eval.EvaluatorID,
		EvaluatorRole:       eval.EvaluatorRole,
		Type:                string(eval.Type),
		Score:               eval.Score,
		Comments:            eval.Comments,
		Strengths:           eval.Strengths,
		AreasForImprovement: eval.AreasForImprovement,
		EvaluationDate:      eval.EvaluationDate,
	})
}

func (r *evaluationRepository) Flag(ctx context.Context, id int64) (SubmitResult, error) {
	return r.dao.Flag(ctx, id)
}

func (r *evaluationRepository) FindById(ctx context.Context, id int64) (domain.Evaluation, error) {
	entity, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Evaluation{}, err
	}
	return r.entityToDomain(entity), nil
}

func (r *evaluationRepository) ListByProject(ctx context.Context, projectId int64, offset, limit int) ([]domain.Evaluation, error) {
	entities, err := r.dao.ListByProject(ctx, projectId, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Evaluation) domain.Evaluation {
		return r.entityToDomain(src)
	}), nil
}

func (r *evaluationRepository) ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]domain.Evaluation, error) {
	entities, err := r.dao.ListByStudent(ctx, studentId, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Evaluation) domain.Evaluation {
		return r.entityToDomain(src)
	}), nil
}

func (r *evaluationRepository) RecomputeCompany(ctx context.Context, companyId int64) (float64, error) {
	return r.dao.RecomputeCompany(ctx, companyId)
}

func (r *evaluationRepository) RecomputeStudent(ctx context.Context, studentId int64) (float64, error) {
	return r.dao.RecomputeStudent(ctx, studentId)
}

func (r *evaluationRepository) RecomputeAll(ctx context.Context, batchSize int) (RecomputeStats, error) {
	return r.dao.RecomputeAll(ctx, batchSize)
}

func (r *evaluationRepository) FindProjectCompany(ctx context.Context, projectId int64) (int64, error) {
	prj, err := r.dao.FindProjectRef(ctx, projectId)
	if err != nil {
		return 0, err
	}
	return prj.CompanyId, nil
}

func (r *evaluationRepository) entityToDomain(eval dao.Evaluation) domain.Evaluation {
	return domain.Evaluation{
		ID:                  eval.Id,
		ProjectID:           eval.ProjectId,
		StudentID:           eval.StudentId,
		EvaluatorID:         eval.EvaluatorId,
		EvaluatorRole:       eval.EvaluatorRole,
		Type:                domain.Type(eval.Type),
		Score:               eval.Score,
		Comments:            eval.Comments,
		Strengths:           eval.Strengths,
		AreasForImprovement: eval.AreasForImprovement,
		Status:              domain.Status(eval.Status),
		EvaluationDate:      eval.EvaluationDate,
		Ctime:               eval.Ctime,
		Utime:               eval.Utime,
	}
}
