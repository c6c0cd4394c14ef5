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

package service

import (
	"context"
	"errors"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/leanmaker/leanmaker/internal/application"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/domain"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/event"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/repository"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	"github.com/leanmaker/leanmaker/internal/project"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrForbidden           = errors.New("无权提交该评价")
	ErrProjectNotFinalized = errors.New("项目尚未收尾，不能评价")
)

// RecomputeScope 重算范围：Company/Student 二选一，都为零值时全量重算
type RecomputeScope struct {
	Company int64
	Student int64
}

//go:generate mockgen -source=./evaluation.go -destination=../../mocks/evaluation.mock.go -package=evaluationmocks -typed EvaluationService
type EvaluationService interface {
	// Submit 提交评价，直接落 completed 并同步重算受影响的聚合
	Submit(ctx context.Context, opr actor.Actor, eval domain.Evaluation) (int64, error)
	// Flag 管理员把评价标记为 flagged，原先 completed 的会触发重算
	Flag(ctx context.Context, opr actor.Actor, id int64) error
	GetById(ctx context.Context, id int64) (domain.Evaluation, error)
	ListByProject(ctx context.Context, projectId int64, offset, limit int) ([]domain.Evaluation, error)
	ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]domain.Evaluation, error)
	// RecomputeAggregates 从评价全集重算聚合，幂等，可重复执行
	RecomputeAggregates(ctx context.Context, scope RecomputeScope) (repository.RecomputeStats, error)
}

type evaluationService struct {
	repo               repository.EvaluationRepository
	projectSvc         project.Service
	applicationSvc     application.Service
	completedProducer  event.CompletedProducer
	recomputedProducer event.RecomputedProducer
	batchSize          int
	logger             *elog.Component
}

func NewEvaluationService(repo repository.EvaluationRepository,
	projectSvc project.Service,
	applicationSvc application.Service,
	completedProducer event.CompletedProducer,
	recomputedProducer event.RecomputedProducer,
	batchSize int) EvaluationService {
	return &evaluationService{
		repo:               repo,
		projectSvc:         projectSvc,
		applicationSvc:     applicationSvc,
		completedProducer:  completedProducer,
		recomputedProducer: recomputedProducer,
		batchSize:          batchSize,
		logger:             elog.DefaultLogger,
	}
}

func (s *evaluationService) Submit(ctx context.Context, opr actor.Actor, eval domain.Evaluation) (int64, error) {
	if err := eval.Normalize(); err != nil {
		return 0, err
	}
	p, err := s.projectSvc.GetById(ctx, eval.ProjectID)
	if err != nil {
		return 0, err
	}
	if err = s.checkParty(ctx, opr, p, eval); err != nil {
		return 0, err
	}
	if !p.Status.IsFinalized() && !opr.IsAdmin() {
		return 0, ErrProjectNotFinalized
	}
	eval.EvaluatorID = opr.ID
	eval.EvaluatorRole = opr.Role.String()
	res, err := s.repo.Submit(ctx, eval)
	if err != nil {
		return 0, err
	}
	now := time.Now().UnixMilli()
	if perr := s.completedProducer.Produce(ctx, event.EvaluationCompletedEvent{
		EvaluationID: res.Id,
		ProjectID:    eval.ProjectID,
		StudentID:    eval.StudentID,
		EvaluatorID:  eval.EvaluatorID,
		Type:         string(eval.Type),
		Score:        eval.Score,
		SubmittedAt:  now,
	}); perr != nil {
		s.logger.Error("发送评价完成事件失败", elog.FieldErr(perr), elog.Int64("evaluationId", res.Id))
	}
	s.produceRecomputed(ctx, eval.Type, res.SubjectId, res.Aggregate)
	return res.Id, nil
}

func (s *evaluationService) Flag(ctx context.Context, opr actor.Actor, id int64) error {
	if !opr.IsAdmin() {
		return ErrForbidden
	}
	eval, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	res, err := s.repo.Flag(ctx, id)
	if err != nil {
		return err
	}
	if res.SubjectId > 0 {
		s.produceRecomputed(ctx, eval.Type, res.SubjectId, res.Aggregate)
	}
	return nil
}

func (s *evaluationService) GetById(ctx context.Context, id int64) (domain.Evaluation, error) {
	return s.repo.FindById(ctx, id)
}

func (s *evaluationService) ListByProject(ctx context.Context, projectId int64, offset, limit int) ([]domain.Evaluation, error) {
	return s.repo.ListByProject(ctx, projectId, offset, limit)
}

func (s *evaluationService) ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]domain.Evaluation, error) {
	return s.repo.ListByStudent(ctx, studentId, offset, limit)
}

func (s *evaluationService) RecomputeAggregates(ctx context.Context, scope RecomputeScope) (repository.RecomputeStats, error) {
	switch {
	case scope.Company > 0:
		rating, err := s.repo.RecomputeCompany(ctx, scope.Company)
		if err != nil {
			return repository.RecomputeStats{}, err
		}
		s.produceRecomputed(ctx, domain.TypeStudentToCompany, scope.Company, rating)
		return repository.RecomputeStats{Companies: 1}, nil
	case scope.Student > 0:
		gpa, err := s.repo.RecomputeStudent(ctx, scope.Student)
		if err != nil {
			return repository.RecomputeStats{}, err
		}
		s.produceRecomputed(ctx, domain.TypeCompanyToStudent, scope.Student, gpa)
		return repository.RecomputeStats{Students: 1}, nil
	default:
		return s.repo.RecomputeAll(ctx, s.batchSize)
	}
}

// checkParty 评价双方资格：企业方只能评自己项目上的学生，
// 学生方只能以被派遣人身份评项目所属企业，admin 不受限
func (s *evaluationService) checkParty(ctx context.Context, opr actor.Actor,
	p project.Project, eval domain.Evaluation) error {
	if !opr.IsAdmin() {
		switch eval.Type {
		case domain.TypeCompanyToStudent:
			if !opr.IsCompany() || opr.ID != p.CompanyID {
				return ErrForbidden
			}
		case domain.TypeStudentToCompany:
			if !opr.IsStudent() || opr.ID != eval.StudentID {
				return ErrForbidden
			}
		}
	}
	ok, err := s.applicationSvc.HasParticipation(ctx, eval.ProjectID, eval.StudentID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

func (s *evaluationService) produceRecomputed(ctx context.Context, evalType domain.Type, subjectId int64, aggregate float64) {
	subjectType := "student"
	if evalType == domain.TypeStudentToCompany {
		subjectType = "company"
	}
	if perr := s.recomputedProducer.Produce(ctx, event.RatingRecomputedEvent{
		Key:          shortuuid.New(),
		SubjectType:  subjectType,
		SubjectID:    subjectId,
		Aggregate:    aggregate,
		RecomputedAt: time.Now().UnixMilli(),
	}); perr != nil {
		s.logger.Error("发送聚合重算事件失败", elog.FieldErr(perr),
			elog.String("subjectType", subjectType), elog.Int64("subjectId", subjectId))
	}
}
