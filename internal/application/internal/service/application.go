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
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/leanmaker/leanmaker/internal/application/internal/domain"
	"github.com/leanmaker/leanmaker/internal/application/internal/event"
	"github.com/leanmaker/leanmaker/internal/application/internal/repository"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	"github.com/leanmaker/leanmaker/internal/project"
	"github.com/leanmaker/leanmaker/internal/student"
	"github.com/lithammer/shortuuid/v4"
)

var ErrForbidden = errors.New("无权操作该申请")

// IneligibleError 报名资格不满足，Reasons 给出全部不满足项
type IneligibleError struct {
	Reasons []string
}

func (e IneligibleError) Error() string {
	return fmt.Sprintf("不满足报名条件: %v", e.Reasons)
}

//go:generate mockgen -source=./application.go -destination=../../mocks/application.mock.go -package=applicationmocks -typed ApplicationService
type ApplicationService interface {
	// Eligibility 核验学生对项目的报名资格，不产生副作用
	Eligibility(ctx context.Context, studentId, projectId int64) (domain.Eligibility, error)
	// Submit 学生提交申请，资格核验 + 落 pending + 项目申请数加一
	Submit(ctx context.Context, opr actor.Actor, app domain.Application) (int64, error)
	// Accept 企业接受申请：占名额、建派遣，满员触发容量级联
	Accept(ctx context.Context, opr actor.Actor, id int64) (domain.Assignment, error)
	// Transition 审阅/面试/拒绝/撤回/管理员兜底等人工流转
	Transition(ctx context.Context, opr actor.Actor, id int64, target domain.Status, note string) error
	GetById(ctx context.Context, id int64) (domain.Application, error)
	ListByProject(ctx context.Context, opr actor.Actor, projectId int64, offset, limit int) ([]domain.Application, int64, error)
	ListMine(ctx context.Context, opr actor.Actor, offset, limit int) ([]domain.Application, error)
	MyAssignments(ctx context.Context, opr actor.Actor, offset, limit int) ([]domain.Assignment, error)
	// HasParticipation 学生在项目上是否有过派遣，评价模块的资格依据
	HasParticipation(ctx context.Context, projectId, studentId int64) (bool, error)
}

type applicationService struct {
	repo       repository.ApplicationRepository
	studentSvc student.Service
	projectSvc project.Service
	producer   event.AcceptedProducer
	logger     *elog.Component
}

func NewApplicationService(repo repository.ApplicationRepository,
	studentSvc student.Service,
	projectSvc project.Service,
	producer event.AcceptedProducer) ApplicationService {
	return &applicationService{
		repo:       repo,
		studentSvc: studentSvc,
		projectSvc: projectSvc,
		producer:   producer,
		logger:     elog.DefaultLogger,
	}
}

func (s *applicationService) Eligibility(ctx context.Context, studentId, projectId int64) (domain.Eligibility, error) {
	st, err := s.studentSvc.GetById(ctx, studentId)
	if err != nil {
		return domain.Eligibility{}, err
	}
	p, err := s.projectSvc.GetById(ctx, projectId)
	if err != nil {
		return domain.Eligibility{}, err
	}
	var reasons []string
	if !st.IsApproved() {
		reasons = append(reasons, "学生未通过审核")
	}
	if st.IsStruckOut() {
		reasons = append(reasons, "学生记过已达上限")
	}
	if st.APILevel < p.MinAPILevel {
		reasons = append(reasons, "学生能力等级低于项目门槛")
	}
	if !p.Status.AcceptsApplications() {
		reasons = append(reasons, "项目当前不接受申请")
	}
	exists, err := s.repo.HasNonTerminal(ctx, projectId, studentId)
	if err != nil {
		return domain.Eligibility{}, err
	}
	if exists {
		reasons = append(reasons, "已有未完结的申请")
	}
	return domain.Eligibility{OK: len(reasons) == 0, Reasons: reasons}, nil
}

func (s *applicationService) Submit(ctx context.Context, opr actor.Actor, app domain.Application) (int64, error) {
	if !opr.IsStudent() {
		return 0, ErrForbidden
	}
	app.StudentID = opr.ID
	// 重复提交单独报“重复申请”，不混进一般的资格不符
	dup, err := s.repo.HasNonTerminal(ctx, app.ProjectID, app.StudentID)
	if err != nil {
		return 0, err
	}
	if dup {
		return 0, repository.ErrDuplicateApplication
	}
	eli, err := s.Eligibility(ctx, app.StudentID, app.ProjectID)
	if err != nil {
		return 0, err
	}
	if !eli.OK {
		return 0, IneligibleError{Reasons: eli.Reasons}
	}
	return s.repo.Create(ctx, app)
}

func (s *applicationService) Accept(ctx context.Context, opr actor.Actor, id int64) (domain.Assignment, error) {
	app, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Assignment{}, err
	}
	if err = s.checkProjectOwner(ctx, opr, app.ProjectID); err != nil {
		return domain.Assignment{}, err
	}
	if !domain.AcceptableFrom(app.Status) {
		return domain.Assignment{}, domain.ErrInvalidTransition
	}
	res, err := s.repo.Accept(ctx, id, app.Status, opr)
	if err != nil {
		return domain.Assignment{}, err
	}
	evt := event.ApplicationAcceptedEvent{
		Key:              shortuuid.New(),
		ApplicationID:    id,
		ProjectID:        app.ProjectID,
		StudentID:        app.StudentID,
		AssignmentID:     res.AssignmentId,
		CascadeRejected:  res.CascadeRejected,
		ProjectActivated: res.ProjectActivated,
		AcceptedAt:       time.Now().UnixMilli(),
	}
	if perr := s.producer.Produce(ctx, evt); perr != nil {
		s.logger.Error("发送申请接受事件失败", elog.FieldErr(perr), elog.Int64("applicationId", id))
	}
	return s.repo.FindAssignmentById(ctx, res.AssignmentId)
}

func (s *applicationService) Transition(ctx context.Context, opr actor.Actor, id int64,
	target domain.Status, note string) error {
	app, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	switch {
	case opr.IsAdmin():
	case opr.IsCompany():
		if err = s.checkProjectOwner(ctx, opr, app.ProjectID); err != nil {
			return err
		}
	case opr.IsStudent():
		if app.StudentID != opr.ID {
			return ErrForbidden
		}
	default:
		return ErrForbidden
	}
	if err = domain.CanTransition(app.Status, target, opr.Role); err != nil {
		return err
	}
	return s.repo.Transition(ctx, id, app.Status, target, opr, note)
}

func (s *applicationService) GetById(ctx context.Context, id int64) (domain.Application, error) {
	return s.repo.FindById(ctx, id)
}

func (s *applicationService) ListByProject(ctx context.Context, opr actor.Actor, projectId int64,
	offset, limit int) ([]domain.Application, int64, error) {
	if err := s.checkProjectOwner(ctx, opr, projectId); err != nil {
		return nil, 0, err
	}
	return s.repo.ListByProject(ctx, projectId, offset, limit)
}

func (s *applicationService) ListMine(ctx context.Context, opr actor.Actor, offset, limit int) ([]domain.Application, error) {
	if !opr.IsStudent() {
		return nil, ErrForbidden
	}
	return s.repo.ListByStudent(ctx, opr.ID, offset, limit)
}

func (s *applicationService) MyAssignments(ctx context.Context, opr actor.Actor, offset, limit int) ([]domain.Assignment, error) {
	if !opr.IsStudent() {
		return nil, ErrForbidden
	}
	return s.repo.ListAssignmentsByStudent(ctx, opr.ID, offset, limit)
}

func (s *applicationService) HasParticipation(ctx context.Context, projectId, studentId int64) (bool, error) {
	return s.repo.HasAssignment(ctx, projectId, studentId)
}

func (s *applicationService) checkProjectOwner(ctx context.Context, opr actor.Actor, projectId int64) error {
	if opr.IsAdmin() {
		return nil
	}
	if !opr.IsCompany() {
		return ErrForbidden
	}
	p, err := s.projectSvc.GetById(ctx, projectId)
	if err != nil {
		return err
	}
	if p.CompanyID != opr.ID {
		return ErrForbidden
	}
	return nil
}
