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
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/domain"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/event"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/repository"
)

var ErrForbidden = errors.New("无权操作该工时流水")

//go:generate mockgen -source=./workhour.go -destination=../../mocks/workhour.mock.go -package=workhourmocks -typed WorkHourService
type WorkHourService interface {
	// Log 学生在自己的派遣上追加一条工时流水
	Log(ctx context.Context, opr actor.Actor, wh domain.WorkHour) (int64, error)
	// Verify 项目归属企业或管理员核验/驳回一条流水
	Verify(ctx context.Context, opr actor.Actor, id int64, approved bool) error
	// Reverse 对已核验流水做冲正更正
	Reverse(ctx context.Context, opr actor.Actor, originalId int64, reason string) (int64, error)
	// MintProjectCompletion 项目结项时为每个有派遣的学生铸造结项流水，幂等。
	// 仅供项目模块在结项后调用，不做操作者校验
	MintProjectCompletion(ctx context.Context, projectId int64, requiredHours int, verifiedBy int64) (int64, error)
	GetById(ctx context.Context, id int64) (domain.WorkHour, error)
	ListByStudent(ctx context.Context, opr actor.Actor, studentId int64, offset, limit int) ([]domain.WorkHour, int64, error)
	ListByProject(ctx context.Context, opr actor.Actor, projectId int64, offset, limit int) ([]domain.WorkHour, error)
	// VerifiedTotal 某学生在某项目上已核验工时净额
	VerifiedTotal(ctx context.Context, studentId, projectId int64) (int64, error)
}

type workHourService struct {
	repo     repository.WorkHourRepository
	producer event.WorkHourVerifiedProducer
	logger   *elog.Component
}

func NewWorkHourService(repo repository.WorkHourRepository,
	producer event.WorkHourVerifiedProducer) WorkHourService {
	return &workHourService{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *workHourService) Log(ctx context.Context, opr actor.Actor, wh domain.WorkHour) (int64, error) {
	if err := wh.ValidateEntry(time.Now()); err != nil {
		return 0, err
	}
	asg, err := s.repo.FindAssignment(ctx, wh.AssignmentID)
	if err != nil {
		return 0, err
	}
	if !opr.IsStudent() || opr.ID != asg.StudentID {
		return 0, ErrForbidden
	}
	return s.repo.Append(ctx, wh)
}

func (s *workHourService) Verify(ctx context.Context, opr actor.Actor, id int64, approved bool) error {
	wh, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if err = s.checkProjectOwner(ctx, opr, wh.ProjectID); err != nil {
		return err
	}
	if err = s.repo.Verify(ctx, id, opr.ID, approved); err != nil {
		return err
	}
	evt := event.WorkHourVerifiedEvent{
		WorkHourID: id,
		StudentID:  wh.StudentID,
		ProjectID:  wh.ProjectID,
		Hours:      wh.HoursWorked,
		Approved:   approved,
		VerifiedBy: opr.ID,
		VerifiedAt: time.Now().UnixMilli(),
	}
	if err = s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送工时核验事件失败",
			elog.FieldErr(err),
			elog.Int64("workHourId", id))
	}
	return nil
}

func (s *workHourService) Reverse(ctx context.Context, opr actor.Actor, originalId int64, reason string) (int64, error) {
	wh, err := s.repo.FindById(ctx, originalId)
	if err != nil {
		return 0, err
	}
	if err = s.checkProjectOwner(ctx, opr, wh.ProjectID); err != nil {
		return 0, err
	}
	return s.repo.Reverse(ctx, originalId, opr.ID, reason)
}

func (s *workHourService) MintProjectCompletion(ctx context.Context, projectId int64, requiredHours int, verifiedBy int64) (int64, error) {
	return s.repo.MintCompletion(ctx, projectId, requiredHours, verifiedBy)
}

func (s *workHourService) GetById(ctx context.Context, id int64) (domain.WorkHour, error) {
	return s.repo.FindById(ctx, id)
}

func (s *workHourService) ListByStudent(ctx context.Context, opr actor.Actor, studentId int64, offset, limit int) ([]domain.WorkHour, int64, error) {
	if !opr.IsAdmin() && !(opr.IsStudent() && opr.ID == studentId) {
		return nil, 0, ErrForbidden
	}
	return s.repo.ListByStudent(ctx, studentId, offset, limit)
}

func (s *workHourService) ListByProject(ctx context.Context, opr actor.Actor, projectId int64, offset, limit int) ([]domain.WorkHour, error) {
	if err := s.checkProjectOwner(ctx, opr, projectId); err != nil {
		return nil, err
	}
	return s.repo.ListByProject(ctx, projectId, offset, limit)
}

func (s *workHourService) VerifiedTotal(ctx context.Context, studentId, projectId int64) (int64, error) {
	return s.repo.SumVerified(ctx, studentId, projectId)
}

func (s *workHourService) checkProjectOwner(ctx context.Context, opr actor.Actor, projectId int64) error {
	if opr.IsAdmin() {
		return nil
	}
	if !opr.IsCompany() {
		return ErrForbidden
	}
	prj, err := s.repo.FindProjectRef(ctx, projectId)
	if err != nil {
		return err
	}
	if prj.CompanyID != opr.ID {
		return ErrForbidden
	}
	return nil
}
