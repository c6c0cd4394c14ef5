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
	"github.com/leanmaker/leanmaker/internal/pkg/capability"
	"github.com/leanmaker/leanmaker/internal/project/internal/domain"
	"github.com/leanmaker/leanmaker/internal/project/internal/event"
	"github.com/leanmaker/leanmaker/internal/project/internal/repository"
	"github.com/leanmaker/leanmaker/internal/workhour"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrForbidden          = errors.New("无权操作该项目")
	ErrCapabilityMismatch = errors.New("项目的能力等级或工时与TRL档位不符")
	ErrNotEditable        = errors.New("当前状态下项目不可编辑")
)

// CapabilityPolicy TRL 一致性的处置策略，建站时从配置读取
type CapabilityPolicy string

const (
	PolicyStrict     CapabilityPolicy = "strict"
	PolicyAutoRepair CapabilityPolicy = "autorepair"
)

// Patch 项目的可编辑字段，nil 表示不改
type Patch struct {
	Title            *string
	Description      *string
	Requirements     *string
	TRL              *int
	MinAPILevel      *int
	RequiredHours    *int
	HoursPerWeek     *int
	DurationWeeks    *int
	MaxStudents      *int
	StartDate        *int64
	EstimatedEndDate *int64
}

//go:generate mockgen -source=./project.go -destination=../../mocks/project.mock.go -package=projectmocks -typed ProjectService
type ProjectService interface {
	// Create 企业建项目，落成 draft；能力档位按策略校验或自动修复
	Create(ctx context.Context, opr actor.Actor, p domain.Project) (domain.Project, error)
	// Publish draft → published 的快捷方式
	Publish(ctx context.Context, opr actor.Actor, id int64) error
	// Transition 人工触发的状态流转，带审计与事件
	Transition(ctx context.Context, opr actor.Actor, id int64, target domain.Status, note string) error
	UpdateFields(ctx context.Context, opr actor.Actor, id int64, patch Patch) error
	// MintPendingCompletions 给已结项但还没铸上结项流水的项目补账，幂等
	MintPendingCompletions(ctx context.Context) (int64, error)
	// Detail 走缓存并累加浏览数
	Detail(ctx context.Context, id int64) (domain.Project, error)
	GetById(ctx context.Context, id int64) (domain.Project, error)
	ListPublished(ctx context.Context, offset, limit int) ([]domain.Project, int64, error)
	ListByCompany(ctx context.Context, opr actor.Actor, offset, limit int) ([]domain.Project, error)
	List(ctx context.Context, opr actor.Actor, offset, limit int) ([]domain.Project, int64, error)
	Audits(ctx context.Context, id int64) ([]domain.Audit, error)
}

type projectService struct {
	repo        repository.ProjectRepository
	workHourSvc workhour.Service
	policy      CapabilityPolicy
	batchSize      int
	stateProducer  event.StateChangedProducer
	repairProducer event.RepairedProducer
	logger         *elog.Component
}

func NewProjectService(repo repository.ProjectRepository,
	workHourSvc workhour.Service,
	policy CapabilityPolicy,
	batchSize int,
	stateProducer event.StateChangedProducer,
	repairProducer event.RepairedProducer) ProjectService {
	return &projectService{
		repo:           repo,
		workHourSvc:    workHourSvc,
		policy:         policy,
		batchSize:      batchSize,
		stateProducer:  stateProducer,
		repairProducer: repairProducer,
		logger:         elog.DefaultLogger,
	}
}

func (s *projectService) Create(ctx context.Context, opr actor.Actor, p domain.Project) (domain.Project, error) {
	if !opr.IsCompany() {
		return domain.Project{}, ErrForbidden
	}
	p.CompanyID = opr.ID
	p.Status = domain.StatusDraft
	repaired, oldAPI, oldHours, err := s.applyCapability(&p)
	if err != nil {
		return domain.Project{}, err
	}
	if err = p.Validate(); err != nil {
		return domain.Project{}, err
	}
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Project{}, err
	}
	p.ID = id
	if repaired {
		evt := event.ProjectRepairedEvent{
			Key:              shortuuid.New(),
			ProjectID:        id,
			TRL:              p.TRL,
			OldAPILevel:      oldAPI,
			NewAPILevel:      p.APILevel,
			OldRequiredHours: oldHours,
			NewRequiredHours: p.RequiredHours,
			RepairedAt:       time.Now().UnixMilli(),
		}
		if err = s.repairProducer.Produce(ctx, evt); err != nil {
			s.logger.Error("发送项目修复事件失败", elog.FieldErr(err), elog.Int64("projectId", id))
		}
	}
	return p, nil
}

// applyCapability 按 TRL 对齐能力等级和工时档位。
// api_level 为零视为初次推导，不算修复
func (s *projectService) applyCapability(p *domain.Project) (repaired bool, oldAPI, oldHours int, err error) {
	band, err := capability.FromTRL(p.TRL)
	if err != nil {
		return false, 0, 0, domain.ValidationError{Field: "trl", Reason: err.Error()}
	}
	oldAPI, oldHours = p.APILevel, p.RequiredHours
	if p.APILevel == 0 {
		p.APILevel = band.APILevel
	}
	matched := p.APILevel == band.APILevel && band.Contains(p.RequiredHours)
	if !matched {
		if s.policy == PolicyStrict {
			return false, 0, 0, ErrCapabilityMismatch
		}
		p.APILevel = band.APILevel
		p.RequiredHours = band.Clamp(p.RequiredHours)
		repaired = true
	}
	if p.MinAPILevel == 0 {
		p.MinAPILevel = p.APILevel
	}
	return repaired, oldAPI, oldHours, nil
}

func (s *projectService) Publish(ctx context.Context, opr actor.Actor, id int64) error {
	return s.Transition(ctx, opr, id, domain.StatusPublished, "")
}

func (s *projectService) Transition(ctx context.Context, opr actor.Actor, id int64,
	target domain.Status, note string) error {
	p, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if err = s.checkOwner(opr, p); err != nil {
		return err
	}
	if err = domain.CanTransition(p.Status, target, opr.Role); err != nil {
		return err
	}
	if err = s.repo.Transition(ctx, id, p.Status, target, opr, note); err != nil {
		return err
	}
	evt := event.ProjectStateChangedEvent{
		Key:       shortuuid.New(),
		ProjectID: id,
		From:      p.Status.String(),
		To:        target.String(),
		ActorID:   opr.ID,
		ActorRole: opr.Role.String(),
		Note:      note,
		ChangedAt: time.Now().UnixMilli(),
	}
	if perr := s.stateProducer.Produce(ctx, evt); perr != nil {
		s.logger.Error("发送项目状态事件失败", elog.FieldErr(perr), elog.Int64("projectId", id))
	}
	if target == domain.StatusCompleted {
		// 流转已提交，completed 是终态不可能重放；
		// 铸造幂等，这里失败交给结项补账任务兜底
		if _, merr := s.workHourSvc.MintProjectCompletion(ctx, id, p.RequiredHours, opr.ID); merr != nil {
			s.logger.Error("铸造结项流水失败，等待补账任务",
				elog.FieldErr(merr), elog.Int64("projectId", id))
		}
	}
	return nil
}

func (s *projectService) MintPendingCompletions(ctx context.Context) (int64, error) {
	var lastId, minted int64
	for {
		ps, err := s.repo.ListCompletedAfter(ctx, lastId, s.batchSize)
		if err != nil {
			return minted, err
		}
		if len(ps) == 0 {
			return minted, nil
		}
		for _, p := range ps {
			n, err := s.workHourSvc.MintProjectCompletion(ctx, p.ID, p.RequiredHours, 0)
			if err != nil {
				s.logger.Error("补账结项流水失败",
					elog.FieldErr(err), elog.Int64("projectId", p.ID))
				continue
			}
			minted += n
		}
		lastId = ps[len(ps)-1].ID
	}
}

func (s *projectService) UpdateFields(ctx context.Context, opr actor.Actor, id int64, patch Patch) error {
	p, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if opr.IsCompany() {
		if p.CompanyID != opr.ID {
			return ErrForbidden
		}
		if p.Status != domain.StatusDraft && p.Status != domain.StatusPublished {
			return ErrNotEditable
		}
	} else if !opr.IsAdmin() {
		return ErrForbidden
	}
	next := p
	applyPatch(&next, patch)
	if next.TRL != p.TRL {
		// TRL 变了重新推导能力等级，旧的推导值不算失配
		next.APILevel = 0
	}
	var repaired bool
	var oldAPI, oldHours int
	// 改了 TRL、工时或门槛的更新都要重新落在 TRL 档位内
	if next.TRL != p.TRL || next.RequiredHours != p.RequiredHours || next.MinAPILevel != p.MinAPILevel {
		if repaired, oldAPI, oldHours, err = s.applyCapability(&next); err != nil {
			return err
		}
	}
	if err = next.Validate(); err != nil {
		return err
	}
	if next.MaxStudents < p.CurrentStudents {
		return repository.ErrCapacityBelowCurrent
	}
	err = s.repo.UpdateFields(ctx, id, map[string]any{
		"title":              next.Title,
		"description":        next.Description,
		"requirements":       next.Requirements,
		"trl":                next.TRL,
		"api_level":          next.APILevel,
		"min_api_level":      next.MinAPILevel,
		"required_hours":     next.RequiredHours,
		"hours_per_week":     next.HoursPerWeek,
		"duration_weeks":     next.DurationWeeks,
		"max_students":       next.MaxStudents,
		"start_date":         next.StartDate,
		"estimated_end_date": next.EstimatedEndDate,
	})
	if err != nil {
		return err
	}
	if repaired {
		evt := event.ProjectRepairedEvent{
			Key:              shortuuid.New(),
			ProjectID:        id,
			TRL:              next.TRL,
			OldAPILevel:      oldAPI,
			NewAPILevel:      next.APILevel,
			OldRequiredHours: oldHours,
			NewRequiredHours: next.RequiredHours,
			RepairedAt:       time.Now().UnixMilli(),
		}
		if perr := s.repairProducer.Produce(ctx, evt); perr != nil {
			s.logger.Error("发送项目修复事件失败", elog.FieldErr(perr), elog.Int64("projectId", id))
		}
	}
	return nil
}

func applyPatch(p *domain.Project, patch Patch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Requirements != nil {
		p.Requirements = *patch.Requirements
	}
	if patch.TRL != nil {
		p.TRL = *patch.TRL
	}
	if patch.MinAPILevel != nil {
		p.MinAPILevel = *patch.MinAPILevel
	}
	if patch.RequiredHours != nil {
		p.RequiredHours = *patch.RequiredHours
	}
	if patch.HoursPerWeek != nil {
		p.HoursPerWeek = *patch.HoursPerWeek
	}
	if patch.DurationWeeks != nil {
		p.DurationWeeks = *patch.DurationWeeks
	}
	if patch.MaxStudents != nil {
		p.MaxStudents = *patch.MaxStudents
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.EstimatedEndDate != nil {
		p.EstimatedEndDate = *patch.EstimatedEndDate
	}
}

func (s *projectService) Detail(ctx context.Context, id int64) (domain.Project, error) {
	p, err := s.repo.CachedDetail(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	if err = s.repo.IncrViews(ctx, id); err != nil {
		s.logger.Error("累加项目浏览数失败", elog.FieldErr(err), elog.Int64("id", id))
	}
	return p, nil
}

func (s *projectService) GetById(ctx context.Context, id int64) (domain.Project, error) {
	return s.repo.FindById(ctx, id)
}

func (s *projectService) ListPublished(ctx context.Context, offset, limit int) ([]domain.Project, int64, error) {
	return s.repo.ListPublished(ctx, offset, limit)
}

func (s *projectService) ListByCompany(ctx context.Context, opr actor.Actor, offset, limit int) ([]domain.Project, error) {
	if !opr.IsCompany() {
		return nil, ErrForbidden
	}
	return s.repo.ListByCompany(ctx, opr.ID, offset, limit)
}

func (s *projectService) List(ctx context.Context, opr actor.Actor, offset, limit int) ([]domain.Project, int64, error) {
	if !opr.IsAdmin() {
		return nil, 0, ErrForbidden
	}
	return s.repo.List(ctx, offset, limit)
}

func (s *projectService) Audits(ctx context.Context, id int64) ([]domain.Audit, error) {
	return s.repo.Audits(ctx, id)
}

func (s *projectService) checkOwner(opr actor.Actor, p domain.Project) error {
	switch {
	case opr.IsAdmin():
		return nil
	case opr.IsCompany() && p.CompanyID == opr.ID:
		return nil
	default:
		return ErrForbidden
	}
}
