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
	"github.com/gotomicro/ego/core/elog"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	"github.com/leanmaker/leanmaker/internal/project/internal/domain"
	"github.com/leanmaker/leanmaker/internal/project/internal/repository/cache"
	"github.com/leanmaker/leanmaker/internal/project/internal/repository/dao"
)

var (
	ErrConcurrentTransition   = dao.ErrConcurrentTransition
	ErrNoAcceptedApplications = dao.ErrNoAcceptedApplications
	ErrCapacityBelowCurrent   = dao.ErrCapacityBelowCurrent
)

type ProjectRepository interface {
	Create(ctx context.Context, p domain.Project) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Project, error)
	// CachedDetail 详情读走缓存，未命中回源并回填
	CachedDetail(ctx context.Context, id int64) (domain.Project, error)
	ListPublished(ctx context.Context, offset, limit int) ([]domain.Project, int64, error)
	ListByCompany(ctx context.Context, companyId int64, offset, limit int) ([]domain.Project, error)
	List(ctx context.Context, offset, limit int) ([]domain.Project, int64, error)
	ListCompletedAfter(ctx context.Context, lastId int64, limit int) ([]domain.Project, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Transition(ctx context.Context, id int64, from, to domain.Status, opr actor.Actor, note string) error
	IncrViews(ctx context.Context, id int64) error
	Audits(ctx context.Context, id int64) ([]domain.Audit, error)
}

type projectRepository struct {
	dao    dao.ProjectDAO
	cache  cache.ProjectCache
	logger *elog.Component
}

func NewProjectRepository(d dao.ProjectDAO, c cache.ProjectCache) ProjectRepository {
	return &projectRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *projectRepository) Create(ctx context.Context, p domain.Project) (int64, error) {
	return r.dao.Create(ctx, r.domainToEntity(p))
}

func (r *projectRepository) FindById(ctx context.Context, id int64) (domain.Project, error) {
	entity, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	return r.entityToDomain(entity), nil
}

func (r *projectRepository) CachedDetail(ctx context.Context, id int64) (domain.Project, error) {
	p, err := r.cache.Get(ctx, id)
	if err == nil {
		return p, nil
	}
	p, err = r.FindById(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	if err = r.cache.Set(ctx, p); err != nil {
		r.logger.Error("回填项目缓存失败", elog.FieldErr(err), elog.Int64("id", id))
	}
	return p, nil
}

func (r *projectRepository) ListPublished(ctx context.Context, offset, limit int) ([]domain.Project, int64, error) {
	entities, err := r.dao.ListPublished(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.dao.CountPublished(ctx)
	if err != nil {
		return nil, 0, err
	}
	return r.toDomains(entities), total, nil
}

func (r *projectRepository) ListByCompany(ctx context.Context, companyId int64, offset, limit int) ([]domain.Project, error) {
	entities, err := r.dao.ListByCompany(ctx, companyId, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(entities), nil
}

func (r *projectRepository) List(ctx context.Context, offset, limit int) ([]domain.Project, int64, error) {
	entities, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.dao.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return r.toDomains(entities), total, nil
}

func (r *projectRepository) ListCompletedAfter(ctx context.Context, lastId int64, limit int) ([]domain.Project, error) {
	entities, err := r.dao.ListCompletedAfter(ctx, lastId, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(entities), nil
}

func (r *projectRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	err := r.dao.UpdateFields(ctx, id, fields)
	if err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *projectRepository) Transition(ctx context.Context, id int64, from, to domain.Status,
	opr actor.Actor, note string) error {
	err := r.dao.Transition(ctx, id, from, to, opr.ID, opr.Role.String(), note)
	if err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *projectRepository) IncrViews(ctx context.Context, id int64) error {
	return r.dao.IncrViews(ctx, id)
}

func (r *projectRepository) Audits(ctx context.Context, id int64) ([]domain.Audit, error) {
	audits, err := r.dao.Audits(ctx, id)
	if err != nil {
		return nil, err
	}
	return slice.Map(audits, func(_ int, src dao.StatusAudit) domain.Audit {
		return domain.Audit{
			From:      src.FromStatus,
			To:        src.ToStatus,
			ActorID:   src.ActorId,
			ActorRole: src.ActorRole,
			Note:      src.Note,
			At:        src.Ctime,
		}
	}), nil
}

func (r *projectRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.Del(ctx, id); err != nil {
		r.logger.Error("删除项目缓存失败", elog.FieldErr(err), elog.Int64("id", id))
	}
}

func (r *projectRepository) toDomains(entities []dao.Project) []domain.Project {
	return slice.Map(entities, func(_ int, src dao.Project) domain.Project {
		return r.entityToDomain(src)
	})
}

func (r *projectRepository) domainToEntity(p domain.Project) dao.Project {
	return dao.Project{
		Id:               p.ID,
		CompanyId:        p.CompanyID,
		Title:            p.Title,
		Description:      p.Description,
		Requirements:     p.Requirements,
		Status:           p.Status.String(),
		Trl:              p.TRL,
		ApiLevel:         p.APILevel,
		MinApiLevel:      p.MinAPILevel,
		RequiredHours:    p.RequiredHours,
		HoursPerWeek:     p.HoursPerWeek,
		DurationWeeks:    p.DurationWeeks,
		MaxStudents:      p.MaxStudents,
		StartDate:        p.StartDate,
		EstimatedEndDate: p.EstimatedEndDate,
	}
}

func (r *projectRepository) entityToDomain(p dao.Project) domain.Project {
	return domain.Project{
		ID:                p.Id,
		CompanyID:         p.CompanyId,
		Title:             p.Title,
		Description:       p.Description,
		Requirements:      p.Requirements,
		Status:            domain.Status(p.Status),
		TRL:               p.Trl,
		APILevel:          p.ApiLevel,
		MinAPILevel:       p.MinApiLevel,
		RequiredHours:     p.RequiredHours,
		HoursPerWeek:      p.HoursPerWeek,
		DurationWeeks:     p.DurationWeeks,
		MaxStudents:       p.MaxStudents,
		CurrentStudents:   p.CurrentStudents,
		StartDate:         p.StartDate,
		EstimatedEndDate:  p.EstimatedEndDate,
		RealEndDate:       nullInt64(p.RealEndDate),
		ApplicationsCount: p.ApplicationsCount,
		ViewsCount:        p.ViewsCount,
		PublishedAt:       nullInt64(p.PublishedAt),
		Ctime:             p.Ctime,
		Utime:             p.Utime,
	}
}

func nullInt64(v sql.Null[int64]) int64 {
	if v.Valid {
		return v.V
	}
	return 0
}
