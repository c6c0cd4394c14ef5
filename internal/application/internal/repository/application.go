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
	"github.com/leanmaker/leanmaker/internal/application/internal/domain"
	"github.com/leanmaker/leanmaker/internal/application/internal/repository/dao"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
)

var (
	ErrDuplicateApplication = dao.ErrDuplicateApplication
	ErrCapacityExceeded     = dao.ErrCapacityExceeded
	ErrConcurrentTransition = dao.ErrConcurrentTransition
	ErrProjectNotAccepting  = dao.ErrProjectNotAccepting
)

type AcceptResult = dao.AcceptResult

type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Application, error)
	HasNonTerminal(ctx context.Context, projectId, studentId int64) (bool, error)
	Transition(ctx context.Context, id int64, from, to domain.Status, opr actor.Actor, note string) error
	Accept(ctx context.Context, id int64, from domain.Status, opr actor.Actor) (AcceptResult, error)
	ListByProject(ctx context.Context, projectId int64, offset, limit int) ([]domain.Application, int64, error)
	ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]domain.Application, error)
	FindAssignmentById(ctx context.Context, id int64) (domain.Assignment, error)
	FindAssignmentByApplication(ctx context.Context, applicationId int64) (domain.Assignment, error)
	ListAssignmentsByStudent(ctx context.Context, studentId int64, offset, limit int) ([]domain.Assignment, error)
	HasAssignment(ctx context.Context, projectId, studentId int64) (bool, error)
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(dao dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{
		dao: dao,
	}
}

func (r *applicationRepository) Create(ctx context.Context, app domain.Application) (int64, error) {
	return r.dao.Insert(ctx, dao.Application{
		ProjectId:          app.ProjectID,
		StudentId:          app.StudentID,
		CompatibilityScore: app.CompatibilityScore,
		CoverLetter:        app.CoverLetter,
		StudentNotes:       app.StudentNotes,
		PortfolioUrl:       app.PortfolioURL,
		GithubUrl:          app.GithubURL,
		LinkedinUrl:        app.LinkedinURL,
	})
}

func (r *applicationRepository) FindById(ctx context.Context, id int64) (domain.Application, error) {
	entity, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	return r.entityToDomain(entity), nil
}

func (r *applicationRepository) HasNonTerminal(ctx context.Context, projectId, studentId int64) (bool, error) {
	return r.dao.HasNonTerminal(ctx, projectId, studentId)
}

func (r *applicationRepository) Transition(ctx context.Context, id int64, from, to domain.Status,
	opr actor.Actor, note string) error {
	return r.dao.Transition(ctx, id, from, to, opr.ID, opr.Role.String(), note)
}

func (r *applicationRepository) Accept(ctx context.Context, id int64, from domain.Status,
	opr actor.Actor) (AcceptResult, error) {
	return r.dao.Accept(ctx, id, from, opr.ID, opr.Role.String())
}

func (r *applicationRepository) ListByProject(ctx context.Context, projectId int64, offset, limit int) ([]domain.Application, int64, error) {
	entities, err := r.dao.ListByProject(ctx, projectId, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.dao.CountByProject(ctx, projectId)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(entities, func(_ int, src dao.Application) domain.Application {
		return r.entityToDomain(src)
	}), total, nil
}

func (r *applicationRepository) ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]domain.Application, error) {
	entities, err := r.dao.ListByStudent(ctx, studentId, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Application) domain.Application {
		return r.entityToDomain(src)
	}), nil
}

func (r *applicationRepository) FindAssignmentById(ctx context.Context, id int64) (domain.Assignment, error) {
	entity, err := r.dao.FindAssignmentById(ctx, id)
	if err != nil {
		return domain.Assignment{}, err
	}
	return r.assignmentToDomain(entity), nil
}

func (r *applicationRepository) FindAssignmentByApplication(ctx context.Context, applicationId int64) (domain.Assignment, error) {
	entity, err := r.dao.FindAssignmentByApplication(ctx, applicationId)
	if err != nil {
		return domain.Assignment{}, err
	}
	return r.assignmentToDomain(entity), nil
}

func (r *applicationRepository) ListAssignmentsByStudent(ctx context.Context, studentId int64, offset, limit int) ([]domain.Assignment, error) {
	entities, err := r.dao.ListAssignmentsByStudent(ctx, studentId, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Assignment) domain.Assignment {
		return r.assignmentToDomain(src)
	}), nil
}

func (r *applicationRepository) HasAssignment(ctx context.Context, projectId, studentId int64) (bool, error) {
	return r.dao.HasAssignment(ctx, projectId, studentId)
}

func (r *applicationRepository) entityToDomain(app dao.Application) domain.Application {
	return domain.Application{
		ID:                 app.Id,
		ProjectID:          app.ProjectId,
		StudentID:          app.StudentId,
		Status:             domain.Status(app.Status),
		CompatibilityScore: app.CompatibilityScore,
		CoverLetter:        app.CoverLetter,
		StudentNotes:       app.StudentNotes,
		CompanyNotes:       app.CompanyNotes,
		PortfolioURL:       app.PortfolioUrl,
		GithubURL:          app.GithubUrl,
		LinkedinURL:        app.LinkedinUrl,
		AppliedAt:          app.AppliedAt,
		ReviewedAt:         nullInt64(app.ReviewedAt),
		RespondedAt:        nullInt64(app.RespondedAt),
		Ctime:              app.Ctime,
		Utime:              app.Utime,
	}
}

func (r *applicationRepository) assignmentToDomain(asg dao.Assignment) domain.Assignment {
	return domain.Assignment{
		ID:             asg.Id,
		ApplicationID:  asg.ApplicationId,
		StudentID:      asg.StudentId,
		ProjectID:      asg.ProjectId,
		Status:         domain.AssignmentStatus(asg.Status),
		StartDate:      asg.StartDate,
		EndDate:        nullInt64(asg.EndDate),
		HoursWorked:    asg.HoursWorked,
		TasksCompleted: asg.TasksCompleted,
		Ctime:          asg.Ctime,
		Utime:          asg.Utime,
	}
}

func nullInt64(v sql.Null[int64]) int64 {
	if v.Valid {
		return v.V
	}
	return 0
}
