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
	"github.com/leanmaker/leanmaker/internal/workhour/internal/domain"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/repository/dao"
)

var (
	ErrAlreadyVerified = dao.ErrAlreadyVerified
	ErrAlreadyReversed = dao.ErrAlreadyReversed
	ErrNotVerified     = dao.ErrNotVerified
)

type WorkHourRepository interface {
	Append(ctx context.Context, wh domain.WorkHour) (int64, error)
	FindById(ctx context.Context, id int64) (domain.WorkHour, error)
	Verify(ctx context.Context, id int64, verifierId int64, approved bool) error
	Reverse(ctx context.Context, originalId int64, byId int64, reason string) (int64, error)
	MintCompletion(ctx context.Context, projectId int64, requiredHours int, verifiedBy int64) (int64, error)
	ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]domain.WorkHour, int64, error)
	ListByProject(ctx context.Context, projectId int64, offset, limit int) ([]domain.WorkHour, error)
	SumVerified(ctx context.Context, studentId, projectId int64) (int64, error)
	FindAssignment(ctx context.Context, assignmentId int64) (domain.AssignmentRef, error)
	FindProjectRef(ctx context.Context, projectId int64) (domain.ProjectRef, error)
}

type workHourRepository struct {
	dao dao.WorkHourDAO
}

func NewWorkHourRepository(dao dao.WorkHourDAO) WorkHourRepository {
	return &workHourRepository{
		dao: dao,
	}
}

func (r *workHourRepository) Append(ctx context.Context, wh domain.WorkHour) (int64, error) {
	return r.dao.Append(ctx, r.domainToEntity(wh))
}

func (r *workHourRepository) FindById(ctx context.Context, id int64) (domain.WorkHour, error) {
	entity, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.WorkHour{}, err
	}
	return r.entityToDomain(entity), nil
}

func (r *workHourRepository) Verify(ctx context.Context, id int64, verifierId int64, approved bool) error {
	return r.dao.Verify(ctx, id, verifierId, approved)
}

func (r *workHourRepository) Reverse(ctx context.Context, originalId int64, byId int64, reason string) (int64, error) {
	return r.dao.Reverse(ctx, originalId, byId, reason)
}

func (r *workHourRepository) MintCompletion(ctx context.Context, projectId int64, requiredHours int, verifiedBy int64) (int64, error) {
	return r.dao.MintCompletion(ctx, projectId, requiredHours, verifiedBy)
}

func (r *workHourRepository) ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]domain.WorkHour, int64, error) {
	entities, err := r.dao.ListByStudent(ctx, studentId, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.dao.CountByStudent(ctx, studentId)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(entities, func(_ int, src dao.WorkHour) domain.WorkHour {
		return r.entityToDomain(src)
	}), total, nil
}

func (r *workHourRepository) ListByProject(ctx context.Context, projectId int64, offset, limit int) ([]domain.WorkHour, error) {
	entities, err := r.dao.ListByProject(ctx, projectId, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.WorkHour) domain.WorkHour {
		return r.entityToDomain(src)
	}), nil
}

func (r *workHourRepository) SumVerified(ctx context.Context, studentId, projectId int64) (int64, error) {
	return r.dao.SumVerified(ctx, studentId, projectId)
}

func (r *workHourRepository) FindAssignment(ctx context.Context, assignmentId int64) (domain.AssignmentRef, error) {
	asg, err := r.dao.FindAssignment(ctx, assignmentId)
	if err != nil {
		return domain.AssignmentRef{}, err
	}
	return domain.AssignmentRef{
		ID:            asg.Id,
		ApplicationID: asg.ApplicationId,
		StudentID:     asg.StudentId,
		ProjectID:     asg.ProjectId,
		Status:        asg.Status,
		StartDate:     asg.StartDate,
	}, nil
}

func (r *workHourRepository) FindProjectRef(ctx context.Context, projectId int64) (domain.ProjectRef, error) {
	prj, err := r.dao.FindProjectRef(ctx, projectId)
	if err != nil {
		return domain.ProjectRef{}, err
	}
	return domain.ProjectRef{
		ID:            prj.Id,
		CompanyID:     prj.CompanyId,
		Status:        prj.Status,
		RequiredHours: prj.RequiredHours,
	}, nil
}

func (r *workHourRepository) domainToEntity(wh domain.WorkHour) dao.WorkHour {
	return dao.WorkHour{
		Id:           wh.ID,
		StudentId:    wh.StudentID,
		ProjectId:    wh.ProjectID,
		AssignmentId: wh.AssignmentID,
		Date:         wh.Date,
		HoursWorked:  wh.HoursWorked,
		Description:  wh.Description,
	}
}

func (r *workHourRepository) entityToDomain(wh dao.WorkHour) domain.WorkHour {
	res := domain.WorkHour{
		ID:                  wh.Id,
		StudentID:           wh.StudentId,
		ProjectID:           wh.ProjectId,
		AssignmentID:        wh.AssignmentId,
		Date:                wh.Date,
		HoursWorked:         wh.HoursWorked,
		Description:         wh.Description,
		IsVerified:          wh.IsVerified,
		IsProjectCompletion: wh.CompletionKey.Valid,
		Ctime:               wh.Ctime,
		Utime:               wh.Utime,
	}
	res.VerifiedBy = nullInt64(wh.VerifiedBy)
	res.VerifiedAt = nullInt64(wh.VerifiedAt)
	res.RejectedBy = nullInt64(wh.RejectedBy)
	res.RejectedAt = nullInt64(wh.RejectedAt)
	res.ReversalOf = nullInt64(wh.ReversalOf)
	return res
}

func nullInt64(v sql.Null[int64]) int64 {
	if v.Valid {
		return v.V
	}
	return 0
}
