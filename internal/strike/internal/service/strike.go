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
	"github.com/leanmaker/leanmaker/internal/strike/internal/domain"
	"github.com/leanmaker/leanmaker/internal/strike/internal/event"
	"github.com/leanmaker/leanmaker/internal/strike/internal/repository"
	"github.com/lithammer/shortuuid/v4"
)

var ErrForbidden = errors.New("无权操作记过")

//go:generate mockgen -source=./strike.go -destination=../../mocks/strike.mock.go -package=strikemocks -typed StrikeService
type StrikeService interface {
	// Issue 企业或管理员签发记过，第三次生效记过在同一事务里停用学生
	Issue(ctx context.Context, opr actor.Actor, strike domain.Strike) (int64, error)
	// Deactivate 管理员把记过置为失效，学生状态不自动恢复
	Deactivate(ctx context.Context, opr actor.Actor, id int64) error
	GetById(ctx context.Context, id int64) (domain.Strike, error)
	ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]domain.Strike, error)
	CountActive(ctx context.Context, studentId int64) (int64, error)
}

type strikeService struct {
	repo     repository.StrikeRepository
	producer event.SuspendedProducer
	logger   *elog.Component
}

func NewStrikeService(repo repository.StrikeRepository,
	producer event.SuspendedProducer) StrikeService {
	return &strikeService{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *strikeService) Issue(ctx context.Context, opr actor.Actor, strike domain.Strike) (int64, error) {
	switch {
	case opr.IsAdmin():
	case opr.IsCompany():
		strike.CompanyID = opr.ID
	default:
		return 0, ErrForbidden
	}
	res, err := s.repo.Issue(ctx, strike)
	if err != nil {
		return 0, err
	}
	if res.Suspended {
		if perr := s.producer.Produce(ctx, event.StudentSuspendedEvent{
			Key:           shortuuid.New(),
			StudentID:     strike.StudentID,
			StrikeID:      res.Id,
			ActiveStrikes: res.ActiveStrikes,
			SuspendedAt:   time.Now().UnixMilli(),
		}); perr != nil {
			s.logger.Error("发送学生停用事件失败", elog.FieldErr(perr),
				elog.Int64("studentId", strike.StudentID))
		}
	}
	return res.Id, nil
}

func (s *strikeService) Deactivate(ctx context.Context, opr actor.Actor, id int64) error {
	if !opr.IsAdmin() {
		return ErrForbidden
	}
	return s.repo.Deactivate(ctx, id)
}

func (s *strikeService) GetById(ctx context.Context, id int64) (domain.Strike, error) {
	return s.repo.FindById(ctx, id)
}

func (s *strikeService) ListByStudent(ctx context.Context, studentId int64, offset, limit int) ([]domain.Strike, error) {
	return s.repo.ListByStudent(ctx, studentId, offset, limit)
}

func (s *strikeService) CountActive(ctx context.Context, studentId int64) (int64, error) {
	return s.repo.CountActive(ctx, studentId)
}
