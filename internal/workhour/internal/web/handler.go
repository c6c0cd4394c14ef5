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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/domain"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/repository"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/service"
)

type Handler struct {
	svc service.WorkHourService
}

func NewHandler(svc service.WorkHourService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/workhours")
	g.POST("/log", ginx.BS[LogReq](h.Log))
	g.POST("/verify", ginx.BS[VerifyReq](h.Verify))
	g.POST("/reverse", ginx.BS[ReverseReq](h.Reverse))
	g.POST("/detail", ginx.B[IdReq](h.GetById))
	g.POST("/mine", ginx.BS[Page](h.Mine))
	g.POST("/project", ginx.BS[ListByProjectReq](h.ListByProject))
}

func (h *Handler) Log(ctx *ginx.Context, req LogReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Log(ctx, actor.FromSession(sess), domain.WorkHour{
		AssignmentID: req.AssignmentID,
		Date:         req.Date,
		HoursWorked:  req.Hours,
		Description:  req.Description,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidHours), errors.Is(err, domain.ErrFutureDate):
		return invalidEntryResult, err
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Verify(ctx *ginx.Context, req VerifyReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Verify(ctx, actor.FromSession(sess), req.Id, req.Approved)
	switch {
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case errors.Is(err, repository.ErrAlreadyVerified):
		return alreadyVerifiedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Reverse(ctx *ginx.Context, req ReverseReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Reverse(ctx, actor.FromSession(sess), req.Id, req.Reason)
	switch {
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case errors.Is(err, repository.ErrAlreadyReversed):
		return alreadyReversedResult, err
	case errors.Is(err, repository.ErrNotVerified):
		return invalidEntryResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) GetById(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	wh, err := h.svc.GetById(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newWorkHourVO(wh),
	}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	opr := actor.FromSession(sess)
	entries, total, err := h.svc.ListByStudent(ctx, opr, opr.ID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListWorkHourResp{
			Total: total,
			List: slice.Map(entries, func(_ int, src domain.WorkHour) WorkHourVO {
				return newWorkHourVO(src)
			}),
		},
	}, nil
}

func (h *Handler) ListByProject(ctx *ginx.Context, req ListByProjectReq, sess session.Session) (ginx.Result, error) {
	entries, err := h.svc.ListByProject(ctx, actor.FromSession(sess), req.ProjectID, req.Offset, req.Limit)
	switch {
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListWorkHourResp{
			List: slice.Map(entries, func(_ int, src domain.WorkHour) WorkHourVO {
				return newWorkHourVO(src)
			}),
		},
	}, nil
}

func newWorkHourVO(wh domain.WorkHour) WorkHourVO {
	return WorkHourVO{
		ID:                  wh.ID,
		StudentID:           wh.StudentID,
		ProjectID:           wh.ProjectID,
		AssignmentID:        wh.AssignmentID,
		Date:                wh.Date,
		Hours:               wh.HoursWorked,
		Description:         wh.Description,
		IsVerified:          wh.IsVerified,
		VerifiedBy:          wh.VerifiedBy,
		VerifiedAt:          wh.VerifiedAt,
		RejectedBy:          wh.RejectedBy,
		RejectedAt:          wh.RejectedAt,
		IsProjectCompletion: wh.IsProjectCompletion,
		ReversalOf:          wh.ReversalOf,
		Ctime:               wh.Ctime,
	}
}
