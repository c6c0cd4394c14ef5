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
	"github.com/leanmaker/leanmaker/internal/application/internal/domain"
	"github.com/leanmaker/leanmaker/internal/application/internal/repository"
	"github.com/leanmaker/leanmaker/internal/application/internal/service"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
)

type Handler struct {
	svc service.ApplicationService
}

func NewHandler(svc service.ApplicationService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications")
	g.POST("/eligibility", ginx.BS[EligibilityReq](h.Eligibility))
	g.POST("/submit", ginx.BS[SubmitReq](h.Submit))
	g.POST("/accept", ginx.BS[IdReq](h.Accept))
	g.POST("/transition", ginx.BS[TransitionReq](h.Transition))
	g.POST("/detail", ginx.B[IdReq](h.GetById))
	g.POST("/project", ginx.BS[ListByProjectReq](h.ListByProject))
	g.POST("/mine", ginx.BS[Page](h.Mine))
	g.POST("/assignments/mine", ginx.BS[Page](h.MyAssignments))
}

func (h *Handler) Eligibility(ctx *ginx.Context, req EligibilityReq, sess session.Session) (ginx.Result, error) {
	opr := actor.FromSession(sess)
	eli, err := h.svc.Eligibility(ctx, opr.ID, req.ProjectID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: EligibilityVO{OK: eli.OK, Reasons: eli.Reasons},
	}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Submit(ctx, actor.FromSession(sess), domain.Application{
		ProjectID:          req.ProjectID,
		CompatibilityScore: req.CompatibilityScore,
		CoverLetter:        req.CoverLetter,
		StudentNotes:       req.StudentNotes,
		PortfolioURL:       req.PortfolioURL,
		GithubURL:          req.GithubURL,
		LinkedinURL:        req.LinkedinURL,
	})
	var ie service.IneligibleError
	switch {
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case errors.As(err, &ie):
		return ginx.Result{
			Code: ineligibleCode,
			Msg:  ie.Error(),
		}, err
	case errors.Is(err, repository.ErrDuplicateApplication):
		return duplicateResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Accept(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	asg, err := h.svc.Accept(ctx, actor.FromSession(sess), req.Id)
	switch {
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, repository.ErrConcurrentTransition),
		errors.Is(err, repository.ErrProjectNotAccepting):
		return invalidTransitionResult, err
	case errors.Is(err, repository.ErrCapacityExceeded):
		return capacityExceededResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newAssignmentVO(asg),
	}, nil
}

func (h *Handler) Transition(ctx *ginx.Context, req TransitionReq, sess session.Session) (ginx.Result, error) {
	target, err := domain.ParseStatus(req.Target)
	if err != nil {
		return unknownStatusResult, err
	}
	err = h.svc.Transition(ctx, actor.FromSession(sess), req.Id, target, req.Note)
	switch {
	case errors.Is(err, service.ErrForbidden), errors.Is(err, domain.ErrTransitionDenied):
		return forbiddenResult, err
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, repository.ErrConcurrentTransition):
		return invalidTransitionResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) GetById(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	app, err := h.svc.GetById(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newApplicationVO(app),
	}, nil
}

func (h *Handler) ListByProject(ctx *ginx.Context, req ListByProjectReq, sess session.Session) (ginx.Result, error) {
	list, total, err := h.svc.ListByProject(ctx, actor.FromSession(sess), req.ProjectID, req.Offset, req.Limit)
	switch {
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListApplicationResp{
			Total: total,
			List: slice.Map(list, func(_ int, src domain.Application) ApplicationVO {
				return newApplicationVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	list, err := h.svc.ListMine(ctx, actor.FromSession(sess), req.Offset, req.Limit)
	switch {
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListApplicationResp{
			List: slice.Map(list, func(_ int, src domain.Application) ApplicationVO {
				return newApplicationVO(src)
			}),
		},
	}, nil
}

func (h *Handler) MyAssignments(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	list, err := h.svc.MyAssignments(ctx, actor.FromSession(sess), req.Offset, req.Limit)
	switch {
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(list, func(_ int, src domain.Assignment) AssignmentVO {
			return newAssignmentVO(src)
		}),
	}, nil
}

func newApplicationVO(app domain.Application) ApplicationVO {
	return ApplicationVO{
		ID:                 app.ID,
		ProjectID:          app.ProjectID,
		StudentID:          app.StudentID,
		Status:             app.Status.String(),
		CompatibilityScore: app.CompatibilityScore,
		CoverLetter:        app.CoverLetter,
		StudentNotes:       app.StudentNotes,
		CompanyNotes:       app.CompanyNotes,
		PortfolioURL:       app.PortfolioURL,
		GithubURL:          app.GithubURL,
		LinkedinURL:        app.LinkedinURL,
		AppliedAt:          app.AppliedAt,
		ReviewedAt:         app.ReviewedAt,
		RespondedAt:        app.RespondedAt,
	}
}

func newAssignmentVO(asg domain.Assignment) AssignmentVO {
	return AssignmentVO{
		ID:             asg.ID,
		ApplicationID:  asg.ApplicationID,
		StudentID:      asg.StudentID,
		ProjectID:      asg.ProjectID,
		Status:         asg.Status.String(),
		StartDate:      asg.StartDate,
		EndDate:        asg.EndDate,
		HoursWorked:    asg.HoursWorked,
		TasksCompleted: asg.TasksCompleted,
	}
}
