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
	"github.com/leanmaker/leanmaker/internal/project/internal/domain"
	"github.com/leanmaker/leanmaker/internal/project/internal/repository"
	"github.com/leanmaker/leanmaker/internal/project/internal/service"
)

// Handler 项目的业务端接口：企业管理自己的项目，学生浏览已发布项目
type Handler struct {
	svc service.ProjectService
}

func NewHandler(svc service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/projects")
	g.POST("/list", ginx.B[Page](h.ListPublished))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/projects")
	g.POST("/create", ginx.BS[CreateProjectReq](h.Create))
	g.POST("/publish", ginx.BS[IdReq](h.Publish))
	g.POST("/update", ginx.BS[UpdateProjectReq](h.Update))
	g.POST("/transition", ginx.BS[TransitionReq](h.Transition))
	g.POST("/mine", ginx.BS[Page](h.Mine))
	g.POST("/audits", ginx.B[IdReq](h.Audits))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateProjectReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Create(ctx, actor.FromSession(sess), domain.Project{
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     req.Requirements,
		TRL:              req.TRL,
		APILevel:         req.APILevel,
		MinAPILevel:      req.MinAPILevel,
		RequiredHours:    req.RequiredHours,
		HoursPerWeek:     req.HoursPerWeek,
		DurationWeeks:    req.DurationWeeks,
		MaxStudents:      req.MaxStudents,
		StartDate:        req.StartDate,
		EstimatedEndDate: req.EstimatedEndDate,
	})
	var ve domain.ValidationError
	switch {
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case errors.Is(err, service.ErrCapabilityMismatch):
		return capabilityMismatchResult, err
	case errors.As(err, &ve):
		return ginx.Result{
			Code: validationFailedCode,
			Msg:  ve.Error(),
		}, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProjectVO(p),
	}, nil
}

func (h *Handler) Publish(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Publish(ctx, actor.FromSession(sess), req.Id)
	return transitionResult(err)
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateProjectReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateFields(ctx, actor.FromSession(sess), req.Id, service.Patch{
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     req.Requirements,
		TRL:              req.TRL,
		MinAPILevel:      req.MinAPILevel,
		RequiredHours:    req.RequiredHours,
		HoursPerWeek:     req.HoursPerWeek,
		DurationWeeks:    req.DurationWeeks,
		MaxStudents:      req.MaxStudents,
		StartDate:        req.StartDate,
		EstimatedEndDate: req.EstimatedEndDate,
	})
	var ve domain.ValidationError
	switch {
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrNotEditable):
		return forbiddenResult, err
	case errors.Is(err, repository.ErrCapacityBelowCurrent):
		return capacityBelowCurrentResult, err
	case errors.Is(err, service.ErrCapabilityMismatch):
		return capabilityMismatchResult, err
	case errors.As(err, &ve):
		return ginx.Result{
			Code: validationFailedCode,
			Msg:  ve.Error(),
		}, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Transition(ctx *ginx.Context, req TransitionReq, sess session.Session) (ginx.Result, error) {
	target, err := domain.ParseStatus(req.Target)
	if err != nil {
		return unknownStatusResult, err
	}
	err = h.svc.Transition(ctx, actor.FromSession(sess), req.Id, target, req.Note)
	return transitionResult(err)
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProjectVO(p),
	}, nil
}

func (h *Handler) ListPublished(ctx *ginx.Context, req Page) (ginx.Result, error) {
	list, total, err := h.svc.ListPublished(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListProjectResp{
			Total: total,
			List:  newProjectVOs(list),
		},
	}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	list, err := h.svc.ListByCompany(ctx, actor.FromSession(sess), req.Offset, req.Limit)
	switch {
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListProjectResp{List: newProjectVOs(list)},
	}, nil
}

func (h *Handler) Audits(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	audits, err := h.svc.Audits(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(audits, func(_ int, src domain.Audit) AuditVO {
			return AuditVO{
				From:      src.From,
				To:        src.To,
				ActorID:   src.ActorID,
				ActorRole: src.ActorRole,
				Note:      src.Note,
				At:        src.At,
			}
		}),
	}, nil
}

func transitionResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrForbidden), errors.Is(err, domain.ErrTransitionDenied):
		return forbiddenResult, err
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, repository.ErrConcurrentTransition):
		return invalidTransitionResult, err
	case errors.Is(err, repository.ErrNoAcceptedApplications):
		return notActivatableResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func newProjectVOs(list []domain.Project) []ProjectVO {
	return slice.Map(list, func(_ int, src domain.Project) ProjectVO {
		return newProjectVO(src)
	})
}

func newProjectVO(p domain.Project) ProjectVO {
	return ProjectVO{
		ID:                p.ID,
		CompanyID:         p.CompanyID,
		Title:             p.Title,
		Description:       p.Description,
		Requirements:      p.Requirements,
		Status:            p.Status.String(),
		TRL:               p.TRL,
		APILevel:          p.APILevel,
		MinAPILevel:       p.MinAPILevel,
		RequiredHours:     p.RequiredHours,
		HoursPerWeek:      p.HoursPerWeek,
		DurationWeeks:     p.DurationWeeks,
		MaxStudents:       p.MaxStudents,
		CurrentStudents:   p.CurrentStudents,
		StartDate:         p.StartDate,
		EstimatedEndDate:  p.EstimatedEndDate,
		RealEndDate:       p.RealEndDate,
		ApplicationsCount: p.ApplicationsCount,
		ViewsCount:        p.ViewsCount,
		PublishedAt:       p.PublishedAt,
		Utime:             p.Utime,
	}
}
