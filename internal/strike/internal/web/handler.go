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
	"github.com/leanmaker/leanmaker/internal/strike/internal/domain"
	"github.com/leanmaker/leanmaker/internal/strike/internal/service"
)

type Handler struct {
	svc service.StrikeService
}

func NewHandler(svc service.StrikeService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/strikes")
	g.POST("/issue", ginx.BS[IssueReq](h.Issue))
	g.POST("/student", ginx.B[ListByStudentReq](h.ListByStudent))
}

func (h *Handler) Issue(ctx *ginx.Context, req IssueReq, sess session.Session) (ginx.Result, error) {
	severity, err := domain.ParseSeverity(req.Severity)
	if err != nil {
		return invalidSeverityResult, err
	}
	id, err := h.svc.Issue(ctx, actor.FromSession(sess), domain.Strike{
		StudentID: req.StudentID,
		ProjectID: req.ProjectID,
		Reason:    req.Reason,
		Severity:  severity,
	})
	switch {
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) ListByStudent(ctx *ginx.Context, req ListByStudentReq) (ginx.Result, error) {
	strikes, err := h.svc.ListByStudent(ctx, req.StudentID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListStrikeResp{List: newStrikeVOs(strikes)},
	}, nil
}

func newStrikeVOs(strikes []domain.Strike) []StrikeVO {
	return slice.Map(strikes, func(_ int, src domain.Strike) StrikeVO {
		return StrikeVO{
			ID:        src.ID,
			StudentID: src.StudentID,
			CompanyID: src.CompanyID,
			ProjectID: src.ProjectID,
			Reason:    src.Reason,
			Severity:  string(src.Severity),
			IsActive:  src.IsActive,
			IssuedAt:  src.IssuedAt,
		}
	})
}
