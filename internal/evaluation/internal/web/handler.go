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
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/domain"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/repository"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/service"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
)

type Handler struct {
	svc service.EvaluationService
}

func NewHandler(svc service.EvaluationService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/evaluations")
	g.POST("/submit", ginx.BS[SubmitReq](h.Submit))
	g.POST("/detail", ginx.B[IdReq](h.GetById))
	g.POST("/project", ginx.B[ListByProjectReq](h.ListByProject))
	g.POST("/student", ginx.B[ListByStudentReq](h.ListByStudent))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	typ, err := domain.ParseType(req.Type)
	if err != nil {
		return invalidScoreResult, err
	}
	id, err := h.svc.Submit(ctx, actor.FromSession(sess), domain.Evaluation{
		ProjectID:           req.ProjectID,
		StudentID:           req.StudentID,
		Type:                typ,
		Score:               req.Score,
		Comments:            req.Comments,
		Strengths:           req.Strengths,
		AreasForImprovement: req.AreasForImprovement,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidScore):
		return invalidScoreResult, err
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case errors.Is(err, service.ErrProjectNotFinalized):
		return projectNotFinalizedResult, err
	case errors.Is(err, repository.ErrDuplicateEvaluation):
		return duplicateEvaluationResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) GetById(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	eval, err := h.svc.GetById(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEvaluationVO(eval),
	}, nil
}

func (h *Handler) ListByProject(ctx *ginx.Context, req ListByProjectReq) (ginx.Result, error) {
	evals, err := h.svc.ListByProject(ctx, req.ProjectID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListEvaluationResp{List: newEvaluationVOs(evals)},
	}, nil
}

func (h *Handler) ListByStudent(ctx *ginx.Context, req ListByStudentReq) (ginx.Result, error) {
	evals, err := h.svc.ListByStudent(ctx, req.StudentID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListEvaluationResp{List: newEvaluationVOs(evals)},
	}, nil
}

func newEvaluationVOs(evals []domain.Evaluation) []EvaluationVO {
	return slice.Map(evals, func(_ int, src domain.Evaluation) EvaluationVO {
		return newEvaluationVO(src)
	})
}

func newEvaluationVO(eval domain.Evaluation) EvaluationVO {
	return EvaluationVO{
		ID:                  eval.ID,
		ProjectID:           eval.ProjectID,
		StudentID:           eval.StudentID,
		EvaluatorID:         eval.EvaluatorID,
		EvaluatorRole:       eval.EvaluatorRole,
		Type:                string(eval.Type),
		Score:               eval.Score,
		Comments:            eval.Comments,
		Strengths:           eval.Strengths,
		AreasForImprovement: eval.AreasForImprovement,
		Status:              string(eval.Status),
		EvaluationDate:      eval.EvaluationDate,
		Ctime:               eval.Ctime,
	}
}
