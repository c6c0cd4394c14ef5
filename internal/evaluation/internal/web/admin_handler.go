package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/repository"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/service"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
)

// AdminHandler 管理端评价接口：标记问题评价、手工触发聚合重算
type AdminHandler struct {
	svc service.EvaluationService
}

func NewAdminHandler(svc service.EvaluationService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/evaluations")
	g.POST("/flag", ginx.BS[IdReq](h.Flag))
	g.POST("/recompute", ginx.B[RecomputeReq](h.Recompute))
}

func (h *AdminHandler) Flag(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Flag(ctx, actor.FromSession(sess), req.Id)
	switch {
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case errors.Is(err, repository.ErrAlreadyFlagged):
		return alreadyFlaggedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Recompute(ctx *ginx.Context, req RecomputeReq) (ginx.Result, error) {
	stats, err := h.svc.RecomputeAggregates(ctx, service.RecomputeScope{
		Company: req.CompanyID,
		Student: req.StudentID,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: RecomputeResp{
			Companies: stats.Companies,
			Students:  stats.Students,
		},
	}, nil
}
