package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	"github.com/leanmaker/leanmaker/internal/project/internal/domain"
	"github.com/leanmaker/leanmaker/internal/project/internal/service"
)

// AdminHandler 管理端项目接口：全量列表、强制流转（冻结/解冻/删除）
type AdminHandler struct {
	svc service.ProjectService
}

func NewAdminHandler(svc service.ProjectService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/projects")
	g.POST("/list", ginx.BS[Page](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/transition", ginx.BS[TransitionReq](h.Transition))
	g.POST("/audits", ginx.B[IdReq](h.Audits))
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	list, total, err := h.svc.List(ctx, actor.FromSession(sess), req.Offset, req.Limit)
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

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	p, err := h.svc.GetById(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProjectVO(p),
	}, nil
}

func (h *AdminHandler) Transition(ctx *ginx.Context, req TransitionReq, sess session.Session) (ginx.Result, error) {
	target, err := domain.ParseStatus(req.Target)
	if err != nil {
		return unknownStatusResult, err
	}
	err = h.svc.Transition(ctx, actor.FromSession(sess), req.Id, target, req.Note)
	return transitionResult(err)
}

func (h *AdminHandler) Audits(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
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
