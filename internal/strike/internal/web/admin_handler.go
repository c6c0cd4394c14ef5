package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	"github.com/leanmaker/leanmaker/internal/strike/internal/repository"
	"github.com/leanmaker/leanmaker/internal/strike/internal/service"
)

// AdminHandler 管理端记过接口：撤销误签发的记过
type AdminHandler struct {
	svc service.StrikeService
}

func NewAdminHandler(svc service.StrikeService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/strikes")
	g.POST("/deactivate", ginx.BS[IdReq](h.Deactivate))
}

func (h *AdminHandler) Deactivate(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Deactivate(ctx, actor.FromSession(sess), req.Id)
	switch {
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case errors.Is(err, repository.ErrStrikeNotActive):
		return strikeNotActiveResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
