package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/leanmaker/leanmaker/internal/company/internal/domain"
	"github.com/leanmaker/leanmaker/internal/company/internal/service"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
)

// CompanyHandler 管理端的公司接口
type CompanyHandler struct {
	svc service.CompanyService
}

func NewCompanyHandler(svc service.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		svc: svc,
	}
}

func (h *CompanyHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/companies")
	g.POST("/save", ginx.BS[SaveCompanyReq](h.Save))
	g.POST("/detail", ginx.B[IdReq](h.GetById))
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/update-status", ginx.BS[UpdateStatusReq](h.UpdateStatus))
	g.POST("/verify", ginx.BS[IdReq](h.Verify))
}

func (h *CompanyHandler) Save(ctx *ginx.Context, req SaveCompanyReq, _ session.Session) (ginx.Result, error) {
	resultId, err := h.svc.Save(ctx, domain.Company{
		ID:     req.ID,
		UserID: req.UserID,
		Name:   req.Name,
	})
	if err != nil {
		return systemErrorResult, err
	}

	return ginx.Result{
		Data: resultId,
	}, nil
}

func (h *CompanyHandler) GetById(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	company, err := h.svc.GetById(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newCompanyVO(company),
	}, nil
}

func (h *CompanyHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	companies, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListCompanyResp{
			Total: total,
			List: slice.Map(companies, func(idx int, src domain.Company) CompanyVO {
				return newCompanyVO(src)
			}),
		},
	}, nil
}

func (h *CompanyHandler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq, sess session.Session) (ginx.Result, error) {
	status := domain.CompanyStatus(req.Status)
	if !status.IsValid() {
		return ginx.Result{Code: 508003, Msg: "无效的公司状态"}, nil
	}
	err := h.svc.UpdateStatus(ctx, actor.FromSession(sess), req.Id, status)
	if errors.Is(err, service.ErrForbidden) {
		return forbiddenResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *CompanyHandler) Verify(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Verify(ctx, actor.FromSession(sess), req.Id)
	if errors.Is(err, service.ErrForbidden) {
		return forbiddenResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
