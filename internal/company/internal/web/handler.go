package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/leanmaker/leanmaker/internal/company/internal/domain"
	"github.com/leanmaker/leanmaker/internal/company/internal/service"
)

type Handler struct {
	svc service.CompanyService
}

func NewHandler(svc service.CompanyService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/companies")
	g.POST("/detail", ginx.B[IdReq](h.GetById))
	g.POST("/list", ginx.B[Page](h.List))
}

func (h *Handler) GetById(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	company, err := h.svc.GetById(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newCompanyVO(company),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
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

func newCompanyVO(c domain.Company) CompanyVO {
	return CompanyVO{
		ID:                c.ID,
		Name:              c.Name,
		Rating:            c.Rating,
		TotalProjects:     c.TotalProjects,
		ProjectsCompleted: c.ProjectsCompleted,
		TotalHoursOffered: c.TotalHoursOffered,
		Verified:          c.Verified,
		Status:            c.Status.String(),
		Ctime:             c.Ctime,
		Utime:             c.Utime,
	}
}
