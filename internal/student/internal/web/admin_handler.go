package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	"github.com/leanmaker/leanmaker/internal/student/internal/domain"
	"github.com/leanmaker/leanmaker/internal/student/internal/service"
)

// StudentHandler 管理端的学生接口
type StudentHandler struct {
	svc service.StudentService
}

func NewStudentHandler(svc service.StudentService) *StudentHandler {
	return &StudentHandler{svc: svc}
}

func (h *StudentHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/students")
	g.POST("/save", ginx.B[SaveStudentReq](h.Save))
	g.POST("/detail", ginx.B[IdReq](h.GetById))
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/update-status", ginx.BS[UpdateStatusReq](h.UpdateStatus))
}

func (h *StudentHandler) Save(ctx *ginx.Context, req SaveStudentReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, domain.Student{
		ID:       req.ID,
		UserID:   req.UserID,
		Name:     req.Name,
		APILevel: req.APILevel,
		TRLLevel: req.TRLLevel,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *StudentHandler) GetById(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	student, err := h.svc.GetById(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newStudentVO(student),
	}, nil
}

func (h *StudentHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	students, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListStudentResp{
			Total: total,
			List: slice.Map(students, func(_ int, src domain.Student) StudentVO {
				return newStudentVO(src)
			}),
		},
	}, nil
}

func (h *StudentHandler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx, actor.FromSession(sess), req.Id, domain.StudentStatus(req.Status))
	switch {
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidStatusResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
