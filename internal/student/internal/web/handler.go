package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/leanmaker/leanmaker/internal/student/internal/domain"
	"github.com/leanmaker/leanmaker/internal/student/internal/service"
)

// Handler 学生端查看自己的档案
type Handler struct {
	svc service.StudentService
}

func NewHandler(svc service.StudentService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/students")
	g.POST("/profile", ginx.S(h.Profile))
	g.POST("/detail", ginx.B[IdReq](h.GetById))
}

// Profile 返回当前登录学生的档案
func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	student, err := h.svc.GetById(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newStudentVO(student),
	}, nil
}

func (h *Handler) GetById(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	student, err := h.svc.GetById(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newStudentVO(student),
	}, nil
}

func newStudentVO(s domain.Student) StudentVO {
	return StudentVO{
		ID:                s.ID,
		Name:              s.Name,
		APILevel:          s.APILevel,
		TRLLevel:          s.TRLLevel,
		Strikes:           s.Strikes,
		GPA:               s.GPA,
		CompletedProjects: s.CompletedProjects,
		TotalHours:        s.TotalHours,
		Status:            s.Status.String(),
		Ctime:             s.Ctime,
		Utime:             s.Utime,
	}
}
