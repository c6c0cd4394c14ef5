package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/leanmaker/leanmaker/internal/application"
	"github.com/leanmaker/leanmaker/internal/company"
	"github.com/leanmaker/leanmaker/internal/evaluation"
	"github.com/leanmaker/leanmaker/internal/project"
	"github.com/leanmaker/leanmaker/internal/strike"
	"github.com/leanmaker/leanmaker/internal/student"
	"github.com/leanmaker/leanmaker/internal/workhour"
)

func initGinxServer(sp session.Provider,
	prjHdl *project.Handler,
	appHdl *application.Handler,
	whHdl *workhour.Handler,
	evalHdl *evaluation.Handler,
	strikeHdl *strike.Handler,
	stuHdl *student.Handler,
	compHdl *company.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "leanmaker.mx")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 项目列表与详情对外开放，其余接口要登录
	prjHdl.PublicRoutes(res.Engine)
	res.Use(session.CheckLoginMiddleware())
	prjHdl.PrivateRoutes(res.Engine)
	appHdl.PrivateRoutes(res.Engine)
	whHdl.PrivateRoutes(res.Engine)
	evalHdl.PrivateRoutes(res.Engine)
	strikeHdl.PrivateRoutes(res.Engine)
	stuHdl.PrivateRoutes(res.Engine)
	compHdl.PrivateRoutes(res.Engine)
	return res
}
