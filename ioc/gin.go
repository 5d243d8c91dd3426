package ioc

import (
	"net/http"
	"strings"

	"github.com/BIRU-sketch/Skill-Sphere/internal/artifact"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment"
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon"
	"github.com/BIRU-sketch/Skill-Sphere/internal/pkg/middleware"
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	userModule *user.Module,
	challengeModule *challenge.Module,
	enrollmentModule *enrollment.Module,
	certificateModule *certificate.Module,
	portfolioModule *portfolio.Module,
	hackathonModule *hackathon.Module,
	submissionModule *submission.Module,
	artifactModule *artifact.Module,
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
			return strings.Contains(origin, "biru.dev")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	handlers := []ginx.Handler{
		userModule.Hdl,
		challengeModule.Hdl,
		enrollmentModule.Hdl,
		certificateModule.Hdl,
		portfolioModule.Hdl,
		hackathonModule.Hdl,
		submissionModule.Hdl,
		artifactModule.Hdl,
	}
	for _, hdl := range handlers {
		hdl.PublicRoutes(res.Engine)
	}
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	for _, hdl := range handlers {
		hdl.PrivateRoutes(res.Engine)
	}
	return res
}
