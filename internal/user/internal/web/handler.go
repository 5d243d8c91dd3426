package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/BIRU-sketch/Skill-Sphere/internal/pkg/middleware"
	"github.com/BIRU-sketch/Skill-Sphere/internal/pkg/ratelimit"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc     service.UserService
	limiter ratelimit.Limiter
	logger  *elog.Component
}

func NewHandler(svc service.UserService, limiter ratelimit.Limiter) *Handler {
	return &Handler{
		svc:     svc,
		limiter: limiter,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	// 按邮箱限流，挡住对单个账号的暴力尝试
	rl := middleware.NewRateLimitBuilder(h.limiter, emailIdentifier).Build()
	users.POST("/register", rl, ginx.B[RegisterReq](h.Register))
	users.POST("/login", rl, ginx.B[LoginReq](h.Login))
}

// emailIdentifier 从请求体里挖出邮箱做限流 key，挖不出来就放行，
// 畸形请求后面的参数校验自然会拒绝
func emailIdentifier(ctx *gin.Context) string {
	body, err := ctx.GetRawData()
	if err != nil {
		return ""
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))
	var req struct {
		Email string `json:"email"`
	}
	if json.Unmarshal(body, &req) != nil {
		return ""
	}
	return strings.ToLower(req.Email)
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	if req.Password != req.ConfirmPassword {
		return invalidInputResult, nil
	}
	u, err := h.svc.Register(ctx, domain.User{
		Email:    req.Email,
		Nickname: req.Nickname,
		Role:     domain.Role(req.Role),
	}, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, err
	case errors.Is(err, service.ErrUserDuplicate):
		return duplicateEmailResult, err
	case err != nil:
		return systemErrorResult, err
	}
	err = h.newSession(ctx, u)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.svc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidEmailOrPassword) {
		return invalidEmailOrPasswordResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	// 登录成功，清掉这个邮箱的失败计数
	if e := h.limiter.Clear(ctx, req.Email); e != nil {
		h.logger.Error("清理登录限流计数失败", elog.FieldErr(e))
	}
	err = h.newSession(ctx, u)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.svc.UpdateNonSensitiveInfo(ctx, domain.User{
		ID:        uid,
		Nickname:  req.Nickname,
		Bio:       req.Bio,
		Avatar:    req.Avatar,
		Skills:    req.Skills,
		Expertise: req.Expertise,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) newSession(ctx *ginx.Context, u domain.User) error {
	_, err := session.NewSessionBuilder(ctx, u.ID).
		// 角色放进 jwt data，各个模块的权限校验都靠它
		SetJwtData(map[string]string{
			"role": u.Role.String(),
		}).Build()
	return err
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:        u.ID,
		SN:        u.SN,
		Email:     u.Email,
		Nickname:  u.Nickname,
		Role:      u.Role.String(),
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		Skills:    u.Skills,
		Expertise: u.Expertise,
	}
}
