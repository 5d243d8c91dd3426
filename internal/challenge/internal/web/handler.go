// Copyright 2024 BIRU-sketch
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.ChallengeService
}

func NewHandler(svc service.ChallengeService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/challenges")
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/challenges")
	g.POST("/create", ginx.BS[SaveReq](h.Create))
	g.POST("/update", ginx.BS[SaveReq](h.Update))
	g.POST("/close", ginx.BS[IdReq](h.Close))
	g.POST("/archive", ginx.BS[IdReq](h.Archive))
	g.GET("/mine", ginx.S(h.Mine))
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	cs, total, err := h.svc.ListActive(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newChallengeList(cs, total),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	c, err := h.svc.Detail(ctx, req.Id)
	if errors.Is(err, service.ErrChallengeNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newChallenge(c),
	}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	if !isMentor(sess) {
		return permissionDeniedResult, nil
	}
	id, err := h.svc.Create(ctx, req.toDomain(sess.Claims().Uid))
	if errors.Is(err, service.ErrInvalidInput) {
		return invalidInputResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Update(ctx, req.toDomain(sess.Claims().Uid))
	return h.mutationResult(err)
}

func (h *Handler) Close(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Close(ctx, req.Id, sess.Claims().Uid)
	return h.mutationResult(err)
}

func (h *Handler) Archive(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Archive(ctx, req.Id, sess.Claims().Uid)
	return h.mutationResult(err)
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cs, err := h.svc.ListByMentor(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newChallengeList(cs, int64(len(cs))),
	}, nil
}

func (h *Handler) mutationResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, err
	case errors.Is(err, service.ErrChallengeNotFound):
		return notFoundResult, err
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, err
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{Msg: "OK"}, nil
	}
}

func isMentor(sess session.Session) bool {
	role := sess.Claims().Get("role").StringOrDefault("")
	return role == "mentor" || role == "admin"
}
