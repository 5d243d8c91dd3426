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

	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.PortfolioService
}

func NewHandler(svc service.PortfolioService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/portfolios")
	g.GET("/mine", ginx.S(h.Mine))
	g.POST("/detail", ginx.BS[StudentIdReq](h.Detail))
	g.POST("/visibility", ginx.S(h.ToggleVisibility))
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	p, err := h.svc.Get(ctx, uid, uid)
	if errors.Is(err, service.ErrPortfolioNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newPortfolio(p),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req StudentIdReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Get(ctx, req.StudentId, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrPortfolioNotFound):
		return notFoundResult, err
	case errors.Is(err, service.ErrPortfolioPrivate):
		return privateResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newPortfolio(p),
	}, nil
}

func (h *Handler) ToggleVisibility(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	public, err := h.svc.ToggleVisibility(ctx, sess.Claims().Uid)
	if errors.Is(err, service.ErrPortfolioNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: public,
	}, nil
}
