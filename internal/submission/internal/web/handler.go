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

	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.SubmissionService
}

func NewHandler(svc service.SubmissionService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/submissions")
	g.POST("/leaderboard", ginx.B[HackathonIdReq](h.Leaderboard))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/submissions")
	g.POST("/create", ginx.BS[SaveReq](h.Create))
	g.POST("/detail", ginx.BS[IdReq](h.Detail))
	g.POST("/list", ginx.BS[HackathonIdReq](h.List))
	g.POST("/feedback", ginx.BS[FeedbackReq](h.AttachFeedback))
	g.POST("/winner-certificates", ginx.BS[HackathonIdReq](h.GenerateWinnerCertificates))
}

func (h *Handler) Create(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, req.toDomain(sess.Claims().Uid))
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, err
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	sub, err := h.svc.Detail(ctx, req.Id)
	if errors.Is(err, service.ErrSubmissionNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newSubmission(sub),
	}, nil
}

// List 评阅视角的列表，按聚合分排序，只开放给组织者和评委
func (h *Handler) List(ctx *ginx.Context, req HackathonIdReq, sess session.Session) (ginx.Result, error) {
	if !isReviewer(sess) {
		return permissionDeniedResult, nil
	}
	subs, err := h.svc.ListByHackathon(ctx, req.HackathonId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newSubmissionList(subs),
	}, nil
}

func (h *Handler) AttachFeedback(ctx *ginx.Context, req FeedbackReq, sess session.Session) (ginx.Result, error) {
	sub, err := h.svc.AttachFeedback(ctx, req.SubmissionId, sess.Claims().Uid, domain.Feedback{
		Comments:   req.Comments,
		Scores:     req.Scores,
		TotalScore: req.TotalScore,
	})
	switch {
	case errors.Is(err, service.ErrSubmissionNotFound):
		return notFoundResult, err
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, err
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newSubmission(sub),
	}, nil
}

func (h *Handler) Leaderboard(ctx *ginx.Context, req HackathonIdReq) (ginx.Result, error) {
	entries, err := h.svc.Leaderboard(ctx, req.HackathonId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Leaderboard{Entries: entries},
	}, nil
}

func (h *Handler) GenerateWinnerCertificates(ctx *ginx.Context,
	req HackathonIdReq, sess session.Session) (ginx.Result, error) {
	certs, err := h.svc.GenerateWinnerCertificates(ctx, req.HackathonId, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrHackathonNotFound):
		return systemErrorResult, err
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: WinnerCertificateList{
			Certificates: certs,
			Generated:    len(certs),
		},
	}, nil
}

func isReviewer(sess session.Session) bool {
	role := sess.Claims().Get("role").StringOrDefault("")
	return role == "organizer" || role == "judge" || role == "admin"
}
