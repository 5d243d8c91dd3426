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

	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.EnrollmentService
}

func NewHandler(svc service.EnrollmentService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/enrollments")
	g.POST("/apply", ginx.BS[ApplyReq](h.Apply))
	g.POST("/status", ginx.BS[UpdateStatusReq](h.UpdateStatus))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/pair", ginx.BS[ChallengeIdReq](h.ByPair))
	g.GET("/mine", ginx.S(h.Mine))
	g.POST("/challenge", ginx.BS[ChallengeIdReq](h.ByChallenge))
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Apply(ctx, sess.Claims().Uid, req.ChallengeId,
		req.Essay, req.Motivation, req.Experience)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, err
	case errors.Is(err, service.ErrAlreadyEnrolled):
		return alreadyEnrolledResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq, sess session.Session) (ginx.Result, error) {
	e, err := h.svc.UpdateStatus(ctx, req.Id,
		domain.Status(req.Status), sess.Claims().Uid)
	var ite *service.InvalidTransitionError
	switch {
	case errors.As(err, &ite):
		return invalidTransitionResult, err
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, err
	case errors.Is(err, service.ErrEnrollmentNotFound):
		return notFoundResult, err
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEnrollment(e),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	e, err := h.svc.Detail(ctx, req.Id)
	if errors.Is(err, service.ErrEnrollmentNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEnrollment(e),
	}, nil
}

func (h *Handler) ByPair(ctx *ginx.Context, req ChallengeIdReq, sess session.Session) (ginx.Result, error) {
	e, err := h.svc.ByPair(ctx, sess.Claims().Uid, req.ChallengeId)
	if errors.Is(err, service.ErrEnrollmentNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEnrollment(e),
	}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	es, err := h.svc.ListByStudent(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEnrollmentList(es),
	}, nil
}

func (h *Handler) ByChallenge(ctx *ginx.Context, req ChallengeIdReq, sess session.Session) (ginx.Result, error) {
	es, err := h.svc.ListByChallenge(ctx, req.ChallengeId, sess.Claims().Uid)
	if errors.Is(err, service.ErrPermissionDenied) {
		return permissionDeniedResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEnrollmentList(es),
	}, nil
}
