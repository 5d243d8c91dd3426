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

	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/service"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.CertificateService
}

func NewHandler(svc service.CertificateService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 任何人都能凭验证码查证书
	server.POST("/certificates/verify", ginx.B[VerifyReq](h.Verify))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/certificates")
	g.POST("/issue", ginx.BS[IssueReq](h.Issue))
	g.POST("/detail", ginx.BS[IdReq](h.Detail))
	g.GET("/mine", ginx.S(h.Mine))
}

func (h *Handler) Issue(ctx *ginx.Context, req IssueReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.Issue(ctx, req.EnrollmentId, sess.Claims().Uid, req.Skills)
	switch {
	case errors.Is(err, enrollment.ErrEnrollmentNotFound):
		return notCertifiableResult, err
	case errors.Is(err, service.ErrNotCertifiable):
		return notCertifiableResult, err
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, err
	case errors.Is(err, service.ErrAlreadyIssued):
		return alreadyIssuedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newCertificate(c),
	}, nil
}

func (h *Handler) Verify(ctx *ginx.Context, req VerifyReq) (ginx.Result, error) {
	c, err := h.svc.Verify(ctx, req.Code)
	if errors.Is(err, service.ErrCertificateNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newCertificate(c),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.Detail(ctx, req.Id)
	if errors.Is(err, service.ErrCertificateNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	// 证书本身可以公开验证，详情只给当事学生和导师
	uid := sess.Claims().Uid
	if c.StudentID != uid && c.MentorID != uid {
		return permissionDeniedResult, nil
	}
	return ginx.Result{
		Data: newCertificate(c),
	}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cs, err := h.svc.ListByStudent(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newCertificateList(cs),
	}, nil
}
