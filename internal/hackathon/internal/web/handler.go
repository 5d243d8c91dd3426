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

	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.HackathonService
}

func NewHandler(svc service.HackathonService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/hackathons")
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/hackathons")
	g.POST("/create", ginx.BS[SaveReq](h.Create))
	g.POST("/publish", ginx.BS[IdReq](h.Publish))
	g.POST("/announcement", ginx.BS[AnnounceReq](h.Announce))
	g.POST("/judges", ginx.BS[JudgesReq](h.SetJudges))
	g.GET("/mine", ginx.S(h.Mine))

	t := server.Group("/hackathons/teams")
	t.POST("/create", ginx.BS[CreateTeamReq](h.CreateTeam))
	t.POST("/join", ginx.BS[IdReq](h.JoinTeam))
	t.POST("/list", ginx.B[HackathonIdReq](h.ListTeams))
	t.POST("/detail", ginx.B[IdReq](h.TeamDetail))
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	hs, total, err := h.svc.ListPublished(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newHackathonList(hs, total),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	hk, err := h.svc.Detail(ctx, req.Id)
	if errors.Is(err, service.ErrHackathonNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newHackathon(hk),
	}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	if !isOrganizer(sess) {
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

func (h *Handler) Publish(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Publish(ctx, req.Id, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrHackathonNotFound):
		return notFoundResult, err
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, err
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, err
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{Msg: "OK"}, nil
	}
}

func (h *Handler) Announce(ctx *ginx.Context, req AnnounceReq, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.Announce(ctx, req.HackathonId, sess.Claims().Uid, domain.Announcement{
		Title:    req.Title,
		Message:  req.Message,
		Audience: req.Audience,
	})
	switch {
	case errors.Is(err, service.ErrHackathonNotFound):
		return notFoundResult, err
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, err
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: a,
	}, nil
}

func (h *Handler) SetJudges(ctx *ginx.Context, req JudgesReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.SetJudges(ctx, req.HackathonId, sess.Claims().Uid, req.Judges)
	switch {
	case errors.Is(err, service.ErrHackathonNotFound):
		return notFoundResult, err
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, err
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{Msg: "OK"}, nil
	}
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	hs, err := h.svc.ListByOrganizer(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newHackathonList(hs, int64(len(hs))),
	}, nil
}

func (h *Handler) CreateTeam(ctx *ginx.Context, req CreateTeamReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.CreateTeam(ctx, req.HackathonId, sess.Claims().Uid, req.Name)
	switch {
	case errors.Is(err, service.ErrHackathonNotFound):
		return notFoundResult, err
	case errors.Is(err, service.ErrRegistrationClosed):
		return registrationOverResult, err
	case errors.Is(err, service.ErrDuplicateTeamName):
		return duplicateTeamNameResult, err
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) JoinTeam(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.JoinTeam(ctx, req.Id, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrTeamNotFound):
		return teamNotFoundResult, err
	case errors.Is(err, service.ErrRegistrationClosed):
		return registrationOverResult, err
	case errors.Is(err, service.ErrAlreadyMember):
		return alreadyMemberResult, err
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{Msg: "OK"}, nil
	}
}

func (h *Handler) ListTeams(ctx *ginx.Context, req HackathonIdReq) (ginx.Result, error) {
	ts, err := h.svc.ListTeams(ctx, req.HackathonId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newTeamList(ts),
	}, nil
}

func (h *Handler) TeamDetail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	t, err := h.svc.TeamDetail(ctx, req.Id)
	if errors.Is(err, service.ErrTeamNotFound) {
		return teamNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newTeam(t),
	}, nil
}

func isOrganizer(sess session.Session) bool {
	role := sess.Claims().Get("role").StringOrDefault("")
	return role == "organizer" || role == "admin"
}
