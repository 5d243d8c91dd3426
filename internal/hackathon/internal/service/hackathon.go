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

package service

import (
	"context"
	"errors"
	"time"

	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/repository"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrHackathonNotFound  = repository.ErrHackathonNotFound
	ErrTeamNotFound       = repository.ErrTeamNotFound
	ErrDuplicateTeamName  = repository.ErrDuplicateTeamName
	ErrAlreadyMember      = repository.ErrAlreadyMember
	ErrInvalidInput       = errors.New("输入不合法")
	ErrPermissionDenied   = errors.New("无权限操作")
	ErrRegistrationClosed = errors.New("报名已经截止")
)

var announcementAudiences = []string{"all", "participants", "organizers"}

//go:generate mockgen -source=./hackathon.go -package=svcmocks -destination=mocks/hackathon.mock.go HackathonService
type HackathonService interface {
	// Create 创建黑客松，初始为 draft，只有发布后对外可见
	Create(ctx context.Context, h domain.Hackathon) (int64, error)
	// Publish draft -> published，只有组织者本人能发
	Publish(ctx context.Context, id, operatorId int64) error
	Detail(ctx context.Context, id int64) (domain.Hackathon, error)
	ListPublished(ctx context.Context, offset, limit int) ([]domain.Hackathon, int64, error)
	ListByOrganizer(ctx context.Context, organizerId int64) ([]domain.Hackathon, error)
	Announce(ctx context.Context, id, operatorId int64, a domain.Announcement) (domain.Announcement, error)
	SetJudges(ctx context.Context, id, operatorId int64, judges []int64) error
	// CompleteExpired 定时任务入口，把已结束的 published 收尾
	CompleteExpired(ctx context.Context) (int64, error)

	// CreateTeam 报名期内创建队伍，创建者就是队长
	CreateTeam(ctx context.Context, hackathonId, leaderId int64, name string) (int64, error)
	JoinTeam(ctx context.Context, teamId, uid int64) error
	ListTeams(ctx context.Context, hackathonId int64) ([]domain.Team, error)
	TeamDetail(ctx context.Context, id int64) (domain.Team, error)
}

type hackathonService struct {
	repo     repository.HackathonRepository
	teamRepo repository.TeamRepository
	userSvc  user.UserService
	logger   *elog.Component
}

func NewHackathonService(repo repository.HackathonRepository,
	teamRepo repository.TeamRepository,
	userSvc user.UserService) HackathonService {
	return &hackathonService{
		repo:     repo,
		teamRepo: teamRepo,
		userSvc:  userSvc,
		logger:   elog.DefaultLogger,
	}
}

func (svc *hackathonService) Create(ctx context.Context, h domain.Hackathon) (int64, error) {
	if !h.Valid() {
		return 0, ErrInvalidInput
	}
	organizer, err := svc.userSvc.Profile(ctx, h.OrganizerID)
	if err != nil {
		return 0, err
	}
	h.OrganizerName = organizer.Nickname
	h.Status = domain.StatusDraft
	// 公告和评委发布之后再补
	h.Announcements = nil
	return svc.repo.Create(ctx, h)
}

func (svc *hackathonService) Publish(ctx context.Context, id, operatorId int64) error {
	h, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if h.OrganizerID != operatorId {
		return ErrPermissionDenied
	}
	err = svc.repo.UpdateStatus(ctx, id, domain.StatusDraft, domain.StatusPublished)
	if errors.Is(err, repository.ErrStatusConflict) {
		return ErrInvalidInput
	}
	return err
}

func (svc *hackathonService) Detail(ctx context.Context, id int64) (domain.Hackathon, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *hackathonService) ListPublished(ctx context.Context, offset, limit int) ([]domain.Hackathon, int64, error) {
	hs, err := svc.repo.ListByStatus(ctx, domain.StatusPublished, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := svc.repo.CountByStatus(ctx, domain.StatusPublished)
	return hs, total, err
}

func (svc *hackathonService) ListByOrganizer(ctx context.Context, organizerId int64) ([]domain.Hackathon, error) {
	return svc.repo.ListByOrganizer(ctx, organizerId)
}

func (svc *hackathonService) Announce(ctx context.Context,
	id, operatorId int64, a domain.Announcement) (domain.Announcement, error) {
	if a.Title == "" || a.Message == "" {
		return domain.Announcement{}, ErrInvalidInput
	}
	if a.Audience == "" {
		a.Audience = "all"
	}
	if !slice.Contains(announcementAudiences, a.Audience) {
		return domain.Announcement{}, ErrInvalidInput
	}
	h, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return domain.Announcement{}, err
	}
	if h.OrganizerID != operatorId {
		return domain.Announcement{}, ErrPermissionDenied
	}
	a.CreatedAt = time.Now().UnixMilli()
	err = svc.repo.AppendAnnouncement(ctx, id, a)
	return a, err
}

func (svc *hackathonService) SetJudges(ctx context.Context, id, operatorId int64, judges []int64) error {
	h, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if h.OrganizerID != operatorId {
		return ErrPermissionDenied
	}
	return svc.repo.UpdateJudges(ctx, id, judges)
}

func (svc *hackathonService) CompleteExpired(ctx context.Context) (int64, error) {
	return svc.repo.CompleteExpired(ctx, time.Now())
}

func (svc *hackathonService) CreateTeam(ctx context.Context,
	hackathonId, leaderId int64, name string) (int64, error) {
	if len(name) < 2 {
		return 0, ErrInvalidInput
	}
	h, err := svc.repo.FindById(ctx, hackathonId)
	if err != nil {
		return 0, err
	}
	if !h.RegistrationOpen(time.Now()) {
		return 0, ErrRegistrationClosed
	}
	return svc.teamRepo.Create(ctx, domain.Team{
		Name:        name,
		HackathonID: hackathonId,
		LeaderID:    leaderId,
		Members:     []int64{leaderId},
	})
}

func (svc *hackathonService) JoinTeam(ctx context.Context, teamId, uid int64) error {
	t, err := svc.teamRepo.FindById(ctx, teamId)
	if err != nil {
		return err
	}
	h, err := svc.repo.FindById(ctx, t.HackathonID)
	if err != nil {
		return err
	}
	if !h.RegistrationOpen(time.Now()) {
		return ErrRegistrationClosed
	}
	return svc.teamRepo.AddMember(ctx, teamId, uid)
}

func (svc *hackathonService) ListTeams(ctx context.Context, hackathonId int64) ([]domain.Team, error) {
	return svc.teamRepo.ListByHackathon(ctx, hackathonId)
}

func (svc *hackathonService) TeamDetail(ctx context.Context, id int64) (domain.Team, error) {
	return svc.teamRepo.FindById(ctx, id)
}
