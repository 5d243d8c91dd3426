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
	"unicode/utf8"

	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/repository"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user"
)

var (
	ErrChallengeNotFound = repository.ErrChallengeNotFound
	ErrInvalidInput      = errors.New("输入不合法")
	ErrPermissionDenied  = errors.New("无权限操作")
)

//go:generate mockgen -source=./challenge.go -package=svcmocks -destination=mocks/challenge.mock.go ChallengeService
type ChallengeService interface {
	// Create 创建挑战，标题至少5个字符，描述至少20个，至少一条要求
	Create(ctx context.Context, c domain.Challenge) (int64, error)
	// Update 只有发布挑战的导师本人能改
	Update(ctx context.Context, c domain.Challenge) error
	Close(ctx context.Context, id, mentorId int64) error
	Archive(ctx context.Context, id, mentorId int64) error
	Detail(ctx context.Context, id int64) (domain.Challenge, error)
	ListActive(ctx context.Context, offset, limit int) ([]domain.Challenge, int64, error)
	ListByMentor(ctx context.Context, mentorId int64) ([]domain.Challenge, error)
}

type challengeService struct {
	repo    repository.ChallengeRepository
	userSvc user.UserService
}

func NewChallengeService(repo repository.ChallengeRepository, userSvc user.UserService) ChallengeService {
	return &challengeService{
		repo:    repo,
		userSvc: userSvc,
	}
}

func (svc *challengeService) Create(ctx context.Context, c domain.Challenge) (int64, error) {
	if !validChallenge(c) {
		return 0, ErrInvalidInput
	}
	mentor, err := svc.userSvc.Profile(ctx, c.MentorID)
	if err != nil {
		return 0, err
	}
	c.MentorName = mentor.Nickname
	c.Status = domain.StatusActive
	return svc.repo.Create(ctx, c)
}

func (svc *challengeService) Update(ctx context.Context, c domain.Challenge) error {
	if !validChallenge(c) {
		return ErrInvalidInput
	}
	err := svc.checkOwner(ctx, c.ID, c.MentorID)
	if err != nil {
		return err
	}
	return svc.repo.Update(ctx, c)
}

func (svc *challengeService) Close(ctx context.Context, id, mentorId int64) error {
	err := svc.checkOwner(ctx, id, mentorId)
	if err != nil {
		return err
	}
	return svc.repo.UpdateStatus(ctx, id, domain.StatusClosed)
}

func (svc *challengeService) Archive(ctx context.Context, id, mentorId int64) error {
	err := svc.checkOwner(ctx, id, mentorId)
	if err != nil {
		return err
	}
	return svc.repo.UpdateStatus(ctx, id, domain.StatusArchived)
}

func (svc *challengeService) Detail(ctx context.Context, id int64) (domain.Challenge, error) {
	return svc.repo.Detail(ctx, id)
}

func (svc *challengeService) ListActive(ctx context.Context, offset, limit int) ([]domain.Challenge, int64, error) {
	cnt, err := svc.repo.CountActive(ctx)
	if err != nil {
		return nil, 0, err
	}
	cs, err := svc.repo.ListActive(ctx, offset, limit)
	return cs, cnt, err
}

func (svc *challengeService) ListByMentor(ctx context.Context, mentorId int64) ([]domain.Challenge, error) {
	return svc.repo.ListByMentor(ctx, mentorId)
}

func (svc *challengeService) checkOwner(ctx context.Context, id, mentorId int64) error {
	c, err := svc.repo.Detail(ctx, id)
	if err != nil {
		return err
	}
	if c.MentorID != mentorId {
		return ErrPermissionDenied
	}
	return nil
}

func validChallenge(c domain.Challenge) bool {
	// 标题和描述按字符数算
	return utf8.RuneCountInString(c.Title) >= 5 &&
		utf8.RuneCountInString(c.Description) >= 20 &&
		len(c.Requirements) >= 1 &&
		c.Difficulty.IsValid()
}
