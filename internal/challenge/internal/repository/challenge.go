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

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/repository/cache"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
)

var ErrChallengeNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./challenge.go -package=repomocks -destination=mocks/challenge.mock.go ChallengeRepository
type ChallengeRepository interface {
	Create(ctx context.Context, c domain.Challenge) (int64, error)
	Update(ctx context.Context, c domain.Challenge) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Detail(ctx context.Context, id int64) (domain.Challenge, error)
	ListActive(ctx context.Context, offset, limit int) ([]domain.Challenge, error)
	CountActive(ctx context.Context) (int64, error)
	ListByMentor(ctx context.Context, mentorId int64) ([]domain.Challenge, error)
}

type CachedChallengeRepository struct {
	dao    dao.ChallengeDAO
	cache  cache.ChallengeCache
	logger *elog.Component
}

func NewCachedChallengeRepository(d dao.ChallengeDAO, c cache.ChallengeCache) ChallengeRepository {
	return &CachedChallengeRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedChallengeRepository) Create(ctx context.Context, c domain.Challenge) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(c))
}

func (r *CachedChallengeRepository) Update(ctx context.Context, c domain.Challenge) error {
	err := r.dao.Update(ctx, r.toEntity(c))
	if err != nil {
		return err
	}
	return r.cache.DelDetail(ctx, c.ID)
}

func (r *CachedChallengeRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	err := r.dao.UpdateStatus(ctx, id, status.String())
	if err != nil {
		return err
	}
	return r.cache.DelDetail(ctx, id)
}

func (r *CachedChallengeRepository) Detail(ctx context.Context, id int64) (domain.Challenge, error) {
	res, err := r.cache.GetDetail(ctx, id)
	if err == nil && res.ID > 0 {
		return res, nil
	}
	c, err := r.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Challenge{}, ErrChallengeNotFound
	}
	if err != nil {
		return domain.Challenge{}, err
	}
	res = r.toDomain(c)
	err = r.cache.SetDetail(ctx, res)
	if err != nil {
		r.logger.Error("缓存挑战详情失败", elog.FieldErr(err), elog.Int64("id", id))
	}
	return res, nil
}

func (r *CachedChallengeRepository) ListActive(ctx context.Context, offset, limit int) ([]domain.Challenge, error) {
	cs, err := r.dao.ListActive(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Challenge) domain.Challenge {
		return r.toDomain(src)
	}), nil
}

func (r *CachedChallengeRepository) CountActive(ctx context.Context) (int64, error) {
	return r.dao.CountActive(ctx)
}

func (r *CachedChallengeRepository) ListByMentor(ctx context.Context, mentorId int64) ([]domain.Challenge, error) {
	cs, err := r.dao.ListByMentor(ctx, mentorId)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Challenge) domain.Challenge {
		return r.toDomain(src)
	}), nil
}

func (r *CachedChallengeRepository) toEntity(c domain.Challenge) dao.Challenge {
	var deadline int64
	if !c.Deadline.IsZero() {
		deadline = c.Deadline.UnixMilli()
	}
	return dao.Challenge{
		Id:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Difficulty:  c.Difficulty.String(),
		Requirements: sqlx.JsonColumn[[]string]{
			Val: c.Requirements, Valid: len(c.Requirements) > 0,
		},
		LearningOutcomes: sqlx.JsonColumn[[]string]{
			Val: c.LearningOutcomes, Valid: len(c.LearningOutcomes) > 0,
		},
		Resources: sqlx.JsonColumn[[]domain.Resource]{
			Val: c.Resources, Valid: len(c.Resources) > 0,
		},
		MaxParticipants: c.MaxParticipants,
		Deadline:        deadline,
		Status:          c.Status.String(),
		MentorId:        c.MentorID,
		MentorName:      c.MentorName,
	}
}

func (r *CachedChallengeRepository) toDomain(c dao.Challenge) domain.Challenge {
	var deadline time.Time
	if c.Deadline > 0 {
		deadline = time.UnixMilli(c.Deadline)
	}
	return domain.Challenge{
		ID:               c.Id,
		Title:            c.Title,
		Description:      c.Description,
		Category:         c.Category,
		Difficulty:       domain.Difficulty(c.Difficulty),
		Requirements:     c.Requirements.Val,
		LearningOutcomes: c.LearningOutcomes.Val,
		Resources:        c.Resources.Val,
		MaxParticipants:  c.MaxParticipants,
		Deadline:         deadline,
		Status:           domain.Status(c.Status),
		MentorID:         c.MentorId,
		MentorName:       c.MentorName,
		Ctime:            time.UnixMilli(c.Ctime),
		Utime:            time.UnixMilli(c.Utime),
	}
}
