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

	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/repository/cache"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
)

var ErrSubmissionNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./submission.go -package=repomocks -destination=mocks/submission.mock.go SubmissionRepository
type SubmissionRepository interface {
	Create(ctx context.Context, s domain.Submission) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Submission, error)
	ListByHackathon(ctx context.Context, hackathonId int64) ([]domain.Submission, error)
	TopByScore(ctx context.Context, hackathonId int64, limit int) ([]domain.Submission, error)
	AttachFeedback(ctx context.Context, id int64, f domain.Feedback) (domain.Submission, error)
	CachedLeaderboard(ctx context.Context, hackathonId int64) ([]domain.LeaderboardEntry, error)
	CacheLeaderboard(ctx context.Context, hackathonId int64, entries []domain.LeaderboardEntry)
}

type submissionRepository struct {
	dao    dao.SubmissionDAO
	cache  cache.LeaderboardCache
	logger *elog.Component
}

func NewSubmissionRepository(d dao.SubmissionDAO, c cache.LeaderboardCache) SubmissionRepository {
	return &submissionRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *submissionRepository) Create(ctx context.Context, s domain.Submission) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(s))
}

func (r *submissionRepository) FindById(ctx context.Context, id int64) (domain.Submission, error) {
	s, err := r.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Submission{}, ErrSubmissionNotFound
	}
	return r.toDomain(s), err
}

func (r *submissionRepository) ListByHackathon(ctx context.Context, hackathonId int64) ([]domain.Submission, error) {
	subs, err := r.dao.ListByHackathon(ctx, hackathonId)
	if err != nil {
		return nil, err
	}
	return slice.Map(subs, func(idx int, src dao.Submission) domain.Submission {
		return r.toDomain(src)
	}), nil
}

func (r *submissionRepository) TopByScore(ctx context.Context, hackathonId int64, limit int) ([]domain.Submission, error) {
	subs, err := r.dao.TopByScore(ctx, hackathonId, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(subs, func(idx int, src dao.Submission) domain.Submission {
		return r.toDomain(src)
	}), nil
}

func (r *submissionRepository) AttachFeedback(ctx context.Context, id int64, f domain.Feedback) (domain.Submission, error) {
	s, err := r.dao.AttachFeedback(ctx, id, f)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Submission{}, ErrSubmissionNotFound
	}
	if err != nil {
		return domain.Submission{}, err
	}
	// 分数变了，旧榜单作废
	err = r.cache.Del(ctx, s.HackathonId)
	if err != nil {
		r.logger.Error("删除排行榜缓存失败",
			elog.Int64("hackathonId", s.HackathonId),
			elog.FieldErr(err))
	}
	return r.toDomain(s), nil
}

func (r *submissionRepository) CachedLeaderboard(ctx context.Context, hackathonId int64) ([]domain.LeaderboardEntry, error) {
	return r.cache.Get(ctx, hackathonId)
}

func (r *submissionRepository) CacheLeaderboard(ctx context.Context, hackathonId int64, entries []domain.LeaderboardEntry) {
	err := r.cache.Set(ctx, hackathonId, entries)
	if err != nil {
		r.logger.Error("写排行榜缓存失败",
			elog.Int64("hackathonId", hackathonId),
			elog.FieldErr(err))
	}
}

func (r *submissionRepository) toEntity(s domain.Submission) dao.Submission {
	return dao.Submission{
		Id:          s.ID,
		HackathonId: s.HackathonID,
		TeamId:      s.TeamID,
		TeamName:    s.TeamName,
		SubmittedBy: s.SubmittedBy,
		Title:       s.Title,
		Description: s.Description,
		TechStack: sqlx.JsonColumn[[]string]{
			Val: s.TechStack, Valid: len(s.TechStack) > 0,
		},
		RepoUrl:     s.RepoURL,
		DemoUrl:     s.DemoURL,
		ArtifactUrl: s.ArtifactURL,
		Feedbacks: sqlx.JsonColumn[[]domain.Feedback]{
			Val: s.Feedbacks, Valid: len(s.Feedbacks) > 0,
		},
		Status:         s.Status.String(),
		AggregateScore: s.AggregateScore,
	}
}

func (r *submissionRepository) toDomain(s dao.Submission) domain.Submission {
	return domain.Submission{
		ID:             s.Id,
		HackathonID:    s.HackathonId,
		TeamID:         s.TeamId,
		TeamName:       s.TeamName,
		SubmittedBy:    s.SubmittedBy,
		Title:          s.Title,
		Description:    s.Description,
		TechStack:      s.TechStack.Val,
		RepoURL:        s.RepoUrl,
		DemoURL:        s.DemoUrl,
		ArtifactURL:    s.ArtifactUrl,
		Feedbacks:      s.Feedbacks.Val,
		Status:         domain.Status(s.Status),
		AggregateScore: s.AggregateScore,
		Ctime:          time.UnixMilli(s.Ctime),
		Utime:          time.UnixMilli(s.Utime),
	}
}
