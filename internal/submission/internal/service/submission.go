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
	"fmt"
	"time"

	"github.com/BIRU-sketch/Skill-Sphere/internal/artifact"
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon"
	"github.com/BIRU-sketch/Skill-Sphere/internal/pkg/pdf"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/repository"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// winnerCount 获奖名额上限，不足时按实际提交数发
const winnerCount = 10

var (
	ErrSubmissionNotFound = repository.ErrSubmissionNotFound
	ErrHackathonNotFound  = hackathon.ErrHackathonNotFound
	ErrInvalidInput       = errors.New("输入不合法")
	ErrPermissionDenied   = errors.New("无权限操作")
)

//go:generate mockgen -source=./submission.go -package=svcmocks -destination=mocks/submission.mock.go SubmissionService
type SubmissionService interface {
	// Create 队伍成员提交作品，直接进入 submitted 状态
	Create(ctx context.Context, s domain.Submission) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Submission, error)
	ListByHackathon(ctx context.Context, hackathonId int64) ([]domain.Submission, error)
	// AttachFeedback 评委打分，同步重算聚合分
	AttachFeedback(ctx context.Context, submissionId, judgeId int64, f domain.Feedback) (domain.Submission, error)
	Leaderboard(ctx context.Context, hackathonId int64) ([]domain.LeaderboardEntry, error)
	// GenerateWinnerCertificates 按聚合分取前十名，逐个出证书，只有组织者能发
	GenerateWinnerCertificates(ctx context.Context, hackathonId, operatorId int64) ([]domain.WinnerCertificate, error)
}

type submissionService struct {
	repo         repository.SubmissionRepository
	hackathonSvc hackathon.HackathonService
	converter    pdf.Converter
	storage      artifact.Storage
	logger       *elog.Component
}

func NewSubmissionService(repo repository.SubmissionRepository,
	hackathonSvc hackathon.HackathonService,
	converter pdf.Converter,
	storage artifact.Storage) SubmissionService {
	return &submissionService{
		repo:         repo,
		hackathonSvc: hackathonSvc,
		converter:    converter,
		storage:      storage,
		logger:       elog.DefaultLogger,
	}
}

func (s *submissionService) Create(ctx context.Context, sub domain.Submission) (int64, error) {
	if !sub.Valid() {
		return 0, ErrInvalidInput
	}
	team, err := s.hackathonSvc.TeamDetail(ctx, sub.TeamID)
	if errors.Is(err, hackathon.ErrTeamNotFound) {
		return 0, fmt.Errorf("%w: 队伍 %d 不存在", ErrInvalidInput, sub.TeamID)
	}
	if err != nil {
		return 0, err
	}
	if team.HackathonID != sub.HackathonID {
		return 0, fmt.Errorf("%w: 队伍不属于这个黑客松", ErrInvalidInput)
	}
	if !team.HasMember(sub.SubmittedBy) {
		return 0, ErrPermissionDenied
	}
	sub.TeamName = team.Name
	sub.Status = domain.StatusSubmitted
	return s.repo.Create(ctx, sub)
}

func (s *submissionService) Detail(ctx context.Context, id int64) (domain.Submission, error) {
	return s.repo.FindById(ctx, id)
}

func (s *submissionService) ListByHackathon(ctx context.Context, hackathonId int64) ([]domain.Submission, error) {
	return s.repo.ListByHackathon(ctx, hackathonId)
}

func (s *submissionService) AttachFeedback(ctx context.Context,
	submissionId, judgeId int64, f domain.Feedback) (domain.Submission, error) {
	sub, err := s.repo.FindById(ctx, submissionId)
	if err != nil {
		return domain.Submission{}, err
	}
	h, err := s.hackathonSvc.Detail(ctx, sub.HackathonID)
	if err != nil {
		return domain.Submission{}, err
	}
	if !slice.Contains(h.Judges, judgeId) {
		return domain.Submission{}, ErrPermissionDenied
	}
	for key := range f.Scores {
		if !slice.Contains(hackathon.CriterionKeys, key) {
			return domain.Submission{}, fmt.Errorf("%w: 未知评分维度 %s", ErrInvalidInput, key)
		}
	}
	f.JudgeID = judgeId
	f.CreatedAt = time.Now().UnixMilli()
	return s.repo.AttachFeedback(ctx, submissionId, f)
}

func (s *submissionService) Leaderboard(ctx context.Context, hackathonId int64) ([]domain.LeaderboardEntry, error) {
	entries, err := s.repo.CachedLeaderboard(ctx, hackathonId)
	if err == nil && len(entries) > 0 {
		return entries, nil
	}
	subs, err := s.repo.ListByHackathon(ctx, hackathonId)
	if err != nil {
		return nil, err
	}
	entries = domain.Rank(subs)
	if len(entries) > 0 {
		s.repo.CacheLeaderboard(ctx, hackathonId, entries)
	}
	return entries, nil
}

func (s *submissionService) GenerateWinnerCertificates(ctx context.Context,
	hackathonId, operatorId int64) ([]domain.WinnerCertificate, error) {
	h, err := s.hackathonSvc.Detail(ctx, hackathonId)
	if err != nil {
		return nil, err
	}
	if h.OrganizerID != operatorId {
		return nil, ErrPermissionDenied
	}
	subs, err := s.repo.TopByScore(ctx, hackathonId, winnerCount)
	if err != nil {
		return nil, err
	}
	// 渲染和上传都是慢操作，十张证书并发出
	certs := make([]domain.WinnerCertificate, len(subs))
	var eg errgroup.Group
	for i, sub := range subs {
		rank := i + 1
		eg.Go(func() error {
			url, err := s.renderAndUpload(ctx, h, sub, rank)
			if err != nil {
				return fmt.Errorf("生成第 %d 名证书失败: %w", rank, err)
			}
			certs[i] = domain.WinnerCertificate{
				SubmissionID: sub.ID,
				TeamID:       sub.TeamID,
				ArtifactURL:  url,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return certs, nil
}

func (s *submissionService) renderAndUpload(ctx context.Context,
	h hackathon.Hackathon, sub domain.Submission, rank int) (string, error) {
	html, err := domain.RenderWinnerHTML(h.Title, sub.TeamName, rank, sub.AggregateScore)
	if err != nil {
		return "", err
	}
	data, err := s.converter.ConvertHTMLToPDF(ctx, html, pdf.WithLandscape())
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("hackathons/%d/winners/rank-%d.pdf", h.ID, rank)
	return s.storage.Upload(ctx, key, "application/pdf", data)
}
