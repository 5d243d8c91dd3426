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

	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

var (
	ErrHackathonNotFound = dao.ErrDataNotFound
	ErrStatusConflict    = dao.ErrStatusConflict
)

//go:generate mockgen -source=./hackathon.go -package=repomocks -destination=mocks/hackathon.mock.go HackathonRepository
type HackathonRepository interface {
	Create(ctx context.Context, h domain.Hackathon) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Hackathon, error)
	ListByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Hackathon, error)
	CountByStatus(ctx context.Context, status domain.Status) (int64, error)
	ListByOrganizer(ctx context.Context, organizerId int64) ([]domain.Hackathon, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.Status) error
	AppendAnnouncement(ctx context.Context, id int64, a domain.Announcement) error
	UpdateJudges(ctx context.Context, id int64, judges []int64) error
	CompleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type hackathonRepository struct {
	dao dao.HackathonDAO
}

func NewHackathonRepository(d dao.HackathonDAO) HackathonRepository {
	return &hackathonRepository{
		dao: d,
	}
}

func (r *hackathonRepository) Create(ctx context.Context, h domain.Hackathon) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(h))
}

func (r *hackathonRepository) FindById(ctx context.Context, id int64) (domain.Hackathon, error) {
	h, err := r.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Hackathon{}, ErrHackathonNotFound
	}
	return r.toDomain(h), err
}

func (r *hackathonRepository) ListByStatus(ctx context.Context,
	status domain.Status, offset, limit int) ([]domain.Hackathon, error) {
	hs, err := r.dao.ListByStatus(ctx, status.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(hs, func(idx int, src dao.Hackathon) domain.Hackathon {
		return r.toDomain(src)
	}), nil
}

func (r *hackathonRepository) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	return r.dao.CountByStatus(ctx, status.String())
}

func (r *hackathonRepository) ListByOrganizer(ctx context.Context, organizerId int64) ([]domain.Hackathon, error) {
	hs, err := r.dao.ListByOrganizer(ctx, organizerId)
	if err != nil {
		return nil, err
	}
	return slice.Map(hs, func(idx int, src dao.Hackathon) domain.Hackathon {
		return r.toDomain(src)
	}), nil
}

func (r *hackathonRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, from.String(), to.String())
}

func (r *hackathonRepository) AppendAnnouncement(ctx context.Context, id int64, a domain.Announcement) error {
	err := r.dao.AppendAnnouncement(ctx, id, a)
	if errors.Is(err, dao.ErrDataNotFound) {
		return ErrHackathonNotFound
	}
	return err
}

func (r *hackathonRepository) UpdateJudges(ctx context.Context, id int64, judges []int64) error {
	err := r.dao.UpdateJudges(ctx, id, judges)
	if errors.Is(err, dao.ErrDataNotFound) {
		return ErrHackathonNotFound
	}
	return err
}

func (r *hackathonRepository) CompleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return r.dao.CompleteExpired(ctx, now.UnixMilli())
}

func (r *hackathonRepository) toEntity(h domain.Hackathon) dao.Hackathon {
	return dao.Hackathon{
		Id:            h.ID,
		Title:         h.Title,
		Description:   h.Description,
		Rules:         h.Rules,
		Category:      h.Category.String(),
		OrganizerId:   h.OrganizerID,
		OrganizerName: h.OrganizerName,
		Judges: sqlx.JsonColumn[[]int64]{
			Val: h.Judges, Valid: len(h.Judges) > 0,
		},
		Criteria: sqlx.JsonColumn[[]domain.Criterion]{
			Val: h.Criteria, Valid: len(h.Criteria) > 0,
		},
		Announcements: sqlx.JsonColumn[[]domain.Announcement]{
			Val: h.Announcements, Valid: len(h.Announcements) > 0,
		},
		StartAt:              h.StartAt.UnixMilli(),
		EndAt:                h.EndAt.UnixMilli(),
		RegistrationDeadline: h.RegistrationDeadline.UnixMilli(),
		Status:               h.Status.String(),
	}
}

func (r *hackathonRepository) toDomain(h dao.Hackathon) domain.Hackathon {
	return domain.Hackathon{
		ID:                   h.Id,
		Title:                h.Title,
		Description:          h.Description,
		Rules:                h.Rules,
		Category:             domain.Category(h.Category),
		OrganizerID:          h.OrganizerId,
		OrganizerName:        h.OrganizerName,
		Judges:               h.Judges.Val,
		Criteria:             h.Criteria.Val,
		Announcements:        h.Announcements.Val,
		StartAt:              time.UnixMilli(h.StartAt),
		EndAt:                time.UnixMilli(h.EndAt),
		RegistrationDeadline: time.UnixMilli(h.RegistrationDeadline),
		Status:               domain.Status(h.Status),
		Ctime:                time.UnixMilli(h.Ctime),
		Utime:                time.UnixMilli(h.Utime),
	}
}
