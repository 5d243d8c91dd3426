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
	ErrTeamNotFound      = dao.ErrDataNotFound
	ErrDuplicateTeamName = dao.ErrDuplicateTeamName
	ErrAlreadyMember     = dao.ErrAlreadyMember
)

//go:generate mockgen -source=./team.go -package=repomocks -destination=mocks/team.mock.go TeamRepository
type TeamRepository interface {
	Create(ctx context.Context, t domain.Team) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Team, error)
	ListByHackathon(ctx context.Context, hackathonId int64) ([]domain.Team, error)
	AddMember(ctx context.Context, id, uid int64) error
}

type teamRepository struct {
	dao dao.TeamDAO
}

func NewTeamRepository(d dao.TeamDAO) TeamRepository {
	return &teamRepository{
		dao: d,
	}
}

func (r *teamRepository) Create(ctx context.Context, t domain.Team) (int64, error) {
	return r.dao.Insert(ctx, dao.Team{
		Name:        t.Name,
		HackathonId: t.HackathonID,
		LeaderId:    t.LeaderID,
		Members: sqlx.JsonColumn[[]int64]{
			Val: t.Members, Valid: len(t.Members) > 0,
		},
	})
}

func (r *teamRepository) FindById(ctx context.Context, id int64) (domain.Team, error) {
	t, err := r.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Team{}, ErrTeamNotFound
	}
	return r.toDomain(t), err
}

func (r *teamRepository) ListByHackathon(ctx context.Context, hackathonId int64) ([]domain.Team, error) {
	ts, err := r.dao.ListByHackathon(ctx, hackathonId)
	if err != nil {
		return nil, err
	}
	return slice.Map(ts, func(idx int, src dao.Team) domain.Team {
		return r.toDomain(src)
	}), nil
}

func (r *teamRepository) AddMember(ctx context.Context, id, uid int64) error {
	err := r.dao.AddMember(ctx, id, uid)
	if errors.Is(err, dao.ErrDataNotFound) {
		return ErrTeamNotFound
	}
	return err
}

func (r *teamRepository) toDomain(t dao.Team) domain.Team {
	return domain.Team{
		ID:          t.Id,
		Name:        t.Name,
		HackathonID: t.HackathonId,
		LeaderID:    t.LeaderId,
		Members:     t.Members.Val,
		Ctime:       time.UnixMilli(t.Ctime),
		Utime:       time.UnixMilli(t.Utime),
	}
}
