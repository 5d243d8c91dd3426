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

	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrPortfolioNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./portfolio.go -package=repomocks -destination=mocks/portfolio.mock.go PortfolioRepository
type PortfolioRepository interface {
	FindByStudent(ctx context.Context, studentId int64) (domain.Portfolio, error)
	FoldIn(ctx context.Context, tx *gorm.DB, f domain.Fold) error
	UpdateVisibility(ctx context.Context, studentId int64, public bool) error
}

type portfolioRepository struct {
	dao dao.PortfolioDAO
}

func NewPortfolioRepository(d dao.PortfolioDAO) PortfolioRepository {
	return &portfolioRepository{
		dao: d,
	}
}

func (r *portfolioRepository) FindByStudent(ctx context.Context, studentId int64) (domain.Portfolio, error) {
	p, err := r.dao.FindByStudent(ctx, studentId)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Portfolio{}, ErrPortfolioNotFound
	}
	if err != nil {
		return domain.Portfolio{}, err
	}
	return r.toDomain(p), nil
}

func (r *portfolioRepository) FoldIn(ctx context.Context, tx *gorm.DB, f domain.Fold) error {
	return r.dao.FoldIn(ctx, tx, f)
}

func (r *portfolioRepository) UpdateVisibility(ctx context.Context, studentId int64, public bool) error {
	err := r.dao.UpdateVisibility(ctx, studentId, public)
	if errors.Is(err, dao.ErrDataNotFound) {
		return ErrPortfolioNotFound
	}
	return err
}

func (r *portfolioRepository) toDomain(p dao.Portfolio) domain.Portfolio {
	return domain.Portfolio{
		ID:                  p.Id,
		StudentID:           p.StudentId,
		StudentName:         p.StudentName,
		StudentEmail:        p.StudentEmail,
		Bio:                 p.Bio,
		Skills:              p.Skills.Val,
		CompletedChallenges: p.CompletedChallenges.Val,
		CertificateCount:    p.CertificateCount,
		TotalPoints:         p.TotalPoints,
		Public:              p.Public,
		Utime:               time.UnixMilli(p.Utime),
	}
}
