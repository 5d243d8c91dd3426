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

	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPortfolioNotFound = repository.ErrPortfolioNotFound
	ErrPortfolioPrivate  = errors.New("作品集未公开")
)

//go:generate mockgen -source=./portfolio.go -package=svcmocks -destination=mocks/portfolio.mock.go PortfolioService
type PortfolioService interface {
	// Get 本人随时可以看，其他人只能看公开的
	Get(ctx context.Context, studentId, viewerId int64) (domain.Portfolio, error)
	// FoldIn 独立折算一张证书，自带事务
	FoldIn(ctx context.Context, f domain.Fold) error
	// FoldInTx 加入调用方的事务，证书签发时和证书插入绑在一起
	FoldInTx(ctx context.Context, tx *gorm.DB, f domain.Fold) error
	ToggleVisibility(ctx context.Context, studentId int64) (bool, error)
}

type portfolioService struct {
	repo repository.PortfolioRepository
}

func NewPortfolioService(repo repository.PortfolioRepository) PortfolioService {
	return &portfolioService{
		repo: repo,
	}
}

func (svc *portfolioService) Get(ctx context.Context, studentId, viewerId int64) (domain.Portfolio, error) {
	p, err := svc.repo.FindByStudent(ctx, studentId)
	if err != nil {
		return domain.Portfolio{}, err
	}
	if studentId != viewerId && !p.Public {
		return domain.Portfolio{}, ErrPortfolioPrivate
	}
	return p, nil
}

func (svc *portfolioService) FoldIn(ctx context.Context, f domain.Fold) error {
	return svc.repo.FoldIn(ctx, nil, f)
}

func (svc *portfolioService) FoldInTx(ctx context.Context, tx *gorm.DB, f domain.Fold) error {
	return svc.repo.FoldIn(ctx, tx, f)
}

func (svc *portfolioService) ToggleVisibility(ctx context.Context, studentId int64) (bool, error) {
	p, err := svc.repo.FindByStudent(ctx, studentId)
	if err != nil {
		return false, err
	}
	err = svc.repo.UpdateVisibility(ctx, studentId, !p.Public)
	return !p.Public, err
}
