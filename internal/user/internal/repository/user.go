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

	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/repository/cache"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	Update(ctx context.Context, u domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
}

type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

func NewCachedUserRepository(d dao.UserDAO, c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.toEntity(u))
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.toEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.ID)
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return ur.toDomain(u), err
}

func (ur *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	du, err := ur.cache.Get(ctx, id)
	if err == nil {
		return du, nil
	}
	u, err := ur.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	du = ur.toDomain(u)
	// 回填失败不影响主流程
	_ = ur.cache.Set(ctx, du)
	return du, nil
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := ur.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.toDomain(src)
	}), nil
}

func (ur *CachedUserRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:        u.ID,
		SN:        u.SN,
		Email:     u.Email,
		Password:  u.Password,
		Nickname:  u.Nickname,
		Role:      u.Role.String(),
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		Skills:    sqlx.JsonColumn[[]string]{Val: u.Skills, Valid: len(u.Skills) > 0},
		Expertise: sqlx.JsonColumn[[]string]{Val: u.Expertise, Valid: len(u.Expertise) > 0},
	}
}

func (ur *CachedUserRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		ID:        u.Id,
		SN:        u.SN,
		Email:     u.Email,
		Password:  u.Password,
		Nickname:  u.Nickname,
		Role:      domain.Role(u.Role),
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		Skills:    u.Skills.Val,
		Expertise: u.Expertise.Val,
		Ctime:     time.UnixMilli(u.Ctime),
		Utime:     time.UnixMilli(u.Utime),
	}
}
