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
	"regexp"

	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/event"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserDuplicate          = repository.ErrUserDuplicate
	ErrUserNotFound           = repository.ErrUserNotFound
	ErrInvalidEmailOrPassword = errors.New("邮箱或密码错误")
	ErrInvalidInput           = errors.New("输入不合法")
)

var (
	emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	upperRegexp = regexp.MustCompile(`[A-Z]`)
	lowerRegexp = regexp.MustCompile(`[a-z]`)
	digitRegexp = regexp.MustCompile(`[0-9]`)
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	// Register 邮箱注册。密码至少8位，必须同时有大写、小写和数字
	Register(ctx context.Context, u domain.User, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// BatchProfile 批量查询，评委展示之类的场景用
	BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error)
	// UpdateNonSensitiveInfo 更新非敏感数据，邮箱、角色和SN不允许改
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
}

type userService struct {
	repo     repository.UserRepository
	producer *event.RegistrationEventProducer
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, p *event.RegistrationEventProducer) UserService {
	return &userService{
		repo:     repo,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) Register(ctx context.Context, u domain.User, password string) (domain.User, error) {
	if !emailRegexp.MatchString(u.Email) ||
		len(u.Nickname) < 2 ||
		!u.Role.IsValid() ||
		!validPassword(password) {
		return domain.User{}, ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = string(hash)
	u.SN = shortuuid.New()
	id, err := svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.ID = id
	u.Password = ""

	evt := event.RegistrationEvent{Uid: id, Role: u.Role.String()}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	return u, nil
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidEmailOrPassword
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, ErrInvalidEmailOrPassword
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	u, err := svc.repo.FindById(ctx, id)
	u.Password = ""
	return u, err
}

func (svc *userService) BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error) {
	return svc.repo.FindByIds(ctx, ids)
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	// 不让改的字段直接清零值
	user.SN = ""
	user.Email = ""
	user.Password = ""
	user.Role = ""
	return svc.repo.Update(ctx, user)
}

func validPassword(password string) bool {
	return len(password) >= 8 &&
		upperRegexp.MatchString(password) &&
		lowerRegexp.MatchString(password) &&
		digitRegexp.MatchString(password)
}
