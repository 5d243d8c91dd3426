//go:build wireinject

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

package user

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/pkg/ratelimit"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/repository"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/repository/cache"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/service"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	web.NewHandler,
	cache.NewUserECache,
	service.NewUserService,
	repository.NewCachedUserRepository,
	initDAO,
	initRegistrationEventProducer,
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, limiter ratelimit.Limiter) *Module {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module)
}
