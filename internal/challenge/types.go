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

package challenge

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/service"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/web"
)

type Handler = web.Handler
type Challenge = domain.Challenge
type Resource = domain.Resource

// ChallengeService 给报名、证书这些模块用
//
//go:generate mockgen -source=./types.go -package=challengemocks -destination=./mocks/challenge.mock.go ChallengeService
type ChallengeService = service.ChallengeService

var ErrChallengeNotFound = service.ErrChallengeNotFound

type Module struct {
	Hdl *Handler
	Svc ChallengeService
}
