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

package hackathon

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/job"
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/service"
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/web"
)

type Handler = web.Handler
type Hackathon = domain.Hackathon
type Team = domain.Team
type Criterion = domain.Criterion
type Status = domain.Status

const (
	StatusDraft     = domain.StatusDraft
	StatusPublished = domain.StatusPublished
	StatusCompleted = domain.StatusCompleted
)

// CriterionKeys 评分维度全集，提交模块校验打分时用
var CriterionKeys = domain.CriterionKeys

//go:generate mockgen -source=./types.go -package=hackathonmocks -destination=./mocks/hackathon.mock.go HackathonService
type HackathonService = service.HackathonService

type CompleteExpiredHackathonsJob = job.CompleteExpiredHackathonsJob

var (
	ErrHackathonNotFound = service.ErrHackathonNotFound
	ErrTeamNotFound      = service.ErrTeamNotFound
)

type Module struct {
	Hdl *Handler
	Svc HackathonService
	Job *CompleteExpiredHackathonsJob
}
