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

package submission

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/service"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/web"
)

type Handler = web.Handler
type Submission = domain.Submission
type Feedback = domain.Feedback
type LeaderboardEntry = domain.LeaderboardEntry
type WinnerCertificate = domain.WinnerCertificate

//go:generate mockgen -source=./types.go -package=submissionmocks -destination=./mocks/submission.mock.go SubmissionService
type SubmissionService = service.SubmissionService

var ErrSubmissionNotFound = service.ErrSubmissionNotFound

type Module struct {
	Hdl *Handler
	Svc SubmissionService
}
