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

package enrollment

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/service"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/web"
)

type Handler = web.Handler
type Enrollment = domain.Enrollment
type Status = domain.Status

const (
	StatusEnrolled   = domain.StatusEnrolled
	StatusInProgress = domain.StatusInProgress
	StatusSubmitted  = domain.StatusSubmitted
	StatusApproved   = domain.StatusApproved
	StatusRejected   = domain.StatusRejected
)

// EnrollmentService 证书模块发证前要校验报名状态
//
//go:generate mockgen -source=./types.go -package=enrollmentmocks -destination=./mocks/enrollment.mock.go EnrollmentService
type EnrollmentService = service.EnrollmentService

type InvalidTransitionError = service.InvalidTransitionError

var (
	ErrEnrollmentNotFound = service.ErrEnrollmentNotFound
	ErrAlreadyEnrolled    = service.ErrAlreadyEnrolled
)

type Module struct {
	Hdl *Handler
	Svc EnrollmentService
}
