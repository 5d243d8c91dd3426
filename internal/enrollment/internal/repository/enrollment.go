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

	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrEnrollmentNotFound = dao.ErrDataNotFound
	ErrAlreadyEnrolled    = dao.ErrAlreadyEnrolled
	ErrStatusConflict     = dao.ErrStatusConflict
)

//go:generate mockgen -source=./enrollment.go -package=repomocks -destination=mocks/enrollment.mock.go EnrollmentRepository
type EnrollmentRepository interface {
	Create(ctx context.Context, e domain.Enrollment) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Enrollment, error)
	FindByPair(ctx context.Context, studentId, challengeId int64) (domain.Enrollment, error)
	ListByStudent(ctx context.Context, studentId int64) ([]domain.Enrollment, error)
	ListByChallenge(ctx context.Context, challengeId int64) ([]domain.Enrollment, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.Status) error
}

type enrollmentRepository struct {
	dao dao.EnrollmentDAO
}

func NewEnrollmentRepository(d dao.EnrollmentDAO) EnrollmentRepository {
	return &enrollmentRepository{
		dao: d,
	}
}

func (r *enrollmentRepository) Create(ctx context.Context, e domain.Enrollment) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(e))
}

func (r *enrollmentRepository) FindById(ctx context.Context, id int64) (domain.Enrollment, error) {
	e, err := r.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Enrollment{}, ErrEnrollmentNotFound
	}
	return r.toDomain(e), err
}

func (r *enrollmentRepository) FindByPair(ctx context.Context, studentId, challengeId int64) (domain.Enrollment, error) {
	e, err := r.dao.FindByPair(ctx, studentId, challengeId)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Enrollment{}, ErrEnrollmentNotFound
	}
	return r.toDomain(e), err
}

func (r *enrollmentRepository) ListByStudent(ctx context.Context, studentId int64) ([]domain.Enrollment, error) {
	es, err := r.dao.ListByStudent(ctx, studentId)
	if err != nil {
		return nil, err
	}
	return slice.Map(es, func(idx int, src dao.Enrollment) domain.Enrollment {
		return r.toDomain(src)
	}), nil
}

func (r *enrollmentRepository) ListByChallenge(ctx context.Context, challengeId int64) ([]domain.Enrollment, error) {
	es, err := r.dao.ListByChallenge(ctx, challengeId)
	if err != nil {
		return nil, err
	}
	return slice.Map(es, func(idx int, src dao.Enrollment) domain.Enrollment {
		return r.toDomain(src)
	}), nil
}

func (r *enrollmentRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.Status) error {
	now := time.Now().UnixMilli()
	stamps := map[string]any{}
	// 提交作业记提交时间，评审结论记评审时间
	if to == domain.StatusSubmitted {
		stamps["submitted_at"] = now
	}
	if to.IsTerminal() {
		stamps["reviewed_at"] = now
	}
	return r.dao.UpdateStatus(ctx, id, from.String(), to.String(), stamps)
}

func (r *enrollmentRepository) toEntity(e domain.Enrollment) dao.Enrollment {
	return dao.Enrollment{
		Id:             e.ID,
		StudentId:      e.StudentID,
		StudentName:    e.StudentName,
		StudentEmail:   e.StudentEmail,
		ChallengeId:    e.ChallengeID,
		ChallengeTitle: e.ChallengeTitle,
		Status:         e.Status.String(),
		Essay:          e.Essay,
		Motivation:     e.Motivation,
		Experience:     e.Experience,
	}
}

func (r *enrollmentRepository) toDomain(e dao.Enrollment) domain.Enrollment {
	res := domain.Enrollment{
		ID:             e.Id,
		StudentID:      e.StudentId,
		StudentName:    e.StudentName,
		StudentEmail:   e.StudentEmail,
		ChallengeID:    e.ChallengeId,
		ChallengeTitle: e.ChallengeTitle,
		Status:         domain.Status(e.Status),
		Essay:          e.Essay,
		Motivation:     e.Motivation,
		Experience:     e.Experience,
		EnrolledAt:     time.UnixMilli(e.EnrolledAt),
		Utime:          time.UnixMilli(e.Utime),
	}
	if e.SubmittedAt > 0 {
		res.SubmittedAt = time.UnixMilli(e.SubmittedAt)
	}
	if e.ReviewedAt > 0 {
		res.ReviewedAt = time.UnixMilli(e.ReviewedAt)
	}
	return res
}
