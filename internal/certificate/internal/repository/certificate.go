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

	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"gorm.io/gorm"
)

var (
	ErrCertificateNotFound = dao.ErrDataNotFound
	ErrAlreadyIssued       = dao.ErrAlreadyIssued
)

//go:generate mockgen -source=./certificate.go -package=repomocks -destination=mocks/certificate.mock.go CertificateRepository
type CertificateRepository interface {
	// Issue 插入证书并在同一事务里执行 fold
	Issue(ctx context.Context, c domain.Certificate, fold func(tx *gorm.DB, certId int64) error) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Certificate, error)
	FindByCode(ctx context.Context, code string) (domain.Certificate, error)
	ListByStudent(ctx context.Context, studentId int64) ([]domain.Certificate, error)
}

type certificateRepository struct {
	dao dao.CertificateDAO
}

func NewCertificateRepository(d dao.CertificateDAO) CertificateRepository {
	return &certificateRepository{
		dao: d,
	}
}

func (r *certificateRepository) Issue(ctx context.Context,
	c domain.Certificate, fold func(tx *gorm.DB, certId int64) error) (int64, error) {
	return r.dao.InsertWithFold(ctx, r.toEntity(c), fold)
}

func (r *certificateRepository) FindById(ctx context.Context, id int64) (domain.Certificate, error) {
	c, err := r.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Certificate{}, ErrCertificateNotFound
	}
	return r.toDomain(c), err
}

func (r *certificateRepository) FindByCode(ctx context.Context, code string) (domain.Certificate, error) {
	c, err := r.dao.FindByCode(ctx, code)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Certificate{}, ErrCertificateNotFound
	}
	return r.toDomain(c), err
}

func (r *certificateRepository) ListByStudent(ctx context.Context, studentId int64) ([]domain.Certificate, error) {
	cs, err := r.dao.ListByStudent(ctx, studentId)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Certificate) domain.Certificate {
		return r.toDomain(src)
	}), nil
}

func (r *certificateRepository) toEntity(c domain.Certificate) dao.Certificate {
	return dao.Certificate{
		Id:             c.ID,
		Code:           c.Code,
		EnrollmentId:   c.EnrollmentID,
		StudentId:      c.StudentID,
		StudentName:    c.StudentName,
		ChallengeId:    c.ChallengeID,
		ChallengeTitle: c.ChallengeTitle,
		MentorId:       c.MentorID,
		MentorName:     c.MentorName,
		Skills: sqlx.JsonColumn[[]string]{
			Val: c.Skills, Valid: len(c.Skills) > 0,
		},
		ArtifactURL: c.ArtifactURL,
	}
}

func (r *certificateRepository) toDomain(c dao.Certificate) domain.Certificate {
	return domain.Certificate{
		ID:             c.Id,
		Code:           c.Code,
		EnrollmentID:   c.EnrollmentId,
		StudentID:      c.StudentId,
		StudentName:    c.StudentName,
		ChallengeID:    c.ChallengeId,
		ChallengeTitle: c.ChallengeTitle,
		MentorID:       c.MentorId,
		MentorName:     c.MentorName,
		Skills:         c.Skills.Val,
		ArtifactURL:    c.ArtifactURL,
		IssuedAt:       time.UnixMilli(c.IssuedAt),
	}
}
