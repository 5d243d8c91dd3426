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
	"time"

	"github.com/BIRU-sketch/Skill-Sphere/internal/artifact"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/event"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/repository"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment"
	"github.com/BIRU-sketch/Skill-Sphere/internal/pkg/pdf"
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

var (
	ErrCertificateNotFound = repository.ErrCertificateNotFound
	ErrAlreadyIssued       = repository.ErrAlreadyIssued
	// ErrNotCertifiable 报名没有走到 approved
	ErrNotCertifiable   = errors.New("报名还没有通过终审")
	ErrPermissionDenied = errors.New("无权限操作")
)

//go:generate mockgen -source=./certificate.go -package=svcmocks -destination=mocks/certificate.mock.go CertificateService
type CertificateService interface {
	// Issue 给一条 approved 的报名发证。只有挑战的导师能发，
	// 一条报名只发一张。skills 为空时退回挑战的学习成果
	Issue(ctx context.Context, enrollmentId, mentorId int64, skills []string) (domain.Certificate, error)
	// Verify 按验证码查证书，公开接口
	Verify(ctx context.Context, code string) (domain.Certificate, error)
	Detail(ctx context.Context, id int64) (domain.Certificate, error)
	ListByStudent(ctx context.Context, studentId int64) ([]domain.Certificate, error)
}

type certificateService struct {
	repo          repository.CertificateRepository
	enrollmentSvc enrollment.EnrollmentService
	challengeSvc  challenge.ChallengeService
	userSvc       user.UserService
	portfolioSvc  portfolio.PortfolioService
	converter     pdf.Converter
	storage       artifact.Storage
	producer      *event.CertificateIssuedEventProducer
	logger        *elog.Component
}

func NewCertificateService(repo repository.CertificateRepository,
	enrollmentSvc enrollment.EnrollmentService,
	challengeSvc challenge.ChallengeService,
	userSvc user.UserService,
	portfolioSvc portfolio.PortfolioService,
	converter pdf.Converter,
	storage artifact.Storage,
	producer *event.CertificateIssuedEventProducer) CertificateService {
	return &certificateService{
		repo:          repo,
		enrollmentSvc: enrollmentSvc,
		challengeSvc:  challengeSvc,
		userSvc:       userSvc,
		portfolioSvc:  portfolioSvc,
		converter:     converter,
		storage:       storage,
		producer:      producer,
		logger:        elog.DefaultLogger,
	}
}

func (svc *certificateService) Issue(ctx context.Context,
	enrollmentId, mentorId int64, skills []string) (domain.Certificate, error) {
	e, err := svc.enrollmentSvc.Detail(ctx, enrollmentId)
	if err != nil {
		return domain.Certificate{}, err
	}
	if e.Status != enrollment.StatusApproved {
		return domain.Certificate{}, ErrNotCertifiable
	}
	c, err := svc.challengeSvc.Detail(ctx, e.ChallengeID)
	if err != nil {
		return domain.Certificate{}, err
	}
	if c.MentorID != mentorId {
		return domain.Certificate{}, ErrPermissionDenied
	}
	student, err := svc.userSvc.Profile(ctx, e.StudentID)
	if err != nil {
		return domain.Certificate{}, err
	}
	mentor, err := svc.userSvc.Profile(ctx, mentorId)
	if err != nil {
		return domain.Certificate{}, err
	}
	if len(skills) == 0 {
		skills = c.LearningOutcomes
	}
	cert := domain.Certificate{
		Code:           domain.GenerateCode(),
		EnrollmentID:   e.ID,
		StudentID:      student.ID,
		StudentName:    student.Nickname,
		ChallengeID:    c.ID,
		ChallengeTitle: c.Title,
		MentorID:       mentor.ID,
		MentorName:     mentor.Nickname,
		Skills:         skills,
		IssuedAt:       time.Now(),
	}
	url, err := svc.renderAndUpload(ctx, cert)
	if err != nil {
		return domain.Certificate{}, err
	}
	cert.ArtifactURL = url
	id, err := svc.repo.Issue(ctx, cert, func(tx *gorm.DB, certId int64) error {
		// 发证和作品集折算绑在同一个事务里
		return svc.portfolioSvc.FoldInTx(ctx, tx, portfolio.Fold{
			StudentID:      student.ID,
			StudentName:    student.Nickname,
			StudentEmail:   student.Email,
			Bio:            student.Bio,
			CertificateID:  certId,
			ChallengeID:    c.ID,
			ChallengeTitle: c.Title,
			Category:       c.Category,
			Skills:         skills,
			CompletedAt:    cert.IssuedAt,
		})
	})
	if err != nil {
		return domain.Certificate{}, err
	}
	cert.ID = id
	evt := event.CertificateIssuedEvent{
		CertificateID:  id,
		Code:           cert.Code,
		StudentID:      cert.StudentID,
		StudentName:    cert.StudentName,
		StudentEmail:   student.Email,
		ChallengeTitle: cert.ChallengeTitle,
		ArtifactURL:    cert.ArtifactURL,
	}
	if er := svc.producer.Produce(ctx, evt); er != nil {
		svc.logger.Error("发送发证事件失败",
			elog.FieldErr(er),
			elog.Int64("certificateId", id))
	}
	return cert, nil
}

// renderAndUpload 渲染 PDF 并上传。失败就中止发证，不会留下没有产物的证书
func (svc *certificateService) renderAndUpload(ctx context.Context, cert domain.Certificate) (string, error) {
	html, err := domain.RenderHTML(cert)
	if err != nil {
		return "", err
	}
	data, err := svc.converter.ConvertHTMLToPDF(ctx, html, pdf.WithLandscape())
	if err != nil {
		return "", err
	}
	return svc.storage.Upload(ctx, "certificates/"+cert.Code+".pdf", "application/pdf", data)
}

func (svc *certificateService) Verify(ctx context.Context, code string) (domain.Certificate, error) {
	return svc.repo.FindByCode(ctx, code)
}

func (svc *certificateService) Detail(ctx context.Context, id int64) (domain.Certificate, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *certificateService) ListByStudent(ctx context.Context, studentId int64) ([]domain.Certificate, error) {
	return svc.repo.ListByStudent(ctx, studentId)
}
