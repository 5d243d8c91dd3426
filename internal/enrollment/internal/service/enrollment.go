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
	"fmt"

	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/event"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/repository"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrEnrollmentNotFound = repository.ErrEnrollmentNotFound
	ErrAlreadyEnrolled    = repository.ErrAlreadyEnrolled
	ErrInvalidInput       = errors.New("输入不合法")
	ErrPermissionDenied   = errors.New("无权限操作")
)

// InvalidTransitionError 非法的状态跳转
type InvalidTransitionError struct {
	From domain.Status
	To   domain.Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("不允许从 %s 跳到 %s", e.From, e.To)
}

//go:generate mockgen -source=./enrollment.go -package=svcmocks -destination=mocks/enrollment.mock.go EnrollmentService
type EnrollmentService interface {
	// Apply 学生报名一个挑战。一个学生对一个挑战只能有一条记录
	Apply(ctx context.Context, studentId, challengeId int64, essay, motivation, experience string) (int64, error)
	// UpdateStatus 状态流转。谁能改取决于目标状态：
	// 学生只能提交作业，导师负责审核申请和评审作业
	UpdateStatus(ctx context.Context, id int64, target domain.Status, operatorId int64) (domain.Enrollment, error)
	Detail(ctx context.Context, id int64) (domain.Enrollment, error)
	ByPair(ctx context.Context, studentId, challengeId int64) (domain.Enrollment, error)
	ListByStudent(ctx context.Context, studentId int64) ([]domain.Enrollment, error)
	// ListByChallenge 导师查看自己挑战的报名列表
	ListByChallenge(ctx context.Context, challengeId, mentorId int64) ([]domain.Enrollment, error)
}

type enrollmentService struct {
	repo         repository.EnrollmentRepository
	userSvc      user.UserService
	challengeSvc challenge.ChallengeService
	producer     *event.StatusChangedEventProducer
	logger       *elog.Component
}

func NewEnrollmentService(repo repository.EnrollmentRepository,
	userSvc user.UserService,
	challengeSvc challenge.ChallengeService,
	producer *event.StatusChangedEventProducer) EnrollmentService {
	return &enrollmentService{
		repo:         repo,
		userSvc:      userSvc,
		challengeSvc: challengeSvc,
		producer:     producer,
		logger:       elog.DefaultLogger,
	}
}

func (svc *enrollmentService) Apply(ctx context.Context,
	studentId, challengeId int64, essay, motivation, experience string) (int64, error) {
	e := domain.Enrollment{
		StudentID:   studentId,
		ChallengeID: challengeId,
		Essay:       essay,
		Motivation:  motivation,
		Experience:  experience,
		Status:      domain.StatusEnrolled,
	}
	if !e.ValidApplication() {
		return 0, ErrInvalidInput
	}
	c, err := svc.challengeSvc.Detail(ctx, challengeId)
	if err != nil {
		return 0, err
	}
	student, err := svc.userSvc.Profile(ctx, studentId)
	if err != nil {
		return 0, err
	}
	e.ChallengeTitle = c.Title
	e.StudentName = student.Nickname
	e.StudentEmail = student.Email
	// 唯一索引兜底，并发下重复报名也插不进去
	return svc.repo.Create(ctx, e)
}

func (svc *enrollmentService) UpdateStatus(ctx context.Context,
	id int64, target domain.Status, operatorId int64) (domain.Enrollment, error) {
	if !target.IsValid() {
		return domain.Enrollment{}, ErrInvalidInput
	}
	e, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return domain.Enrollment{}, err
	}
	if !e.Status.CanTransitionTo(target) {
		return domain.Enrollment{}, &InvalidTransitionError{From: e.Status, To: target}
	}
	err = svc.checkOperator(ctx, e, target, operatorId)
	if err != nil {
		return domain.Enrollment{}, err
	}
	err = svc.repo.UpdateStatus(ctx, id, e.Status, target)
	if errors.Is(err, repository.ErrStatusConflict) {
		// 并发修改，当成非法跳转报出去
		return domain.Enrollment{}, &InvalidTransitionError{From: e.Status, To: target}
	}
	if err != nil {
		return domain.Enrollment{}, err
	}
	if target.IsTerminal() || target == domain.StatusInProgress {
		evt := event.StatusChangedEvent{
			EnrollmentID:   e.ID,
			StudentID:      e.StudentID,
			StudentEmail:   e.StudentEmail,
			StudentName:    e.StudentName,
			ChallengeID:    e.ChallengeID,
			ChallengeTitle: e.ChallengeTitle,
			OldStatus:      e.Status.String(),
			NewStatus:      target.String(),
		}
		if er := svc.producer.Produce(ctx, evt); er != nil {
			svc.logger.Error("发送状态变更事件失败",
				elog.FieldErr(er),
				elog.Int64("enrollmentId", e.ID))
		}
	}
	return svc.repo.FindById(ctx, id)
}

func (svc *enrollmentService) Detail(ctx context.Context, id int64) (domain.Enrollment, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *enrollmentService) ByPair(ctx context.Context, studentId, challengeId int64) (domain.Enrollment, error) {
	return svc.repo.FindByPair(ctx, studentId, challengeId)
}

func (svc *enrollmentService) ListByStudent(ctx context.Context, studentId int64) ([]domain.Enrollment, error) {
	return svc.repo.ListByStudent(ctx, studentId)
}

func (svc *enrollmentService) ListByChallenge(ctx context.Context, challengeId, mentorId int64) ([]domain.Enrollment, error) {
	c, err := svc.challengeSvc.Detail(ctx, challengeId)
	if err != nil {
		return nil, err
	}
	if c.MentorID != mentorId {
		return nil, ErrPermissionDenied
	}
	return svc.repo.ListByChallenge(ctx, challengeId)
}

// checkOperator 提交作业必须是学生本人，其余流转必须是挑战的导师
func (svc *enrollmentService) checkOperator(ctx context.Context,
	e domain.Enrollment, target domain.Status, operatorId int64) error {
	if target == domain.StatusSubmitted {
		if e.StudentID != operatorId {
			return ErrPermissionDenied
		}
		return nil
	}
	c, err := svc.challengeSvc.Detail(ctx, e.ChallengeID)
	if err != nil {
		return err
	}
	if c.MentorID != operatorId {
		return ErrPermissionDenied
	}
	return nil
}
