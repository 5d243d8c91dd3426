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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/BIRU-sketch/Skill-Sphere/internal/email"
	emailmocks "github.com/BIRU-sketch/Skill-Sphere/internal/email/mocks"
	"github.com/BIRU-sketch/Skill-Sphere/internal/notification/consumer"
	"github.com/BIRU-sketch/Skill-Sphere/internal/notification/event"
	testioc "github.com/BIRU-sketch/Skill-Sphere/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConsumerTestSuite struct {
	suite.Suite
	q    mq.MQ
	sent chan email.Mail

	enrollment  *consumer.EnrollmentStatusEventConsumer
	certificate *consumer.CertificateIssuedEventConsumer
}

func (s *ConsumerTestSuite) SetupSuite() {
	t := s.T()
	s.q = testioc.InitMQ()
	s.sent = make(chan email.Mail, 10)
	ctrl := gomock.NewController(t)
	emailSvc := emailmocks.NewMockService(ctrl)
	emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mail email.Mail) error {
			s.sent <- mail
			return nil
		}).AnyTimes()

	var err error
	s.enrollment, err = consumer.NewEnrollmentStatusEventConsumer(s.q, emailSvc)
	require.NoError(t, err)
	s.certificate, err = consumer.NewCertificateIssuedEventConsumer(s.q, emailSvc)
	require.NoError(t, err)
}

func (s *ConsumerTestSuite) produce(topic string, payload []byte) {
	t := s.T()
	p, err := s.q.Producer(topic)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err = p.Produce(ctx, &mq.Message{Value: payload})
	require.NoError(t, err)
}

func (s *ConsumerTestSuite) produceJSON(topic string, evt any) {
	data, err := json.Marshal(evt)
	require.NoError(s.T(), err)
	s.produce(topic, data)
}

func (s *ConsumerTestSuite) waitMail() email.Mail {
	select {
	case mail := <-s.sent:
		return mail
	case <-time.After(5 * time.Second):
		s.T().Fatal("等邮件超时")
		return email.Mail{}
	}
}

func (s *ConsumerTestSuite) TestEnrollmentApproved() {
	t := s.T()
	s.produceJSON(event.EnrollmentStatusEvents, event.EnrollmentStatusEvent{
		EnrollmentID:   1,
		StudentEmail:   "xiaoming@biru.dev",
		StudentName:    "小明",
		ChallengeTitle: "从零写一个短链服务",
		OldStatus:      "pending",
		NewStatus:      "approved",
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.enrollment.Consume(ctx))

	mail := s.waitMail()
	assert.Equal(t, "xiaoming@biru.dev", mail.To)
	assert.Contains(t, mail.Subject, "报名通过")
	assert.Contains(t, string(mail.Body), "从零写一个短链服务")
}

func (s *ConsumerTestSuite) TestEnrollmentRejected() {
	t := s.T()
	s.produceJSON(event.EnrollmentStatusEvents, event.EnrollmentStatusEvent{
		EnrollmentID:   2,
		StudentEmail:   "xiaohong@biru.dev",
		StudentName:    "小红",
		ChallengeTitle: "高并发秒杀",
		OldStatus:      "pending",
		NewStatus:      "rejected",
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.enrollment.Consume(ctx))

	mail := s.waitMail()
	assert.Equal(t, "xiaohong@biru.dev", mail.To)
	assert.Contains(t, mail.Subject, "报名未通过")
}

func (s *ConsumerTestSuite) TestEnrollmentSubmittedIgnored() {
	t := s.T()
	s.produceJSON(event.EnrollmentStatusEvents, event.EnrollmentStatusEvent{
		EnrollmentID: 3,
		StudentEmail: "xiaoming@biru.dev",
		OldStatus:    "approved",
		NewStatus:    "submitted",
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.enrollment.Consume(ctx))

	select {
	case mail := <-s.sent:
		t.Fatalf("不该发邮件，却发给了 %s", mail.To)
	default:
	}
}

func (s *ConsumerTestSuite) TestCertificateIssued() {
	t := s.T()
	s.produceJSON(event.CertificateIssuedEvents, event.CertificateIssuedEvent{
		CertificateID:  7,
		Code:           "A1B2C3D4E5F6",
		StudentName:    "小明",
		StudentEmail:   "xiaoming@biru.dev",
		ChallengeTitle: "从零写一个短链服务",
		ArtifactURL:    "https://cdn.biru.dev/certificates/A1B2C3D4E5F6.pdf",
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.certificate.Consume(ctx))

	mail := s.waitMail()
	assert.Equal(t, "xiaoming@biru.dev", mail.To)
	assert.Contains(t, string(mail.Body), "A1B2C3D4E5F6")
	assert.Contains(t, string(mail.Body), "https://cdn.biru.dev/certificates/A1B2C3D4E5F6.pdf")
}

func (s *ConsumerTestSuite) TestBadPayload() {
	t := s.T()
	s.produce(event.EnrollmentStatusEvents, []byte("not json"))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.Error(t, s.enrollment.Consume(ctx))
}

func TestNotificationConsumers(t *testing.T) {
	suite.Run(t, new(ConsumerTestSuite))
}
