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

package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BIRU-sketch/Skill-Sphere/internal/email"
	"github.com/BIRU-sketch/Skill-Sphere/internal/notification/event"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// EnrollmentStatusEventConsumer 审核结果出来后给学员发邮件。
// 只关心 approved 和 rejected，其它状态变更不打扰人。
type EnrollmentStatusEventConsumer struct {
	consumer mq.Consumer
	emailSvc email.Service
	logger   *elog.Component
}

func NewEnrollmentStatusEventConsumer(q mq.MQ, emailSvc email.Service) (*EnrollmentStatusEventConsumer, error) {
	groupID := "notification.enrollment"
	consumer, err := q.Consumer(event.EnrollmentStatusEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &EnrollmentStatusEventConsumer{
		consumer: consumer,
		emailSvc: emailSvc,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.enrollment.consumer")),
	}, nil
}

func (c *EnrollmentStatusEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费报名状态事件失败", elog.FieldErr(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

func (c *EnrollmentStatusEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.EnrollmentStatusEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	mail, ok := c.newMail(evt)
	if !ok {
		return nil
	}
	// 发不出去只记日志，业务流程不回滚
	err = c.emailSvc.SendMail(ctx, mail)
	if err != nil {
		c.logger.Error("发送报名状态邮件失败",
			elog.Int64("enrollmentId", evt.EnrollmentID),
			elog.String("to", evt.StudentEmail),
			elog.FieldErr(err))
	}
	return nil
}

func (c *EnrollmentStatusEventConsumer) newMail(evt event.EnrollmentStatusEvent) (email.Mail, bool) {
	var subject, body string
	switch evt.NewStatus {
	case "approved":
		subject = fmt.Sprintf("报名通过：%s", evt.ChallengeTitle)
		body = fmt.Sprintf(`<p>%s，你好：</p>
<p>你报名的挑战《%s》已经通过审核，现在可以开始做了。</p>
<p>完成之后记得回到平台提交成果。</p>`, evt.StudentName, evt.ChallengeTitle)
	case "rejected":
		subject = fmt.Sprintf("报名未通过：%s", evt.ChallengeTitle)
		body = fmt.Sprintf(`<p>%s，你好：</p>
<p>很遗憾，你报名的挑战《%s》这次没有通过审核。</p>
<p>可以看看其它挑战，或者完善资料后再试一次。</p>`, evt.StudentName, evt.ChallengeTitle)
	default:
		return email.Mail{}, false
	}
	return email.Mail{
		From:    "Skill-Sphere",
		To:      evt.StudentEmail,
		Subject: subject,
		Body:    []byte(body),
	}, true
}
