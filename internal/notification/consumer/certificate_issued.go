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

// CertificateIssuedEventConsumer 发证之后把证书链接寄给学员
type CertificateIssuedEventConsumer struct {
	consumer mq.Consumer
	emailSvc email.Service
	logger   *elog.Component
}

func NewCertificateIssuedEventConsumer(q mq.MQ, emailSvc email.Service) (*CertificateIssuedEventConsumer, error) {
	groupID := "notification.certificate"
	consumer, err := q.Consumer(event.CertificateIssuedEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &CertificateIssuedEventConsumer{
		consumer: consumer,
		emailSvc: emailSvc,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.certificate.consumer")),
	}, nil
}

func (c *CertificateIssuedEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费发证事件失败", elog.FieldErr(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

func (c *CertificateIssuedEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.CertificateIssuedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	body := fmt.Sprintf(`<p>%s，恭喜：</p>
<p>你已完成挑战《%s》，证书已经签发。</p>
<p>证书下载：<a href="%s">%s</a></p>
<p>任何人都可以凭验证码 <b>%s</b> 在平台上核验这张证书。</p>`,
		evt.StudentName, evt.ChallengeTitle, evt.ArtifactURL, evt.ArtifactURL, evt.Code)
	err = c.emailSvc.SendMail(ctx, email.Mail{
		From:    "Skill-Sphere",
		To:      evt.StudentEmail,
		Subject: fmt.Sprintf("你的结业证书：%s", evt.ChallengeTitle),
		Body:    []byte(body),
	})
	if err != nil {
		// 只记日志，证书本身已经落库
		c.logger.Error("发送证书邮件失败",
			elog.Int64("certificateId", evt.CertificateID),
			elog.String("to", evt.StudentEmail),
			elog.FieldErr(err))
	}
	return nil
}
