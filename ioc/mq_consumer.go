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

package ioc

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/email"
	"github.com/BIRU-sketch/Skill-Sphere/internal/email/aliyun"
	"github.com/BIRU-sketch/Skill-Sphere/internal/notification/consumer"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
)

func initMQConsumers(q mq.MQ, emailSvc email.Service) []Consumer {
	enrollmentConsumer, err := consumer.NewEnrollmentStatusEventConsumer(q, emailSvc)
	if err != nil {
		panic(err)
	}
	certificateConsumer, err := consumer.NewCertificateIssuedEventConsumer(q, emailSvc)
	if err != nil {
		panic(err)
	}
	return []Consumer{
		enrollmentConsumer,
		certificateConsumer,
	}
}

func initEmailService() email.Service {
	type Config struct {
		AccessKeyID     string `yaml:"accessKeyID"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		AccountName     string `yaml:"accountName"`
	}
	var cfg Config
	err := econf.UnmarshalKey("email.aliyun", &cfg)
	if err != nil {
		panic(err)
	}
	svc, err := aliyun.NewAliyunDirectMailAPI(cfg.AccessKeyID, cfg.AccessKeySecret, cfg.AccountName)
	if err != nil {
		panic(err)
	}
	return svc
}
