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

package certificate

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/event"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/repository/dao"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
)

func initDAO(db *egorm.Component) dao.CertificateDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMCertificateDAO(db)
}

func initCertificateIssuedEventProducer(q mq.MQ) *event.CertificateIssuedEventProducer {
	producer, err := event.NewCertificateIssuedEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
