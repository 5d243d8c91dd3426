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
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/event"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/repository/dao"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
)

func initDAO(db *egorm.Component) dao.EnrollmentDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMEnrollmentDAO(db)
}

func initStatusChangedEventProducer(q mq.MQ) *event.StatusChangedEventProducer {
	producer, err := event.NewStatusChangedEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
