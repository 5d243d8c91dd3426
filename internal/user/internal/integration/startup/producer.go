package startup

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/event"
	"github.com/ecodeclub/mq-api"
)

func initRegistrationEventProducer(q mq.MQ) *event.RegistrationEventProducer {
	producer, err := event.NewRegistrationEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
