package startup

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/event"
	"github.com/ecodeclub/mq-api"
)

func initProducer(q mq.MQ) *event.StatusChangedEventProducer {
	producer, err := event.NewStatusChangedEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
