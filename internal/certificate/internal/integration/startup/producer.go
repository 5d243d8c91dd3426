package startup

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/event"
	"github.com/ecodeclub/mq-api"
)

func initProducer(q mq.MQ) *event.CertificateIssuedEventProducer {
	producer, err := event.NewCertificateIssuedEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
