package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

type CertificateIssuedEventProducer struct {
	producer mq.Producer
}

func NewCertificateIssuedEventProducer(q mq.MQ) (*CertificateIssuedEventProducer, error) {
	p, err := q.Producer(CertificateIssuedEvents)
	if err != nil {
		return nil, err
	}
	return &CertificateIssuedEventProducer{producer: p}, nil
}

func (p *CertificateIssuedEventProducer) Produce(ctx context.Context, evt CertificateIssuedEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{Value: data})
	if err != nil {
		return fmt.Errorf("发送发证消息失败: %w", err)
	}
	return nil
}
