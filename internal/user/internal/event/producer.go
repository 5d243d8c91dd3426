package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

type RegistrationEventProducer struct {
	producer mq.Producer
}

func NewRegistrationEventProducer(q mq.MQ) (*RegistrationEventProducer, error) {
	p, err := q.Producer(userRegistrationEvents)
	if err != nil {
		return nil, err
	}
	return &RegistrationEventProducer{producer: p}, nil
}

func (p *RegistrationEventProducer) Produce(ctx context.Context, evt RegistrationEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{Value: data})
	if err != nil {
		return fmt.Errorf("发送注册成功消息失败: %w", err)
	}
	return nil
}
