package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

type StatusChangedEventProducer struct {
	producer mq.Producer
}

func NewStatusChangedEventProducer(q mq.MQ) (*StatusChangedEventProducer, error) {
	p, err := q.Producer(EnrollmentStatusEvents)
	if err != nil {
		return nil, err
	}
	return &StatusChangedEventProducer{producer: p}, nil
}

func (p *StatusChangedEventProducer) Produce(ctx context.Context, evt StatusChangedEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{Value: data})
	if err != nil {
		return fmt.Errorf("发送状态变更消息失败: %w", err)
	}
	return nil
}
