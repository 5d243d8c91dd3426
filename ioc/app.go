package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

type App struct {
	Web       *egin.Component
	Crons     []ecron.Ecron
	Consumers []Consumer
}

// Consumer 后台消息消费者，main 里统一启动
type Consumer interface {
	Start(ctx context.Context)
}
