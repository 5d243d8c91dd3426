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

package job

import (
	"context"
	"fmt"

	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*CompleteExpiredHackathonsJob)(nil)

// CompleteExpiredHackathonsJob 把已经过了结束时间的 published 收尾成 completed
type CompleteExpiredHackathonsJob struct {
	svc    service.HackathonService
	logger *elog.Component
}

func NewCompleteExpiredHackathonsJob(svc service.HackathonService) *CompleteExpiredHackathonsJob {
	return &CompleteExpiredHackathonsJob{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (c *CompleteExpiredHackathonsJob) Name() string {
	return "CompleteExpiredHackathonsJob"
}

func (c *CompleteExpiredHackathonsJob) Run(ctx context.Context) error {
	cnt, err := c.svc.CompleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("收尾过期黑客松失败: %w", err)
	}
	if cnt > 0 {
		c.logger.Info("黑客松已收尾", elog.Int64("count", cnt))
	}
	return nil
}
