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

package ratelimit

import (
	"context"
	"time"
)

// Limiter 固定窗口限流器。identifier 由调用方决定，
// 比如登录场景用邮箱，提交场景用 uid。
//
//go:generate mockgen -source=./limiter.go -package=limitmocks -destination=./mocks/limiter.mock.go -typed Limiter
type Limiter interface {
	// Allow 记录一次尝试，返回是否放行、剩余次数和窗口重置时间
	Allow(ctx context.Context, identifier string) (Result, error)
	// Clear 清空某个 identifier 的计数，比如登录成功之后
	Clear(ctx context.Context, identifier string) error
}

type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}
