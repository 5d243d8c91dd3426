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

package ioc

import (
	"time"

	"github.com/BIRU-sketch/Skill-Sphere/internal/pkg/pdf"
	"github.com/BIRU-sketch/Skill-Sphere/internal/pkg/ratelimit"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

// initConverter 证书出图走远端 headless chrome
func initConverter() pdf.Converter {
	return pdf.NewChromeDPConverter(econf.GetString("pdf.chromeWS"))
}

// initLimiter 登录注册这类敏感接口的限流器
func initLimiter(cmd redis.Cmdable) ratelimit.Limiter {
	type Config struct {
		MaxAttempts int           `yaml:"maxAttempts"`
		Window      time.Duration `yaml:"window"`
	}
	var cfg Config
	err := econf.UnmarshalKey("ratelimit", &cfg)
	if err != nil {
		panic(err)
	}
	return ratelimit.NewRedisLimiter(cmd, "ratelimit", cfg.MaxAttempts, cfg.Window)
}
