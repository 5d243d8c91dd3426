//go:build wireinject

package ioc

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/artifact"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment"
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon"
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(
		wire.Struct(new(App), "*"),
		BaseSet,
		initConverter,
		initLimiter,
		initEmailService,
		user.InitModule,
		challenge.InitModule,
		enrollment.InitModule,
		portfolio.InitModule,
		certificate.InitModule,
		artifact.InitModule,
		hackathon.InitModule,
		submission.InitModule,
		wire.FieldsOf(new(*hackathon.Module), "Job"),
		InitSession,
		initGinxServer,
		initCronJobs,
		initMQConsumers,
	)
	return new(App), nil
}
