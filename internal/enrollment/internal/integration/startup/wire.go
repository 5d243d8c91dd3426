//go:build wireinject

package startup

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/repository"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/repository/dao"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/service"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/web"
	testioc "github.com/BIRU-sketch/Skill-Sphere/internal/test/ioc"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user"
	"github.com/google/wire"
)

func InitHandler(userModule *user.Module, challengeModule *challenge.Module) *enrollment.Handler {
	wire.Build(
		web.NewHandler,
		testioc.BaseSet,
		service.NewEnrollmentService,
		dao.NewGORMEnrollmentDAO,
		repository.NewEnrollmentRepository,
		initProducer,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.FieldsOf(new(*challenge.Module), "Svc"),
	)
	return new(enrollment.Handler)
}
