//go:build wireinject

package startup

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon"
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/repository"
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/repository/dao"
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/service"
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/web"
	testioc "github.com/BIRU-sketch/Skill-Sphere/internal/test/ioc"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user"
	"github.com/google/wire"
)

func InitHandler(userModule *user.Module) *hackathon.Handler {
	wire.Build(
		web.NewHandler,
		testioc.BaseSet,
		service.NewHackathonService,
		dao.NewGORMHackathonDAO,
		dao.NewGORMTeamDAO,
		repository.NewHackathonRepository,
		repository.NewTeamRepository,
		wire.FieldsOf(new(*user.Module), "Svc"),
	)
	return new(hackathon.Handler)
}
