//go:build wireinject

package startup

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/repository"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/repository/cache"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/repository/dao"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/service"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/web"
	testioc "github.com/BIRU-sketch/Skill-Sphere/internal/test/ioc"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user"
	"github.com/google/wire"
)

func InitHandler(userModule *user.Module) *challenge.Handler {
	wire.Build(
		web.NewHandler,
		testioc.BaseSet,
		service.NewChallengeService,
		dao.NewGORMChallengeDAO,
		cache.NewChallengeECache,
		repository.NewCachedChallengeRepository,
		wire.FieldsOf(new(*user.Module), "Svc"),
	)
	return new(challenge.Handler)
}
