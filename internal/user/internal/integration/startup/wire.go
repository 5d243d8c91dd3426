//go:build wireinject

package startup

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/pkg/ratelimit"
	testioc "github.com/BIRU-sketch/Skill-Sphere/internal/test/ioc"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/repository"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/repository/cache"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/repository/dao"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/service"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/web"
	"github.com/google/wire"
)

func InitHandler(limiter ratelimit.Limiter) *user.Handler {
	wire.Build(web.NewHandler,
		testioc.BaseSet,
		service.NewUserService,
		dao.NewGORMUserDAO,
		cache.NewUserECache,
		repository.NewCachedUserRepository,
		initRegistrationEventProducer)
	return new(user.Handler)
}
