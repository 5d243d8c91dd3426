//go:build wireinject

package startup

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/artifact"
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon"
	"github.com/BIRU-sketch/Skill-Sphere/internal/pkg/pdf"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/repository"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/repository/cache"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/repository/dao"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/service"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/web"
	testioc "github.com/BIRU-sketch/Skill-Sphere/internal/test/ioc"
	"github.com/google/wire"
)

func InitHandler(converter pdf.Converter,
	hackathonModule *hackathon.Module,
	artifactModule *artifact.Module) *submission.Handler {
	wire.Build(
		web.NewHandler,
		testioc.BaseSet,
		service.NewSubmissionService,
		dao.NewGORMSubmissionDAO,
		repository.NewSubmissionRepository,
		cache.NewLeaderboardECache,
		wire.FieldsOf(new(*hackathon.Module), "Svc"),
		wire.FieldsOf(new(*artifact.Module), "Storage"),
	)
	return new(submission.Handler)
}
