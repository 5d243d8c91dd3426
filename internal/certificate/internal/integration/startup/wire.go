//go:build wireinject

package startup

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/artifact"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/repository"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/repository/dao"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/service"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/web"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment"
	"github.com/BIRU-sketch/Skill-Sphere/internal/pkg/pdf"
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio"
	testioc "github.com/BIRU-sketch/Skill-Sphere/internal/test/ioc"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user"
	"github.com/google/wire"
)

// InitHandler 作品集走真实存储，发证事务里的折算才验得到
func InitHandler(converter pdf.Converter,
	userModule *user.Module,
	challengeModule *challenge.Module,
	enrollmentModule *enrollment.Module,
	portfolioModule *portfolio.Module,
	artifactModule *artifact.Module) *certificate.Handler {
	wire.Build(
		web.NewHandler,
		testioc.BaseSet,
		service.NewCertificateService,
		dao.NewGORMCertificateDAO,
		repository.NewCertificateRepository,
		initProducer,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.FieldsOf(new(*challenge.Module), "Svc"),
		wire.FieldsOf(new(*enrollment.Module), "Svc"),
		wire.FieldsOf(new(*portfolio.Module), "Svc"),
		wire.FieldsOf(new(*artifact.Module), "Storage"),
	)
	return new(certificate.Handler)
}
