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

//go:build e2e

package integration

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/BIRU-sketch/Skill-Sphere/internal/artifact"
	artifactmocks "github.com/BIRU-sketch/Skill-Sphere/internal/artifact/mocks"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/integration/startup"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/repository/dao"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/web"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge"
	challengemocks "github.com/BIRU-sketch/Skill-Sphere/internal/challenge/mocks"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment"
	enrollmentmocks "github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/mocks"
	pdfmocks "github.com/BIRU-sketch/Skill-Sphere/internal/pkg/pdf/mocks"
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio"
	"github.com/BIRU-sketch/Skill-Sphere/internal/test"
	testioc "github.com/BIRU-sketch/Skill-Sphere/internal/test/ioc"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user"
	usermocks "github.com/BIRU-sketch/Skill-Sphere/internal/user/mocks"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	studentUid = 123
	mentorUid  = 456

	goChallengeId    = 7
	redisChallengeId = 8

	// 各种状态的报名记录
	approvedEnrollmentId  = 11
	submittedEnrollmentId = 12
	redisEnrollmentId     = 13
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{12}$`)

type HandlerTestSuite struct {
	suite.Suite
	db              *egorm.Component
	portfolioModule *portfolio.Module
	studentServer   *egin.Component
	mentorServer    *egin.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	err := dao.InitTables(s.db)
	require.NoError(s.T(), err)
	s.portfolioModule = portfolio.InitModule(s.db)
	hdl := startup.InitHandler(
		s.newConverter(),
		s.newUserModule(),
		s.newChallengeModule(),
		s.newEnrollmentModule(),
		s.portfolioModule,
		s.newArtifactModule())
	s.studentServer = s.newServer(hdl, studentUid, "student")
	s.mentorServer = s.newServer(hdl, mentorUid, "mentor")
}

func (s *HandlerTestSuite) newUserModule() *user.Module {
	ctrl := gomock.NewController(s.T())
	userSvc := usermocks.NewMockUserService(ctrl)
	userSvc.EXPECT().Profile(gomock.Any(), int64(studentUid)).
		Return(user.User{
			ID:       studentUid,
			Nickname: "学生小王",
			Email:    "student@biru.dev",
			Bio:      "在学 Go 的后端新人",
		}, nil).AnyTimes()
	userSvc.EXPECT().Profile(gomock.Any(), int64(mentorUid)).
		Return(user.User{
			ID:       mentorUid,
			Nickname: "导师张",
			Email:    "mentor@biru.dev",
		}, nil).AnyTimes()
	return &user.Module{Svc: userSvc}
}

func (s *HandlerTestSuite) newChallengeModule() *challenge.Module {
	ctrl := gomock.NewController(s.T())
	challengeSvc := challengemocks.NewMockChallengeService(ctrl)
	challengeSvc.EXPECT().Detail(gomock.Any(), int64(goChallengeId)).
		Return(challenge.Challenge{
			ID:               goChallengeId,
			Title:            "实现一个短链接服务",
			Category:         "backend",
			MentorID:         mentorUid,
			LearningOutcomes: []string{"go", "mysql"},
		}, nil).AnyTimes()
	challengeSvc.EXPECT().Detail(gomock.Any(), int64(redisChallengeId)).
		Return(challenge.Challenge{
			ID:               redisChallengeId,
			Title:            "手写一个本地缓存",
			Category:         "backend",
			MentorID:         mentorUid,
			LearningOutcomes: []string{"go", "redis"},
		}, nil).AnyTimes()
	return &challenge.Module{Svc: challengeSvc}
}

func (s *HandlerTestSuite) newEnrollmentModule() *enrollment.Module {
	ctrl := gomock.NewController(s.T())
	enrollmentSvc := enrollmentmocks.NewMockEnrollmentService(ctrl)
	enrollmentSvc.EXPECT().Detail(gomock.Any(), int64(approvedEnrollmentId)).
		Return(enrollment.Enrollment{
			ID:          approvedEnrollmentId,
			StudentID:   studentUid,
			ChallengeID: goChallengeId,
			Status:      enrollment.StatusApproved,
		}, nil).AnyTimes()
	enrollmentSvc.EXPECT().Detail(gomock.Any(), int64(submittedEnrollmentId)).
		Return(enrollment.Enrollment{
			ID:          submittedEnrollmentId,
			StudentID:   studentUid,
			ChallengeID: goChallengeId,
			Status:      enrollment.StatusSubmitted,
		}, nil).AnyTimes()
	enrollmentSvc.EXPECT().Detail(gomock.Any(), int64(redisEnrollmentId)).
		Return(enrollment.Enrollment{
			ID:          redisEnrollmentId,
			StudentID:   studentUid,
			ChallengeID: redisChallengeId,
			Status:      enrollment.StatusApproved,
		}, nil).AnyTimes()
	return &enrollment.Module{Svc: enrollmentSvc}
}

func (s *HandlerTestSuite) newConverter() *pdfmocks.MockConverter {
	ctrl := gomock.NewController(s.T())
	converter := pdfmocks.NewMockConverter(ctrl)
	converter.EXPECT().ConvertHTMLToPDF(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte("%PDF-1.4 fake"), nil).AnyTimes()
	return converter
}

func (s *HandlerTestSuite) newArtifactModule() *artifact.Module {
	ctrl := gomock.NewController(s.T())
	store := artifactmocks.NewMockStorage(ctrl)
	store.EXPECT().Upload(gomock.Any(), gomock.Any(), "application/pdf", gomock.Any()).
		DoAndReturn(func(ctx interface{}, key, contentType string, data []byte) (string, error) {
			return "https://cdn.biru.dev/" + key, nil
		}).AnyTimes()
	return &artifact.Module{Storage: store}
}

func (s *HandlerTestSuite) newServer(hdl *web.Handler, uid int64, role string) *egin.Component {
	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{"role": role},
		}))
	})
	hdl.PublicRoutes(server.Engine)
	hdl.PrivateRoutes(server.Engine)
	return server
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE table `certificates`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE table `portfolios`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) issue(server *egin.Component,
	enrollmentId int64, skills []string) *test.JSONResponseRecorder[web.Certificate] {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/certificates/issue", iox.NewJSONReader(web.IssueReq{
			EnrollmentId: enrollmentId,
			Skills:       skills,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Certificate]()
	server.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) TestIssue() {
	t := s.T()
	recorder := s.issue(s.mentorServer, approvedEnrollmentId, []string{"go", "mysql"})
	require.Equal(t, 200, recorder.Code)
	cert := recorder.MustScan().Data
	assert.Regexp(t, codePattern, cert.Code)
	assert.Equal(t, "学生小王", cert.StudentName)
	assert.Equal(t, "导师张", cert.MentorName)
	assert.Equal(t, "实现一个短链接服务", cert.ChallengeTitle)
	assert.Equal(t, "https://cdn.biru.dev/certificates/"+cert.Code+".pdf", cert.ArtifactURL)

	var c dao.Certificate
	err := s.db.Where("enrollment_id = ?", approvedEnrollmentId).First(&c).Error
	require.NoError(t, err)
	assert.Equal(t, cert.Code, c.Code)
	assert.True(t, c.IssuedAt > 0)

	// 首张证书要把作品集一并建出来
	p, err := s.portfolioModule.Svc.Get(context.Background(), studentUid, studentUid)
	require.NoError(t, err)
	assert.Equal(t, 1, p.CertificateCount)
	assert.Equal(t, 100, p.TotalPoints)
	assert.ElementsMatch(t, []string{"go", "mysql"}, p.Skills)
	require.Len(t, p.CompletedChallenges, 1)
	assert.Equal(t, cert.Id, p.CompletedChallenges[0].CertificateID)
	assert.Equal(t, "在学 Go 的后端新人", p.Bio)
}

func (s *HandlerTestSuite) TestIssueSecondCertificate() {
	t := s.T()
	r := s.issue(s.mentorServer, approvedEnrollmentId, nil)
	require.Equal(t, 200, r.Code)
	// 不传技能就用挑战的学习成果
	assert.ElementsMatch(t, []string{"go", "mysql"}, r.MustScan().Data.Skills)

	r = s.issue(s.mentorServer, redisEnrollmentId, nil)
	require.Equal(t, 200, r.Code)

	p, err := s.portfolioModule.Svc.Get(context.Background(), studentUid, studentUid)
	require.NoError(t, err)
	assert.Equal(t, 2, p.CertificateCount)
	assert.Equal(t, 200, p.TotalPoints)
	// 技能取并集，go 只出现一次
	assert.ElementsMatch(t, []string{"go", "mysql", "redis"}, p.Skills)
	assert.Len(t, p.CompletedChallenges, 2)
}

func (s *HandlerTestSuite) TestIssueNotApproved() {
	t := s.T()
	recorder := s.issue(s.mentorServer, submittedEnrollmentId, nil)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 504003, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestIssueNotMentor() {
	t := s.T()
	recorder := s.issue(s.studentServer, approvedEnrollmentId, nil)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 504004, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestIssueTwice() {
	t := s.T()
	r := s.issue(s.mentorServer, approvedEnrollmentId, nil)
	require.Equal(t, 200, r.Code)
	recorder := s.issue(s.mentorServer, approvedEnrollmentId, nil)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 504005, recorder.MustScan().Code)

	var cnt int64
	err := s.db.Model(&dao.Certificate{}).
		Where("enrollment_id = ?", approvedEnrollmentId).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
	// 回滚之后作品集也不能多折算一次
	p, err := s.portfolioModule.Svc.Get(context.Background(), studentUid, studentUid)
	require.NoError(t, err)
	assert.Equal(t, 1, p.CertificateCount)
	assert.Equal(t, 100, p.TotalPoints)
}

func (s *HandlerTestSuite) TestUploadFailureAborts() {
	t := s.T()
	ctrl := gomock.NewController(t)
	store := artifactmocks.NewMockStorage(ctrl)
	store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("对象存储挂了")).AnyTimes()
	hdl := startup.InitHandler(
		s.newConverter(),
		s.newUserModule(),
		s.newChallengeModule(),
		s.newEnrollmentModule(),
		s.portfolioModule,
		&artifact.Module{Storage: store})
	server := s.newServer(hdl, mentorUid, "mentor")

	req, err := http.NewRequest(http.MethodPost,
		"/certificates/issue", iox.NewJSONReader(web.IssueReq{
			EnrollmentId: approvedEnrollmentId,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Certificate]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 504001, recorder.MustScan().Code)

	// 上传失败要在入库之前中止
	var cnt int64
	err = s.db.Model(&dao.Certificate{}).Count(&cnt).Error
	require.NoError(t, err)
	assert.Zero(t, cnt)
}

func (s *HandlerTestSuite) TestVerify() {
	t := s.T()
	r := s.issue(s.mentorServer, approvedEnrollmentId, nil)
	require.Equal(t, 200, r.Code)
	code := r.MustScan().Data.Code

	req, err := http.NewRequest(http.MethodPost,
		"/certificates/verify", iox.NewJSONReader(web.VerifyReq{Code: code}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Certificate]()
	s.studentServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, "实现一个短链接服务", recorder.MustScan().Data.ChallengeTitle)

	req, err = http.NewRequest(http.MethodPost,
		"/certificates/verify", iox.NewJSONReader(web.VerifyReq{Code: "NOSUCHCODE12"}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.Certificate]()
	s.studentServer.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 504002, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestMine() {
	t := s.T()
	r := s.issue(s.mentorServer, approvedEnrollmentId, nil)
	require.Equal(t, 200, r.Code)
	r = s.issue(s.mentorServer, redisEnrollmentId, nil)
	require.Equal(t, 200, r.Code)

	req, err := http.NewRequest(http.MethodGet, "/certificates/mine", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.CertificateList]()
	s.studentServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Len(t, recorder.MustScan().Data.Certificates, 2)
}

func TestCertificateHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
