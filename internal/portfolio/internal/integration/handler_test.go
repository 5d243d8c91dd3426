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
	"net/http"
	"testing"
	"time"

	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/integration/startup"
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/repository"
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/repository/dao"
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/service"
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/web"
	"github.com/BIRU-sketch/Skill-Sphere/internal/test"
	testioc "github.com/BIRU-sketch/Skill-Sphere/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	studentUid = 123
	otherUid   = 124
)

type HandlerTestSuite struct {
	suite.Suite
	db          *egorm.Component
	svc         service.PortfolioService
	server      *egin.Component
	otherServer *egin.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	err := dao.InitTables(s.db)
	require.NoError(s.T(), err)
	s.svc = service.NewPortfolioService(
		repository.NewPortfolioRepository(dao.NewGORMPortfolioDAO(s.db)))
	hdl := startup.InitHandler()
	s.server = s.newServer(hdl, studentUid)
	s.otherServer = s.newServer(hdl, otherUid)
}

func (s *HandlerTestSuite) newServer(hdl *web.Handler, uid int64) *egin.Component {
	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{"role": "student"},
		}))
	})
	hdl.PublicRoutes(server.Engine)
	hdl.PrivateRoutes(server.Engine)
	return server
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE table `portfolios`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) fold(certId, challengeId int64, title string, skills []string) {
	s.T().Helper()
	err := s.svc.FoldIn(context.Background(), domain.Fold{
		StudentID:      studentUid,
		StudentName:    "学员王",
		StudentEmail:   "student@biru.dev",
		Bio:            "在学 Go 的后端新人",
		CertificateID:  certId,
		ChallengeID:    challengeId,
		ChallengeTitle: title,
		Category:       "backend",
		Skills:         skills,
		CompletedAt:    time.Now(),
	})
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestMine() {
	t := s.T()
	s.fold(1, 11, "实现一个短链接服务", []string{"Go", "Redis"})
	s.fold(2, 12, "实现一个秒杀系统", []string{"Go", "Kafka"})

	req, err := http.NewRequest(http.MethodGet, "/portfolios/mine", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Portfolio]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	p := recorder.MustScan().Data
	assert.Equal(t, int64(studentUid), p.StudentId)
	assert.Equal(t, "学员王", p.StudentName)
	assert.Equal(t, 2, p.CertificateCount)
	assert.Equal(t, 200, p.TotalPoints)
	// 技能取并集，重复的 Go 只留一个
	assert.Equal(t, []string{"Go", "Redis", "Kafka"}, p.Skills)
	require.Len(t, p.CompletedChallenges, 2)
	assert.Equal(t, "实现一个短链接服务", p.CompletedChallenges[0].ChallengeTitle)
	assert.True(t, p.Public)
}

func (s *HandlerTestSuite) TestMineNotFound() {
	t := s.T()
	req, err := http.NewRequest(http.MethodGet, "/portfolios/mine", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Portfolio]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 505002, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestDetail() {
	t := s.T()
	s.fold(1, 11, "实现一个短链接服务", []string{"Go"})

	// 默认公开，其他人能看
	req, err := http.NewRequest(http.MethodPost,
		"/portfolios/detail", iox.NewJSONReader(web.StudentIdReq{StudentId: studentUid}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Portfolio]()
	s.otherServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 1, recorder.MustScan().Data.CertificateCount)
}

func (s *HandlerTestSuite) TestDetailPrivate() {
	t := s.T()
	s.fold(1, 11, "实现一个短链接服务", []string{"Go"})

	// 本人设为私密
	req, err := http.NewRequest(http.MethodPost, "/portfolios/visibility", nil)
	require.NoError(t, err)
	toggleRecorder := test.NewJSONResponseRecorder[bool]()
	s.server.ServeHTTP(toggleRecorder, req)
	require.Equal(t, 200, toggleRecorder.Code)
	assert.False(t, toggleRecorder.MustScan().Data)

	// 其他人看不了
	req, err = http.NewRequest(http.MethodPost,
		"/portfolios/detail", iox.NewJSONReader(web.StudentIdReq{StudentId: studentUid}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Portfolio]()
	s.otherServer.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 505003, recorder.MustScan().Code)

	// 本人随时能看
	req, err = http.NewRequest(http.MethodPost,
		"/portfolios/detail", iox.NewJSONReader(web.StudentIdReq{StudentId: studentUid}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	ownRecorder := test.NewJSONResponseRecorder[web.Portfolio]()
	s.server.ServeHTTP(ownRecorder, req)
	require.Equal(t, 200, ownRecorder.Code)
	assert.False(t, ownRecorder.MustScan().Data.Public)
}

func (s *HandlerTestSuite) TestToggleVisibilityNotFound() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/portfolios/visibility", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[bool]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 505002, recorder.MustScan().Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
