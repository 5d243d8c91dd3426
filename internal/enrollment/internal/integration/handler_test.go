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
	"net/http"
	"strings"
	"testing"

	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge"
	challengemocks "github.com/BIRU-sketch/Skill-Sphere/internal/challenge/mocks"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/integration/startup"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/repository/dao"
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/web"
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
	studentUid  = 123
	mentorUid   = 456
	challengeId = 7
)

type HandlerTestSuite struct {
	suite.Suite
	db *egorm.Component
	// studentServer 和 mentorServer 各带一个身份
	studentServer *egin.Component
	mentorServer  *egin.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	err := dao.InitTables(s.db)
	require.NoError(s.T(), err)
	ctrl := gomock.NewController(s.T())
	userSvc := usermocks.NewMockUserService(ctrl)
	userSvc.EXPECT().Profile(gomock.Any(), int64(studentUid)).
		Return(user.User{
			ID:       studentUid,
			Nickname: "学生小王",
			Email:    "student@biru.dev",
		}, nil).AnyTimes()
	challengeSvc := challengemocks.NewMockChallengeService(ctrl)
	challengeSvc.EXPECT().Detail(gomock.Any(), int64(challengeId)).
		Return(challenge.Challenge{
			ID:       challengeId,
			Title:    "实现一个短链接服务",
			MentorID: mentorUid,
		}, nil).AnyTimes()
	hdl := startup.InitHandler(
		&user.Module{Svc: userSvc},
		&challenge.Module{Svc: challengeSvc})
	s.studentServer = s.newServer(hdl, studentUid, "student")
	s.mentorServer = s.newServer(hdl, mentorUid, "mentor")
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
	err := s.db.Exec("TRUNCATE table `enrollments`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) apply() int64 {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/enrollments/apply", iox.NewJSONReader(web.ApplyReq{
			ChallengeId: challengeId,
			Essay:       strings.Repeat("为什么我想参加这个挑战", 10),
			Motivation:  strings.Repeat("动机", 25),
			Experience:  strings.Repeat("经验", 25),
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[int64]()
	s.studentServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	id := recorder.MustScan().Data
	require.True(t, id > 0)
	return id
}

func (s *HandlerTestSuite) updateStatus(server *egin.Component, id int64, status string) *test.JSONResponseRecorder[web.Enrollment] {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/enrollments/status", iox.NewJSONReader(web.UpdateStatusReq{
			Id:     id,
			Status: status,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Enrollment]()
	server.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) TestApply() {
	t := s.T()
	id := s.apply()
	var e dao.Enrollment
	err := s.db.Where("id = ?", id).First(&e).Error
	require.NoError(t, err)
	assert.Equal(t, "enrolled", e.Status)
	assert.Equal(t, "实现一个短链接服务", e.ChallengeTitle)
	assert.Equal(t, "学生小王", e.StudentName)
	assert.Equal(t, "student@biru.dev", e.StudentEmail)
	assert.True(t, e.EnrolledAt > 0)
	assert.Zero(t, e.SubmittedAt)
}

func (s *HandlerTestSuite) TestApplyTwice() {
	t := s.T()
	s.apply()
	req, err := http.NewRequest(http.MethodPost,
		"/enrollments/apply", iox.NewJSONReader(web.ApplyReq{
			ChallengeId: challengeId,
			Essay:       strings.Repeat("再报一次试试", 20),
			Motivation:  strings.Repeat("动机", 25),
			Experience:  strings.Repeat("经验", 25),
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[int64]()
	s.studentServer.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 503003, recorder.MustScan().Code)
	var cnt int64
	err = s.db.Model(&dao.Enrollment{}).
		Where("student_id = ? AND challenge_id = ?", studentUid, challengeId).
		Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func (s *HandlerTestSuite) TestApplyEssayTooShort() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/enrollments/apply", iox.NewJSONReader(web.ApplyReq{
			ChallengeId: challengeId,
			Essay:       "太短了",
			Motivation:  strings.Repeat("动机", 25),
			Experience:  strings.Repeat("经验", 25),
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[int64]()
	s.studentServer.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 503002, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestFullLifecycle() {
	t := s.T()
	id := s.apply()

	// 导师通过申请
	recorder := s.updateStatus(s.mentorServer, id, "in-progress")
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, "in-progress", recorder.MustScan().Data.Status)

	// 学生提交作业
	recorder = s.updateStatus(s.studentServer, id, "submitted")
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Equal(t, "submitted", resp.Data.Status)
	assert.True(t, resp.Data.SubmittedAt > 0)

	// 导师认证通过
	recorder = s.updateStatus(s.mentorServer, id, "approved")
	require.Equal(t, 200, recorder.Code)
	resp = recorder.MustScan()
	assert.Equal(t, "approved", resp.Data.Status)
	assert.True(t, resp.Data.ReviewedAt > 0)
}

func (s *HandlerTestSuite) TestIllegalTransitions() {
	testCases := []struct {
		name string
		// setup 把记录推进到初始状态
		setup  func(id int64)
		target string
	}{
		{
			name:   "没审核就提交",
			setup:  func(id int64) {},
			target: "submitted",
		},
		{
			name:   "没提交就发证",
			setup:  func(id int64) {},
			target: "approved",
		},
		{
			name: "跳过提交直接发证",
			setup: func(id int64) {
				r := s.updateStatus(s.mentorServer, id, "in-progress")
				require.Equal(s.T(), 200, r.Code)
			},
			target: "approved",
		},
		{
			name: "终态之后还想改",
			setup: func(id int64) {
				r := s.updateStatus(s.mentorServer, id, "rejected")
				require.Equal(s.T(), 200, r.Code)
			},
			target: "in-progress",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			id := s.apply()
			tc.setup(id)
			recorder := s.updateStatus(s.mentorServer, id, tc.target)
			require.Equal(t, 500, recorder.Code)
			assert.Equal(t, 503005, recorder.MustScan().Code)
			s.TearDownTest()
		})
	}
}

func (s *HandlerTestSuite) TestOperatorGuards() {
	t := s.T()
	id := s.apply()

	// 学生自己想通过申请
	recorder := s.updateStatus(s.studentServer, id, "in-progress")
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 503006, recorder.MustScan().Code)

	r := s.updateStatus(s.mentorServer, id, "in-progress")
	require.Equal(t, 200, r.Code)

	// 导师替学生交作业
	recorder = s.updateStatus(s.mentorServer, id, "submitted")
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 503006, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestMineNewestFirst() {
	t := s.T()
	err := s.db.Create(&dao.Enrollment{
		Id: 1, StudentId: studentUid, ChallengeId: 100,
		Status: "enrolled", EnrolledAt: 1000,
	}).Error
	require.NoError(t, err)
	err = s.db.Create(&dao.Enrollment{
		Id: 2, StudentId: studentUid, ChallengeId: 200,
		Status: "enrolled", EnrolledAt: 2000,
	}).Error
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodGet, "/enrollments/mine", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.EnrollmentList]()
	s.studentServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	list := recorder.MustScan().Data.Enrollments
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].Id)
	assert.Equal(t, int64(1), list[1].Id)
}

func TestEnrollmentHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
