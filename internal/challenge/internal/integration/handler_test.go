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
	"testing"

	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/integration/startup"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/repository/dao"
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/web"
	"github.com/BIRU-sketch/Skill-Sphere/internal/test"
	testioc "github.com/BIRU-sketch/Skill-Sphere/internal/test/ioc"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user"
	usermocks "github.com/BIRU-sketch/Skill-Sphere/internal/user/mocks"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/sqlx"
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

const mentorUid = 234

type HandlerTestSuite struct {
	suite.Suite
	db     *egorm.Component
	server *egin.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	err := dao.InitTables(s.db)
	require.NoError(s.T(), err)
	ctrl := gomock.NewController(s.T())
	userSvc := usermocks.NewMockUserService(ctrl)
	userSvc.EXPECT().Profile(gomock.Any(), gomock.Any()).
		Return(user.User{ID: mentorUid, Nickname: "导师张"}, nil).AnyTimes()
	hdl := startup.InitHandler(&user.Module{Svc: userSvc})
	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  mentorUid,
			Data: map[string]string{"role": "mentor"},
		}))
	})
	hdl.PublicRoutes(server.Engine)
	hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE table `challenges`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestCreate() {
	testCases := []struct {
		name     string
		req      web.SaveReq
		wantCode int
		wantErr  int
		after    func(t *testing.T, id int64)
	}{
		{
			name: "创建成功",
			req: web.SaveReq{
				Title:        "实现一个短链接服务",
				Description:  "从零实现短链接生成和跳转，覆盖存储和缓存设计",
				Category:     "backend",
				Difficulty:   "intermediate",
				Requirements: []string{"会写 Go", "了解 Redis"},
				LearningOutcomes: []string{
					"缓存设计",
				},
			},
			wantCode: 200,
			after: func(t *testing.T, id int64) {
				var c dao.Challenge
				err := s.db.Where("id = ?", id).First(&c).Error
				require.NoError(t, err)
				assert.Equal(t, "active", c.Status)
				assert.Equal(t, int64(mentorUid), c.MentorId)
				assert.Equal(t, "导师张", c.MentorName)
				assert.Equal(t, []string{"会写 Go", "了解 Redis"}, c.Requirements.Val)
			},
		},
		{
			name: "标题太短",
			req: web.SaveReq{
				Title:        "短链",
				Description:  "从零实现短链接生成和跳转，覆盖存储和缓存设计",
				Difficulty:   "beginner",
				Requirements: []string{"会写 Go"},
			},
			wantCode: 500,
			wantErr:  502002,
		},
		{
			// 7 个字 21 个字节，字节数骗不过字符数下限
			name: "描述太短",
			req: web.SaveReq{
				Title:        "实现一个短链接服务",
				Description:  "很棒的挑战描述",
				Difficulty:   "beginner",
				Requirements: []string{"会写 Go"},
			},
			wantCode: 500,
			wantErr:  502002,
		},
		{
			name: "难度非法",
			req: web.SaveReq{
				Title:        "实现一个短链接服务",
				Description:  "从零实现短链接生成和跳转，覆盖存储和缓存设计",
				Difficulty:   "impossible",
				Requirements: []string{"会写 Go"},
			},
			wantCode: 500,
			wantErr:  502002,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/challenges/create", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			resp := recorder.MustScan()
			if tc.wantErr != 0 {
				assert.Equal(t, tc.wantErr, resp.Code)
			} else {
				assert.True(t, resp.Data > 0)
				tc.after(t, resp.Data)
			}
		})
	}
}

func (s *HandlerTestSuite) TestUpdateNotOwner() {
	t := s.T()
	err := s.db.Create(&dao.Challenge{
		Id:          10,
		Title:       "别人的挑战啊",
		Description: "这是另一位导师创建的挑战，当前用户无权修改",
		Difficulty:  "beginner",
		Requirements: sqlx.JsonColumn[[]string]{
			Val: []string{"任意"}, Valid: true,
		},
		Status:   "active",
		MentorId: 999,
	}).Error
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost,
		"/challenges/update", iox.NewJSONReader(web.SaveReq{
			Id:           10,
			Title:        "想改成我的挑战",
			Description:  "这是另一位导师创建的挑战，当前用户无权修改",
			Difficulty:   "beginner",
			Requirements: []string{"任意"},
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 502004, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestListAndDetail() {
	t := s.T()
	for i := 1; i <= 3; i++ {
		status := "active"
		if i == 3 {
			status = "closed"
		}
		err := s.db.Create(&dao.Challenge{
			Id:          int64(i),
			Title:       "挑战挑战挑战",
			Description: "描述描述描述描述描述描述描述描述描述描述",
			Difficulty:  "beginner",
			Status:      status,
			MentorId:    mentorUid,
		}).Error
		require.NoError(t, err)
	}
	req, err := http.NewRequest(http.MethodPost,
		"/challenges/list", iox.NewJSONReader(web.Page{Limit: 10}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ChallengeList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	// 只返回 active，新的在前
	assert.Equal(t, int64(2), resp.Data.Total)
	require.Len(t, resp.Data.Challenges, 2)
	assert.Equal(t, int64(2), resp.Data.Challenges[0].Id)
	assert.Equal(t, int64(1), resp.Data.Challenges[1].Id)

	req, err = http.NewRequest(http.MethodPost,
		"/challenges/detail", iox.NewJSONReader(web.IdReq{Id: 1}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	detail := test.NewJSONResponseRecorder[web.Challenge]()
	s.server.ServeHTTP(detail, req)
	require.Equal(t, 200, detail.Code)
	assert.Equal(t, int64(1), detail.MustScan().Data.Id)
}

func TestChallengeHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
