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
	"time"

	"github.com/BIRU-sketch/Skill-Sphere/internal/pkg/ratelimit"
	"github.com/BIRU-sketch/Skill-Sphere/internal/test"
	testioc "github.com/BIRU-sketch/Skill-Sphere/internal/test/ioc"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/integration/startup"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/repository/dao"
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/web"
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
	"golang.org/x/crypto/bcrypt"
)

const uid = 123

type HandlerTestSuite struct {
	suite.Suite
	db     *egorm.Component
	server *egin.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	err := dao.InitTables(s.db)
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	hdl := startup.InitHandler(ratelimit.NewMemoryLimiter(5, time.Minute))
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	hdl.PublicRoutes(server.Engine)
	hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE table `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestRegister() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		req      web.RegisterReq
		wantCode int
		wantResp test.Result[web.Profile]
	}{
		{
			name:   "注册成功",
			before: func(t *testing.T) {},
			after: func(t *testing.T) {
				var u dao.User
				err := s.db.Where("email = ?", "alice@biru.dev").First(&u).Error
				require.NoError(t, err)
				assert.Equal(t, "student", u.Role)
				assert.NotEmpty(t, u.SN)
				assert.NotEqual(t, "Passw0rdA", u.Password)
				assert.True(t, u.Ctime > 0)
			},
			req: web.RegisterReq{
				Email:           "alice@biru.dev",
				Password:        "Passw0rdA",
				ConfirmPassword: "Passw0rdA",
				Nickname:        "alice",
				Role:            "student",
			},
			wantCode: 200,
			wantResp: test.Result[web.Profile]{},
		},
		{
			name: "邮箱重复",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.User{
					SN:       "sn-bob",
					Email:    "bob@biru.dev",
					Password: "whatever",
					Nickname: "bob",
					Role:     "student",
				}).Error
				require.NoError(t, err)
			},
			after: func(t *testing.T) {},
			req: web.RegisterReq{
				Email:           "bob@biru.dev",
				Password:        "Passw0rdA",
				ConfirmPassword: "Passw0rdA",
				Nickname:        "bob2",
				Role:            "student",
			},
			wantCode: 500,
			wantResp: test.Result[web.Profile]{
				Code: 501003,
				Msg:  "邮箱已经注册",
			},
		},
		{
			name:   "密码太弱",
			before: func(t *testing.T) {},
			after:  func(t *testing.T) {},
			req: web.RegisterReq{
				Email:           "carol@biru.dev",
				Password:        "weakpass",
				ConfirmPassword: "weakpass",
				Nickname:        "carol",
				Role:            "student",
			},
			wantCode: 500,
			wantResp: test.Result[web.Profile]{
				Code: 501002,
				Msg:  "输入不合法",
			},
		},
		{
			name:   "两次密码不一致",
			before: func(t *testing.T) {},
			after:  func(t *testing.T) {},
			req: web.RegisterReq{
				Email:           "dave@biru.dev",
				Password:        "Passw0rdA",
				ConfirmPassword: "Passw0rdB",
				Nickname:        "dave",
				Role:            "student",
			},
			wantCode: 200,
			wantResp: test.Result[web.Profile]{
				Code: 501002,
				Msg:  "输入不合法",
			},
		},
		{
			name:   "非法角色",
			before: func(t *testing.T) {},
			after:  func(t *testing.T) {},
			req: web.RegisterReq{
				Email:           "eve@biru.dev",
				Password:        "Passw0rdA",
				ConfirmPassword: "Passw0rdA",
				Nickname:        "eve",
				Role:            "superuser",
			},
			wantCode: 500,
			wantResp: test.Result[web.Profile]{
				Code: 501002,
				Msg:  "输入不合法",
			},
		},
	}

	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/users/register", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Profile]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantResp.Code != 0 {
				assert.Equal(t, tc.wantResp.Code, recorder.MustScan().Code)
			} else if recorder.Code == 200 {
				resp := recorder.MustScan()
				assert.Equal(t, tc.req.Email, resp.Data.Email)
				assert.NotEmpty(t, resp.Data.SN)
			}
			tc.after(t)
		})
	}
}

func (s *HandlerTestSuite) TestLogin() {
	hash, err := bcrypt.GenerateFromPassword([]byte("Passw0rdA"), bcrypt.DefaultCost)
	require.NoError(s.T(), err)
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		req      web.LoginReq
		wantCode int
		wantErrCode int
	}{
		{
			name: "登录成功",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.User{
					SN:       "sn-login",
					Email:    "login@biru.dev",
					Password: string(hash),
					Nickname: "login",
					Role:     "mentor",
				}).Error
				require.NoError(t, err)
			},
			req: web.LoginReq{
				Email:    "login@biru.dev",
				Password: "Passw0rdA",
			},
			wantCode: 200,
		},
		{
			name: "密码错误",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.User{
					SN:       "sn-login2",
					Email:    "login2@biru.dev",
					Password: string(hash),
					Nickname: "login2",
					Role:     "mentor",
				}).Error
				require.NoError(t, err)
			},
			req: web.LoginReq{
				Email:    "login2@biru.dev",
				Password: "WrongPass1",
			},
			wantCode:    500,
			wantErrCode: 501004,
		},
		{
			name:   "用户不存在",
			before: func(t *testing.T) {},
			req: web.LoginReq{
				Email:    "ghost@biru.dev",
				Password: "Passw0rdA",
			},
			wantCode:    500,
			wantErrCode: 501004,
		},
	}

	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/users/login", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Profile]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantErrCode != 0 {
				assert.Equal(t, tc.wantErrCode, recorder.MustScan().Code)
			} else {
				resp := recorder.MustScan()
				assert.Equal(t, "mentor", resp.Data.Role)
			}
		})
	}
}

func (s *HandlerTestSuite) TestLoginRateLimited() {
	t := s.T()
	hash, err := bcrypt.GenerateFromPassword([]byte("Passw0rdA"), bcrypt.DefaultCost)
	require.NoError(t, err)
	err = s.db.Create(&dao.User{
		SN:       "sn-limited",
		Email:    "limited@biru.dev",
		Password: string(hash),
		Nickname: "limited",
		Role:     "student",
	}).Error
	require.NoError(t, err)

	login := func(password string) *test.JSONResponseRecorder[web.Profile] {
		req, err := http.NewRequest(http.MethodPost,
			"/users/login", iox.NewJSONReader(web.LoginReq{
				Email:    "limited@biru.dev",
				Password: password,
			}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.Profile]()
		s.server.ServeHTTP(recorder, req)
		return recorder
	}

	// 连错五次把窗口占满
	for i := 0; i < 5; i++ {
		recorder := login("WrongPass1")
		require.Equal(t, 500, recorder.Code)
		assert.Equal(t, 501004, recorder.MustScan().Code)
	}
	// 第六次直接 429，密码对了也不行
	recorder := login("Passw0rdA")
	assert.Equal(t, 429, recorder.Code)
}

func (s *HandlerTestSuite) TestLoginClearsRateLimit() {
	t := s.T()
	hash, err := bcrypt.GenerateFromPassword([]byte("Passw0rdA"), bcrypt.DefaultCost)
	require.NoError(t, err)
	err = s.db.Create(&dao.User{
		SN:       "sn-cleared",
		Email:    "cleared@biru.dev",
		Password: string(hash),
		Nickname: "cleared",
		Role:     "student",
	}).Error
	require.NoError(t, err)

	login := func(password string) *test.JSONResponseRecorder[web.Profile] {
		req, err := http.NewRequest(http.MethodPost,
			"/users/login", iox.NewJSONReader(web.LoginReq{
				Email:    "cleared@biru.dev",
				Password: password,
			}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.Profile]()
		s.server.ServeHTTP(recorder, req)
		return recorder
	}

	// 错四次还没到上限
	for i := 0; i < 4; i++ {
		require.Equal(t, 500, login("WrongPass1").Code)
	}
	// 登录成功清掉计数
	require.Equal(t, 200, login("Passw0rdA").Code)
	// 计数归零，又能从头错起
	assert.Equal(t, 500, login("WrongPass1").Code)
}

func (s *HandlerTestSuite) TestProfile() {
	t := s.T()
	err := s.db.Create(&dao.User{
		Id:       uid,
		SN:       "sn-profile",
		Email:    "profile@biru.dev",
		Password: "whatever",
		Nickname: "profile",
		Role:     "student",
		Bio:      "hello",
		Skills:   sqlx.JsonColumn[[]string]{Val: []string{"go", "sql"}, Valid: true},
	}).Error
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodGet, "/users/profile", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Equal(t, "profile", resp.Data.Nickname)
	assert.Equal(t, []string{"go", "sql"}, resp.Data.Skills)
	// 密码绝不能出现在响应里
	assert.NotContains(t, recorder.Body.String(), "whatever")
}

func (s *HandlerTestSuite) TestEdit() {
	t := s.T()
	err := s.db.Create(&dao.User{
		Id:       uid,
		SN:       "sn-edit",
		Email:    "edit@biru.dev",
		Password: "whatever",
		Nickname: "old",
		Role:     "student",
	}).Error
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost,
		"/users/profile", iox.NewJSONReader(web.EditReq{
			Nickname: "new",
			Bio:      "new bio",
			Skills:   []string{"rust"},
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	var u dao.User
	err = s.db.Where("id = ?", uid).First(&u).Error
	require.NoError(t, err)
	assert.Equal(t, "new", u.Nickname)
	assert.Equal(t, "new bio", u.Bio)
	assert.Equal(t, []string{"rust"}, u.Skills.Val)
	// 敏感字段不动
	assert.Equal(t, "edit@biru.dev", u.Email)
	assert.Equal(t, "student", u.Role)
}

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
