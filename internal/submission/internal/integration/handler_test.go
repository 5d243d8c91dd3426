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
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/BIRU-sketch/Skill-Sphere/internal/artifact"
	artifactmocks "github.com/BIRU-sketch/Skill-Sphere/internal/artifact/mocks"
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon"
	pdfmocks "github.com/BIRU-sketch/Skill-Sphere/internal/pkg/pdf/mocks"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/integration/startup"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/repository/cache"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/repository/dao"
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/web"
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
	leaderUid    = 123
	memberUid    = 124
	outsiderUid  = 125
	organizerUid = 456
	judgeUid     = 900
)

type HandlerTestSuite struct {
	suite.Suite
	db           *egorm.Component
	hackathonSvc hackathon.HackathonService

	leaderServer    *egin.Component
	outsiderServer  *egin.Component
	organizerServer *egin.Component
	judgeServer     *egin.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	err := dao.InitTables(s.db)
	require.NoError(s.T(), err)
	ctrl := gomock.NewController(s.T())

	userSvc := usermocks.NewMockUserService(ctrl)
	userSvc.EXPECT().Profile(gomock.Any(), gomock.Any()).
		Return(user.User{ID: organizerUid, Nickname: "组织者刘"}, nil).AnyTimes()

	converter := pdfmocks.NewMockConverter(ctrl)
	converter.EXPECT().ConvertHTMLToPDF(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte("%PDF-1.4 fake"), nil).AnyTimes()
	storage := artifactmocks.NewMockStorage(ctrl)
	storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, key, contentType string, data []byte) (string, error) {
			return "https://cdn.biru.dev/" + key, nil
		}).AnyTimes()

	hackathonModule := hackathon.InitModule(s.db, &user.Module{Svc: userSvc})
	s.hackathonSvc = hackathonModule.Svc
	hdl := startup.InitHandler(converter, hackathonModule, &artifact.Module{Storage: storage})

	s.leaderServer = s.newServer(hdl, leaderUid, "student")
	s.outsiderServer = s.newServer(hdl, outsiderUid, "student")
	s.organizerServer = s.newServer(hdl, organizerUid, "organizer")
	s.judgeServer = s.newServer(hdl, judgeUid, "judge")
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
	for _, table := range []string{"submissions", "teams", "hackathons"} {
		err := s.db.Exec("TRUNCATE table `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

// seedHackathon 建一个已发布、报名开放、带评委的黑客松，外加 leaderUid 带队的队伍
func (s *HandlerTestSuite) seedHackathon() (hackathonId, teamId int64) {
	t := s.T()
	ctx := context.Background()
	now := time.Now()
	hackathonId, err := s.hackathonSvc.Create(ctx, hackathon.Hackathon{
		Title:                "春季 Go 黑客松",
		Description:          "四十八小时做出一个能跑的后端服务，现场路演打分定名次",
		Category:             "Hackathon",
		OrganizerID:          organizerUid,
		Criteria:             []hackathon.Criterion{{Key: "innovation", Weight: 2}},
		RegistrationDeadline: now.Add(24 * time.Hour),
		StartAt:              now.Add(48 * time.Hour),
		EndAt:                now.Add(96 * time.Hour),
	})
	require.NoError(t, err)
	require.NoError(t, s.hackathonSvc.Publish(ctx, hackathonId, organizerUid))
	require.NoError(t, s.hackathonSvc.SetJudges(ctx, hackathonId, organizerUid, []int64{judgeUid, 901}))
	teamId, err = s.hackathonSvc.CreateTeam(ctx, hackathonId, leaderUid, "摸鱼小队")
	require.NoError(t, err)
	require.NoError(t, s.hackathonSvc.JoinTeam(ctx, teamId, memberUid))
	return hackathonId, teamId
}

func (s *HandlerTestSuite) submit(server *egin.Component, req web.SaveReq) *test.JSONResponseRecorder[int64] {
	t := s.T()
	httpReq, err := http.NewRequest(http.MethodPost,
		"/submissions/create", iox.NewJSONReader(req))
	httpReq.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[int64]()
	server.ServeHTTP(recorder, httpReq)
	return recorder
}

func (s *HandlerTestSuite) feedback(server *egin.Component, req web.FeedbackReq) *test.JSONResponseRecorder[web.Submission] {
	t := s.T()
	httpReq, err := http.NewRequest(http.MethodPost,
		"/submissions/feedback", iox.NewJSONReader(req))
	httpReq.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Submission]()
	server.ServeHTTP(recorder, httpReq)
	return recorder
}

func (s *HandlerTestSuite) TestCreate() {
	t := s.T()
	hackathonId, teamId := s.seedHackathon()
	r := s.submit(s.leaderServer, web.SaveReq{
		HackathonId: hackathonId,
		TeamId:      teamId,
		Title:       "智能排课",
		Description: "用约束求解器排课表",
		TechStack:   []string{"go", "mysql"},
		RepoUrl:     "https://github.com/demo/scheduler",
	})
	require.Equal(t, 200, r.Code)
	id := r.MustScan().Data
	require.True(t, id > 0)

	var sub dao.Submission
	err := s.db.Where("id = ?", id).First(&sub).Error
	require.NoError(t, err)
	assert.Equal(t, "submitted", sub.Status)
	assert.Equal(t, "摸鱼小队", sub.TeamName)
	assert.Equal(t, float64(0), sub.AggregateScore)
	assert.Equal(t, int64(leaderUid), sub.SubmittedBy)

	// 队员也能提交
	r = s.submit(s.leaderServer, web.SaveReq{
		HackathonId: hackathonId,
		TeamId:      teamId,
		Title:       "排课 2.0",
		Description: "加上教室容量约束",
		RepoUrl:     "https://github.com/demo/scheduler-v2",
	})
	require.Equal(t, 200, r.Code)
}

func (s *HandlerTestSuite) TestCreateMissingRepo() {
	t := s.T()
	hackathonId, teamId := s.seedHackathon()
	r := s.submit(s.leaderServer, web.SaveReq{
		HackathonId: hackathonId,
		TeamId:      teamId,
		Title:       "智能排课",
		Description: "用约束求解器排课表",
	})
	require.Equal(t, 500, r.Code)
	assert.Equal(t, 507002, r.MustScan().Code)
}

func (s *HandlerTestSuite) TestCreateNotMember() {
	t := s.T()
	hackathonId, teamId := s.seedHackathon()
	r := s.submit(s.outsiderServer, web.SaveReq{
		HackathonId: hackathonId,
		TeamId:      teamId,
		Title:       "蹭队作品",
		Description: "不在队伍里也想交",
		RepoUrl:     "https://github.com/demo/nope",
	})
	require.Equal(t, 500, r.Code)
	assert.Equal(t, 507004, r.MustScan().Code)
}

func (s *HandlerTestSuite) TestAttachFeedback() {
	t := s.T()
	hackathonId, teamId := s.seedHackathon()
	r := s.submit(s.leaderServer, web.SaveReq{
		HackathonId: hackathonId,
		TeamId:      teamId,
		Title:       "智能排课",
		Description: "用约束求解器排课表",
		RepoUrl:     "https://github.com/demo/scheduler",
	})
	require.Equal(t, 200, r.Code)
	id := r.MustScan().Data

	fr := s.feedback(s.judgeServer, web.FeedbackReq{
		SubmissionId: id,
		Comments:     "思路不错，文档太薄",
		Scores:       map[string]float64{"innovation": 90, "design": 70},
		TotalScore:   80,
	})
	require.Equal(t, 200, fr.Code)
	sub := fr.MustScan().Data
	assert.Equal(t, "reviewed", sub.Status)
	assert.Equal(t, float64(80), sub.AggregateScore)
	require.Len(t, sub.Feedbacks, 1)
	assert.Equal(t, int64(judgeUid), sub.Feedbacks[0].JudgeID)
	assert.True(t, sub.Feedbacks[0].CreatedAt > 0)

	// 同一评委再打一次，取平均
	fr = s.feedback(s.judgeServer, web.FeedbackReq{
		SubmissionId: id,
		Comments:     "复议",
		TotalScore:   91,
	})
	require.Equal(t, 200, fr.Code)
	sub = fr.MustScan().Data
	assert.Equal(t, 85.5, sub.AggregateScore)
	assert.Len(t, sub.Feedbacks, 2)
}

func (s *HandlerTestSuite) TestAttachFeedbackNotJudge() {
	t := s.T()
	hackathonId, teamId := s.seedHackathon()
	r := s.submit(s.leaderServer, web.SaveReq{
		HackathonId: hackathonId,
		TeamId:      teamId,
		Title:       "智能排课",
		Description: "用约束求解器排课表",
		RepoUrl:     "https://github.com/demo/scheduler",
	})
	require.Equal(t, 200, r.Code)
	id := r.MustScan().Data

	// 组织者不在评委名单里
	fr := s.feedback(s.organizerServer, web.FeedbackReq{
		SubmissionId: id,
		TotalScore:   100,
	})
	require.Equal(t, 500, fr.Code)
	assert.Equal(t, 507004, fr.MustScan().Code)
}

func (s *HandlerTestSuite) TestAttachFeedbackUnknownCriterion() {
	t := s.T()
	hackathonId, teamId := s.seedHackathon()
	r := s.submit(s.leaderServer, web.SaveReq{
		HackathonId: hackathonId,
		TeamId:      teamId,
		Title:       "智能排课",
		Description: "用约束求解器排课表",
		RepoUrl:     "https://github.com/demo/scheduler",
	})
	require.Equal(t, 200, r.Code)
	id := r.MustScan().Data

	fr := s.feedback(s.judgeServer, web.FeedbackReq{
		SubmissionId: id,
		Scores:       map[string]float64{"handsomeness": 100},
		TotalScore:   100,
	})
	require.Equal(t, 500, fr.Code)
	assert.Equal(t, 507002, fr.MustScan().Code)
}

func (s *HandlerTestSuite) TestLeaderboard() {
	t := s.T()
	hackathonId, teamId := s.seedHackathon()
	// 上一轮跑出来的缓存可能还没过期
	err := cache.NewLeaderboardECache(testioc.InitCache()).
		Del(context.Background(), hackathonId)
	require.NoError(t, err)
	scores := []float64{72.5, 91, 40}
	for i, score := range scores {
		_, err := dao.NewGORMSubmissionDAO(s.db).Insert(context.Background(), dao.Submission{
			HackathonId:    hackathonId,
			TeamId:         teamId,
			TeamName:       "摸鱼小队",
			SubmittedBy:    leaderUid,
			Title:          fmt.Sprintf("作品 %d", i+1),
			Description:    "占位",
			RepoUrl:        "https://github.com/demo/x",
			Status:         "reviewed",
			AggregateScore: score,
		})
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPost,
		"/submissions/leaderboard", iox.NewJSONReader(web.HackathonIdReq{HackathonId: hackathonId}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Leaderboard]()
	s.outsiderServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	entries := recorder.MustScan().Data.Entries
	require.Len(t, entries, 3)
	assert.Equal(t, []float64{91, 72.5, 40},
		[]float64{entries[0].AggregateScore, entries[1].AggregateScore, entries[2].AggregateScore})
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}

	// 第二次命中缓存，结果一致
	recorder = test.NewJSONResponseRecorder[web.Leaderboard]()
	s.outsiderServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, entries, recorder.MustScan().Data.Entries)
}

func (s *HandlerTestSuite) TestLeaderboardTie() {
	t := s.T()
	hackathonId, teamId := s.seedHackathon()
	// 清表会重置自增 id，别的用例可能缓存过同一个 id 的榜单，先清掉
	err := cache.NewLeaderboardECache(testioc.InitCache()).
		Del(context.Background(), hackathonId)
	require.NoError(t, err)
	// 同分的按创建时间降序，晚交的排前面
	for i, tc := range []struct {
		title string
		ctime int64
	}{
		{title: "早交的作品", ctime: 1000},
		{title: "晚交的作品", ctime: 2000},
	} {
		err := s.db.Create(&dao.Submission{
			HackathonId:    hackathonId,
			TeamId:         teamId,
			TeamName:       "摸鱼小队",
			SubmittedBy:    leaderUid,
			Title:          tc.title,
			Description:    "占位",
			RepoUrl:        fmt.Sprintf("https://github.com/demo/tie-%d", i),
			Status:         "reviewed",
			AggregateScore: 80,
			Ctime:          tc.ctime,
			Utime:          tc.ctime,
		}).Error
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPost,
		"/submissions/leaderboard", iox.NewJSONReader(web.HackathonIdReq{HackathonId: hackathonId}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Leaderboard]()
	s.outsiderServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	entries := recorder.MustScan().Data.Entries
	require.Len(t, entries, 2)
	assert.Equal(t, "晚交的作品", entries[0].Title)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "早交的作品", entries[1].Title)
	assert.Equal(t, 2, entries[1].Rank)
}

func (s *HandlerTestSuite) TestWinnerCertificates() {
	t := s.T()
	hackathonId, teamId := s.seedHackathon()
	d := dao.NewGORMSubmissionDAO(s.db)
	for i, score := range []float64{60, 95, 88} {
		_, err := d.Insert(context.Background(), dao.Submission{
			HackathonId:    hackathonId,
			TeamId:         teamId,
			TeamName:       "摸鱼小队",
			SubmittedBy:    leaderUid,
			Title:          fmt.Sprintf("作品 %d", i+1),
			Description:    "占位",
			RepoUrl:        "https://github.com/demo/x",
			Status:         "reviewed",
			AggregateScore: score,
		})
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPost,
		"/submissions/winner-certificates",
		iox.NewJSONReader(web.HackathonIdReq{HackathonId: hackathonId}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.WinnerCertificateList]()
	s.organizerServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	res := recorder.MustScan().Data
	// 不足十个就按实际数量发
	assert.Equal(t, 3, res.Generated)
	require.Len(t, res.Certificates, 3)
	for i, c := range res.Certificates {
		assert.Equal(t, int64(teamId), c.TeamID)
		assert.Equal(t,
			fmt.Sprintf("https://cdn.biru.dev/hackathons/%d/winners/rank-%d.pdf", hackathonId, i+1),
			c.ArtifactURL)
	}

	// 非组织者不能发证
	req, err = http.NewRequest(http.MethodPost,
		"/submissions/winner-certificates",
		iox.NewJSONReader(web.HackathonIdReq{HackathonId: hackathonId}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.WinnerCertificateList]()
	s.judgeServer.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 507004, recorder.MustScan().Code)
}

func TestSubmissionHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
