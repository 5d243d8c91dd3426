package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHackathon_Valid(t *testing.T) {
	base := Hackathon{
		Title:                "春季 Go 黑客松",
		Description:          "四十八小时做出一个能跑的后端服务，现场路演打分定名次",
		Category:             CategoryHackathon,
		RegistrationDeadline: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartAt:              time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		EndAt:                time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
	}
	testCases := []struct {
		name   string
		tweak  func(h *Hackathon)
		wanted bool
	}{
		{
			name:   "合法",
			tweak:  func(h *Hackathon) {},
			wanted: true,
		},
		{
			name:   "标题太短",
			tweak:  func(h *Hackathon) { h.Title = "黑客松" },
			wanted: false,
		},
		{
			// 中文字节数远超字符数，不能按字节放行
			name:   "描述太短",
			tweak:  func(h *Hackathon) { h.Description = "四十八小时的黑客松" },
			wanted: false,
		},
		{
			name:   "类别不认识",
			tweak:  func(h *Hackathon) { h.Category = "Gamejam" },
			wanted: false,
		},
		{
			name: "报名截止晚于开始",
			tweak: func(h *Hackathon) {
				h.RegistrationDeadline = h.StartAt.Add(time.Hour)
			},
			wanted: false,
		},
		{
			name:   "开始晚于结束",
			tweak:  func(h *Hackathon) { h.EndAt = h.StartAt.Add(-time.Hour) },
			wanted: false,
		},
		{
			name: "评分维度不在全集里",
			tweak: func(h *Hackathon) {
				h.Criteria = []Criterion{{Key: "vibes", Weight: 1}}
			},
			wanted: false,
		},
		{
			name: "权重必须为正",
			tweak: func(h *Hackathon) {
				h.Criteria = []Criterion{{Key: "innovation", Weight: 0}}
			},
			wanted: false,
		},
		{
			name: "合法的评分维度",
			tweak: func(h *Hackathon) {
				h.Criteria = []Criterion{
					{Key: "innovation", Weight: 2},
					{Key: "design", Weight: 1},
				}
			},
			wanted: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := base
			tc.tweak(&h)
			assert.Equal(t, tc.wanted, h.Valid())
		})
	}
}

func TestHackathon_RegistrationOpen(t *testing.T) {
	deadline := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	h := Hackathon{Status: StatusPublished, RegistrationDeadline: deadline}
	assert.True(t, h.RegistrationOpen(deadline.Add(-time.Hour)))
	assert.False(t, h.RegistrationOpen(deadline))
	h.Status = StatusDraft
	assert.False(t, h.RegistrationOpen(deadline.Add(-time.Hour)))
}

func TestTeam_HasMember(t *testing.T) {
	team := Team{LeaderID: 1, Members: []int64{1, 2}}
	assert.True(t, team.HasMember(2))
	assert.False(t, team.HasMember(3))
}
