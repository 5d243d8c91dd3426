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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateScore(t *testing.T) {
	testCases := []struct {
		name   string
		totals []float64
		want   float64
	}{
		{
			name:   "没有反馈",
			totals: nil,
			want:   0,
		},
		{
			name:   "单个反馈",
			totals: []float64{85},
			want:   85,
		},
		{
			name:   "整除",
			totals: []float64{80, 90},
			want:   85,
		},
		{
			name:   "保留一位小数",
			totals: []float64{80, 85, 92},
			// 257/3 = 85.666...
			want: 85.7,
		},
		{
			name:   "四舍",
			totals: []float64{70, 70, 71},
			// 211/3 = 70.333...
			want: 70.3,
		},
		{
			name:   "含零分",
			totals: []float64{0, 100},
			want:   50,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fs := make([]Feedback, 0, len(tc.totals))
			for _, total := range tc.totals {
				fs = append(fs, Feedback{TotalScore: total})
			}
			assert.Equal(t, tc.want, AggregateScore(fs))
		})
	}
}

func TestRank(t *testing.T) {
	subs := []Submission{
		{ID: 3, TeamID: 30, TeamName: "甲", AggregateScore: 91},
		{ID: 1, TeamID: 10, TeamName: "乙", AggregateScore: 91},
		{ID: 2, TeamID: 20, TeamName: "丙", AggregateScore: 72.5},
		{ID: 4, TeamID: 40, TeamName: "丁", AggregateScore: 40},
	}
	entries := Rank(subs)
	assert.Len(t, entries, 4)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}
	// 同分沿用传入顺序
	assert.Equal(t, int64(3), entries[0].SubmissionID)
	assert.Equal(t, int64(1), entries[1].SubmissionID)
	assert.Equal(t, int64(4), entries[3].SubmissionID)
	assert.Equal(t, 72.5, entries[2].AggregateScore)
}

func TestSubmissionValid(t *testing.T) {
	valid := Submission{
		HackathonID: 1,
		TeamID:      2,
		Title:       "智能排课",
		Description: "用约束求解器排课表",
		RepoURL:     "https://github.com/demo/scheduler",
	}
	assert.True(t, valid.Valid())

	noRepo := valid
	noRepo.RepoURL = ""
	assert.False(t, noRepo.Valid())

	noTeam := valid
	noTeam.TeamID = 0
	assert.False(t, noTeam.Valid())
}
