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
	"math"
	"time"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusReviewed  Status = "reviewed"
)

func (s Status) String() string {
	return string(s)
}

type Submission struct {
	ID          int64
	HackathonID int64
	TeamID      int64
	// TeamName 冗余存一份，排行榜直接用
	TeamName    string
	SubmittedBy int64
	Title       string
	Description string
	TechStack   []string
	RepoURL     string
	DemoURL     string
	ArtifactURL string
	Feedbacks   []Feedback
	Status      Status
	// AggregateScore 冗余存储，按分数排序要靠它
	AggregateScore float64
	Ctime          time.Time
	Utime          time.Time
}

// Valid 提交时必填字段
func (s Submission) Valid() bool {
	return s.HackathonID > 0 && s.TeamID > 0 &&
		len(s.Title) > 0 && len(s.Description) > 0 && len(s.RepoURL) > 0
}

// Feedback 一位评委对一份作品的打分
type Feedback struct {
	JudgeID  int64 `json:"judgeId"`
	Comments string `json:"comments"`
	// Scores 各维度得分，key 受黑客松评分标准约束
	Scores map[string]float64 `json:"scores"`
	// TotalScore 评委直接给的总分，不从 Scores 推导
	TotalScore float64 `json:"totalScore"`
	CreatedAt  int64   `json:"createdAt"`
}

// AggregateScore 所有 totalScore 的算术平均，保留一位小数。
// 没有任何反馈时是 0。
func AggregateScore(fs []Feedback) float64 {
	if len(fs) == 0 {
		return 0
	}
	var sum float64
	for _, f := range fs {
		sum += f.TotalScore
	}
	return math.Round(sum/float64(len(fs))*10) / 10
}

// LeaderboardEntry 排行榜条目，纯读侧投影
type LeaderboardEntry struct {
	Rank           int     `json:"rank"`
	SubmissionID   int64   `json:"submissionId"`
	TeamID         int64   `json:"teamId"`
	TeamName       string  `json:"teamName"`
	Title          string  `json:"title"`
	AggregateScore float64 `json:"aggregateScore"`
}

// Rank 按聚合分降序排名，rank 从 1 开始。
// 同分之间的先后沿用传入顺序，不做二次排序。
func Rank(subs []Submission) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(subs))
	for i, s := range subs {
		entries = append(entries, LeaderboardEntry{
			Rank:           i + 1,
			SubmissionID:   s.ID,
			TeamID:         s.TeamID,
			TeamName:       s.TeamName,
			Title:          s.Title,
			AggregateScore: s.AggregateScore,
		})
	}
	return entries
}

// WinnerCertificate 给获奖队伍生成的证书
type WinnerCertificate struct {
	SubmissionID int64  `json:"submissionId"`
	TeamID       int64  `json:"teamId"`
	ArtifactURL  string `json:"artifactUrl"`
}
