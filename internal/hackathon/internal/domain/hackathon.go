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
	"time"
	"unicode/utf8"

	"github.com/ecodeclub/ekit/slice"
)

type Hackathon struct {
	ID            int64
	Title         string
	Description   string
	Rules         string
	Category      Category
	OrganizerID   int64
	OrganizerName string
	// Judges 评委的用户 id
	Judges   []int64
	Criteria []Criterion
	// Announcements 只追加，不修改不删除
	Announcements        []Announcement
	StartAt              time.Time
	EndAt                time.Time
	RegistrationDeadline time.Time
	Status               Status
	Ctime                time.Time
	Utime                time.Time
}

// Valid 创建前的基本校验
func (h Hackathon) Valid() bool {
	// 按字符数算，中文标题不能靠字节数蒙混过关
	if utf8.RuneCountInString(h.Title) < 5 ||
		utf8.RuneCountInString(h.Description) < 20 {
		return false
	}
	if !h.Category.IsValid() {
		return false
	}
	for _, c := range h.Criteria {
		if !c.Valid() {
			return false
		}
	}
	// 报名截止不能晚于开始，开始必须早于结束
	if h.RegistrationDeadline.After(h.StartAt) {
		return false
	}
	return h.StartAt.Before(h.EndAt)
}

// RegistrationOpen 发布中且报名还没截止
func (h Hackathon) RegistrationOpen(now time.Time) bool {
	return h.Status == StatusPublished && now.Before(h.RegistrationDeadline)
}

type Category string

const (
	CategoryHackathon Category = "Hackathon"
	CategoryCTF       Category = "CTF"
)

func (c Category) IsValid() bool {
	return c == CategoryHackathon || c == CategoryCTF
}

func (c Category) String() string {
	return string(c)
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// CriterionKeys 评分维度的全集，评委打分只能从里面选
var CriterionKeys = []string{
	"innovation",
	"technicalImplementation",
	"design",
	"impact",
	"presentation",
}

type Criterion struct {
	Key    string  `json:"key"`
	Weight float64 `json:"weight"`
}

func (c Criterion) Valid() bool {
	return slice.Contains(CriterionKeys, c.Key) && c.Weight > 0
}

type Announcement struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	// Audience all、participants 或 organizers
	Audience string `json:"audience"`
	// 毫秒时间戳
	CreatedAt int64 `json:"createdAt"`
}

type Team struct {
	ID          int64
	Name        string
	HackathonID int64
	LeaderID    int64
	// Members 含队长
	Members []int64
	Ctime   time.Time
	Utime   time.Time
}

func (t Team) HasMember(uid int64) bool {
	return slice.Contains(t.Members, uid)
}
