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
)

// Enrollment 一个学生和一个挑战之间的关系，(student, challenge) 全局唯一
type Enrollment struct {
	ID          int64
	StudentID   int64
	StudentName string
	// 冗余的学生邮箱，发通知用
	StudentEmail string
	ChallengeID  int64
	// 冗余的挑战标题，列表展示用
	ChallengeTitle string
	Status         Status
	Essay          string
	Motivation     string
	Experience     string
	EnrolledAt     time.Time
	SubmittedAt    time.Time
	ReviewedAt     time.Time
	Utime          time.Time
}

type Status string

const (
	// StatusEnrolled 学生刚提交申请，等导师审核
	StatusEnrolled Status = "enrolled"
	// StatusInProgress 导师通过了申请，学生做题中
	StatusInProgress Status = "in-progress"
	// StatusSubmitted 学生交了作业，等导师评审
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// transitions 状态机，不在表里的跳转一律拒绝。
// approved 和 rejected 是终态。
var transitions = map[Status][]Status{
	StatusEnrolled:   {StatusInProgress, StatusRejected},
	StatusInProgress: {StatusSubmitted},
	StatusSubmitted:  {StatusApproved, StatusRejected},
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s Status) IsValid() bool {
	switch s {
	case StatusEnrolled, StatusInProgress, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s Status) String() string {
	return string(s)
}

const (
	MinEssayLen      = 100
	MinMotivationLen = 50
	MinExperienceLen = 50
)

// ValidApplication 申请文本的长度下限，按字符数算
func (e Enrollment) ValidApplication() bool {
	return utf8.RuneCountInString(e.Essay) >= MinEssayLen &&
		utf8.RuneCountInString(e.Motivation) >= MinMotivationLen &&
		utf8.RuneCountInString(e.Experience) >= MinExperienceLen
}
