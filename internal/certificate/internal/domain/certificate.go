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
	"math/rand/v2"
	"time"
)

// Certificate 签发之后不可变
type Certificate struct {
	ID   int64
	Code string
	// EnrollmentID 对应的报名记录，一条报名只发一张
	EnrollmentID   int64
	StudentID      int64
	StudentName    string
	ChallengeID    int64
	ChallengeTitle string
	MentorID       int64
	MentorName     string
	Skills         []string
	ArtifactURL    string
	IssuedAt       time.Time
}

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// CodeLength 验证码长度
	CodeLength = 12
)

// GenerateCode 12 位大写字母加数字。不查重，
// 36^12 的空间里撞上的概率可以忽略
func GenerateCode() string {
	b := make([]byte, CodeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(b)
}
