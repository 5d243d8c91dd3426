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

	"github.com/ecodeclub/ekit/slice"
)

// PointsPerCertificate 每张证书固定加分
const PointsPerCertificate = 100

type Portfolio struct {
	ID           int64
	StudentID    int64
	StudentName  string
	StudentEmail string
	Bio          string
	// Skills 所有证书技能标签的并集，只增不减
	Skills              []string
	CompletedChallenges []CompletedChallenge
	CertificateCount    int
	TotalPoints         int
	Public              bool
	Utime               time.Time
}

type CompletedChallenge struct {
	ChallengeID    int64  `json:"challengeId"`
	ChallengeTitle string `json:"challengeTitle"`
	Category       string `json:"category"`
	CertificateID  int64  `json:"certificateId"`
	// 完成时间，毫秒时间戳
	CompletedAt int64 `json:"completedAt"`
}

// Fold 一张证书折算进作品集需要的全部信息
type Fold struct {
	StudentID      int64
	StudentName    string
	StudentEmail   string
	Bio            string
	CertificateID  int64
	ChallengeID    int64
	ChallengeTitle string
	Category       string
	Skills         []string
	CompletedAt    time.Time
}

// Apply 把一张证书折算进作品集：完成记录追加，
// 技能并集，证书数 +1，积分 +100
func (p *Portfolio) Apply(f Fold) {
	p.CompletedChallenges = append(p.CompletedChallenges, CompletedChallenge{
		ChallengeID:    f.ChallengeID,
		ChallengeTitle: f.ChallengeTitle,
		Category:       f.Category,
		CertificateID:  f.CertificateID,
		CompletedAt:    f.CompletedAt.UnixMilli(),
	})
	for _, s := range f.Skills {
		if !slice.Contains(p.Skills, s) {
			p.Skills = append(p.Skills, s)
		}
	}
	p.CertificateCount++
	p.TotalPoints += PointsPerCertificate
}

// NewPortfolio 第一张证书到来时用学生资料种一个作品集
func NewPortfolio(f Fold) Portfolio {
	p := Portfolio{
		StudentID:    f.StudentID,
		StudentName:  f.StudentName,
		StudentEmail: f.StudentEmail,
		Bio:          f.Bio,
		Public:       true,
	}
	p.Apply(f)
	return p
}
