package web

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/domain"
)

type StudentIdReq struct {
	StudentId int64 `json:"studentId"`
}

type Portfolio struct {
	StudentId           int64                        `json:"studentId"`
	StudentName         string                       `json:"studentName"`
	Bio                 string                       `json:"bio"`
	Skills              []string                     `json:"skills,omitempty"`
	CompletedChallenges []domain.CompletedChallenge  `json:"completedChallenges,omitempty"`
	CertificateCount    int                          `json:"certificateCount"`
	TotalPoints         int                          `json:"totalPoints"`
	Public              bool                         `json:"public"`
}

func newPortfolio(p domain.Portfolio) Portfolio {
	return Portfolio{
		StudentId:           p.StudentID,
		StudentName:         p.StudentName,
		Bio:                 p.Bio,
		Skills:              p.Skills,
		CompletedChallenges: p.CompletedChallenges,
		CertificateCount:    p.CertificateCount,
		TotalPoints:         p.TotalPoints,
		Public:              p.Public,
	}
}
