package web

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type IssueReq struct {
	EnrollmentId int64 `json:"enrollmentId"`
	// Skills 可以不传，默认用挑战的学习成果
	Skills []string `json:"skills"`
}

type VerifyReq struct {
	Code string `json:"code"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type Certificate struct {
	Id             int64    `json:"id"`
	Code           string   `json:"code"`
	EnrollmentId   int64    `json:"enrollmentId"`
	StudentId      int64    `json:"studentId"`
	StudentName    string   `json:"studentName"`
	ChallengeId    int64    `json:"challengeId"`
	ChallengeTitle string   `json:"challengeTitle"`
	MentorId       int64    `json:"mentorId"`
	MentorName     string   `json:"mentorName"`
	Skills         []string `json:"skills"`
	ArtifactURL    string   `json:"artifactUrl"`
	// 毫秒时间戳
	IssuedAt int64 `json:"issuedAt"`
}

type CertificateList struct {
	Certificates []Certificate `json:"certificates"`
}

func newCertificate(c domain.Certificate) Certificate {
	return Certificate{
		Id:             c.ID,
		Code:           c.Code,
		EnrollmentId:   c.EnrollmentID,
		StudentId:      c.StudentID,
		StudentName:    c.StudentName,
		ChallengeId:    c.ChallengeID,
		ChallengeTitle: c.ChallengeTitle,
		MentorId:       c.MentorID,
		MentorName:     c.MentorName,
		Skills:         c.Skills,
		ArtifactURL:    c.ArtifactURL,
		IssuedAt:       c.IssuedAt.UnixMilli(),
	}
}

func newCertificateList(cs []domain.Certificate) CertificateList {
	return CertificateList{
		Certificates: slice.Map(cs, func(idx int, src domain.Certificate) Certificate {
			return newCertificate(src)
		}),
	}
}
