package web

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type ApplyReq struct {
	ChallengeId int64  `json:"challengeId"`
	Essay       string `json:"essay"`
	Motivation  string `json:"motivation"`
	Experience  string `json:"experience"`
}

type UpdateStatusReq struct {
	Id     int64  `json:"id"`
	Status string `json:"status"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type ChallengeIdReq struct {
	ChallengeId int64 `json:"challengeId"`
}

type Enrollment struct {
	Id             int64  `json:"id"`
	StudentId      int64  `json:"studentId"`
	StudentName    string `json:"studentName"`
	ChallengeId    int64  `json:"challengeId"`
	ChallengeTitle string `json:"challengeTitle"`
	Status         string `json:"status"`
	Essay          string `json:"essay,omitempty"`
	Motivation     string `json:"motivation,omitempty"`
	Experience     string `json:"experience,omitempty"`
	EnrolledAt     int64  `json:"enrolledAt"`
	SubmittedAt    int64  `json:"submittedAt,omitempty"`
	ReviewedAt     int64  `json:"reviewedAt,omitempty"`
}

type EnrollmentList struct {
	Enrollments []Enrollment `json:"enrollments"`
}

func newEnrollment(e domain.Enrollment) Enrollment {
	res := Enrollment{
		Id:             e.ID,
		StudentId:      e.StudentID,
		StudentName:    e.StudentName,
		ChallengeId:    e.ChallengeID,
		ChallengeTitle: e.ChallengeTitle,
		Status:         e.Status.String(),
		Essay:          e.Essay,
		Motivation:     e.Motivation,
		Experience:     e.Experience,
		EnrolledAt:     e.EnrolledAt.UnixMilli(),
	}
	if !e.SubmittedAt.IsZero() {
		res.SubmittedAt = e.SubmittedAt.UnixMilli()
	}
	if !e.ReviewedAt.IsZero() {
		res.ReviewedAt = e.ReviewedAt.UnixMilli()
	}
	return res
}

func newEnrollmentList(es []domain.Enrollment) EnrollmentList {
	return EnrollmentList{
		Enrollments: slice.Map(es, func(idx int, src domain.Enrollment) Enrollment {
			return newEnrollment(src)
		}),
	}
}
