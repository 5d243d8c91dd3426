package web

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type SaveReq struct {
	HackathonId int64    `json:"hackathonId"`
	TeamId      int64    `json:"teamId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	RepoUrl     string   `json:"repoUrl"`
	DemoUrl     string   `json:"demoUrl"`
	ArtifactUrl string   `json:"artifactUrl"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type HackathonIdReq struct {
	HackathonId int64 `json:"hackathonId"`
}

type FeedbackReq struct {
	SubmissionId int64              `json:"submissionId"`
	Comments     string             `json:"comments"`
	Scores       map[string]float64 `json:"scores"`
	TotalScore   float64            `json:"totalScore"`
}

type Submission struct {
	Id             int64             `json:"id"`
	HackathonId    int64             `json:"hackathonId"`
	TeamId         int64             `json:"teamId"`
	TeamName       string            `json:"teamName"`
	SubmittedBy    int64             `json:"submittedBy"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	TechStack      []string          `json:"techStack,omitempty"`
	RepoUrl        string            `json:"repoUrl"`
	DemoUrl        string            `json:"demoUrl,omitempty"`
	ArtifactUrl    string            `json:"artifactUrl,omitempty"`
	Feedbacks      []domain.Feedback `json:"feedbacks,omitempty"`
	Status         string            `json:"status"`
	AggregateScore float64           `json:"aggregateScore"`
	Utime          int64             `json:"utime"`
}

type SubmissionList struct {
	Submissions []Submission `json:"submissions"`
}

type Leaderboard struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
}

type WinnerCertificateList struct {
	Certificates []domain.WinnerCertificate `json:"certificates"`
	// Generated 实际生成的证书数量
	Generated int `json:"generated"`
}

func (req SaveReq) toDomain(uid int64) domain.Submission {
	return domain.Submission{
		HackathonID: req.HackathonId,
		TeamID:      req.TeamId,
		SubmittedBy: uid,
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		RepoURL:     req.RepoUrl,
		DemoURL:     req.DemoUrl,
		ArtifactURL: req.ArtifactUrl,
	}
}

func newSubmission(s domain.Submission) Submission {
	return Submission{
		Id:             s.ID,
		HackathonId:    s.HackathonID,
		TeamId:         s.TeamID,
		TeamName:       s.TeamName,
		SubmittedBy:    s.SubmittedBy,
		Title:          s.Title,
		Description:    s.Description,
		TechStack:      s.TechStack,
		RepoUrl:        s.RepoURL,
		DemoUrl:        s.DemoURL,
		ArtifactUrl:    s.ArtifactURL,
		Feedbacks:      s.Feedbacks,
		Status:         s.Status.String(),
		AggregateScore: s.AggregateScore,
		Utime:          s.Utime.UnixMilli(),
	}
}

func newSubmissionList(subs []domain.Submission) SubmissionList {
	return SubmissionList{
		Submissions: slice.Map(subs, func(idx int, src domain.Submission) Submission {
			return newSubmission(src)
		}),
	}
}
