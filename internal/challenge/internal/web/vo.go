package web

import (
	"time"

	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type SaveReq struct {
	Id               int64             `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Category         string            `json:"category"`
	Difficulty       string            `json:"difficulty"`
	Requirements     []string          `json:"requirements"`
	LearningOutcomes []string          `json:"learningOutcomes"`
	Resources        []domain.Resource `json:"resources"`
	MaxParticipants  int               `json:"maxParticipants"`
	// 毫秒时间戳，0 表示不限
	Deadline int64 `json:"deadline"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ChallengeList struct {
	Total      int64       `json:"total"`
	Challenges []Challenge `json:"challenges"`
}

type Challenge struct {
	Id               int64             `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Category         string            `json:"category"`
	Difficulty       string            `json:"difficulty"`
	Requirements     []string          `json:"requirements,omitempty"`
	LearningOutcomes []string          `json:"learningOutcomes,omitempty"`
	Resources        []domain.Resource `json:"resources,omitempty"`
	MaxParticipants  int               `json:"maxParticipants,omitempty"`
	Deadline         int64             `json:"deadline,omitempty"`
	Status           string            `json:"status"`
	MentorId         int64             `json:"mentorId"`
	MentorName       string            `json:"mentorName"`
	Utime            int64             `json:"utime"`
}

func newChallenge(c domain.Challenge) Challenge {
	var deadline int64
	if !c.Deadline.IsZero() {
		deadline = c.Deadline.UnixMilli()
	}
	return Challenge{
		Id:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		Category:         c.Category,
		Difficulty:       c.Difficulty.String(),
		Requirements:     c.Requirements,
		LearningOutcomes: c.LearningOutcomes,
		Resources:        c.Resources,
		MaxParticipants:  c.MaxParticipants,
		Deadline:         deadline,
		Status:           c.Status.String(),
		MentorId:         c.MentorID,
		MentorName:       c.MentorName,
		Utime:            c.Utime.UnixMilli(),
	}
}

func newChallengeList(cs []domain.Challenge, total int64) ChallengeList {
	return ChallengeList{
		Total: total,
		Challenges: slice.Map(cs, func(idx int, src domain.Challenge) Challenge {
			return newChallenge(src)
		}),
	}
}

func (req SaveReq) toDomain(mentorId int64) domain.Challenge {
	var deadline time.Time
	if req.Deadline > 0 {
		deadline = time.UnixMilli(req.Deadline)
	}
	return domain.Challenge{
		ID:               req.Id,
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Difficulty:       domain.Difficulty(req.Difficulty),
		Requirements:     req.Requirements,
		LearningOutcomes: req.LearningOutcomes,
		Resources:        req.Resources,
		MaxParticipants:  req.MaxParticipants,
		Deadline:         deadline,
		MentorID:         mentorId,
	}
}
