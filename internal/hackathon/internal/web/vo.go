package web

import (
	"time"

	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type SaveReq struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Rules       string             `json:"rules"`
	Category    string             `json:"category"`
	Criteria    []domain.Criterion `json:"criteria"`
	// 毫秒时间戳
	StartAt              int64 `json:"startAt"`
	EndAt                int64 `json:"endAt"`
	RegistrationDeadline int64 `json:"registrationDeadline"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type AnnounceReq struct {
	HackathonId int64  `json:"hackathonId"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Audience    string `json:"audience"`
}

type JudgesReq struct {
	HackathonId int64   `json:"hackathonId"`
	Judges      []int64 `json:"judges"`
}

type CreateTeamReq struct {
	HackathonId int64  `json:"hackathonId"`
	Name        string `json:"name"`
}

type HackathonIdReq struct {
	HackathonId int64 `json:"hackathonId"`
}

type HackathonList struct {
	Total      int64       `json:"total"`
	Hackathons []Hackathon `json:"hackathons"`
}

type Hackathon struct {
	Id                   int64                 `json:"id"`
	Title                string                `json:"title"`
	Description          string                `json:"description"`
	Rules                string                `json:"rules,omitempty"`
	Category             string                `json:"category"`
	OrganizerId          int64                 `json:"organizerId"`
	OrganizerName        string                `json:"organizerName"`
	Judges               []int64               `json:"judges,omitempty"`
	Criteria             []domain.Criterion    `json:"criteria,omitempty"`
	Announcements        []domain.Announcement `json:"announcements,omitempty"`
	StartAt              int64                 `json:"startAt"`
	EndAt                int64                 `json:"endAt"`
	RegistrationDeadline int64                 `json:"registrationDeadline"`
	Status               string                `json:"status"`
	Utime                int64                 `json:"utime"`
}

type Team struct {
	Id          int64   `json:"id"`
	Name        string  `json:"name"`
	HackathonId int64   `json:"hackathonId"`
	LeaderId    int64   `json:"leaderId"`
	Members     []int64 `json:"members"`
}

type TeamList struct {
	Teams []Team `json:"teams"`
}

func (req SaveReq) toDomain(organizerId int64) domain.Hackathon {
	return domain.Hackathon{
		Title:                req.Title,
		Description:          req.Description,
		Rules:                req.Rules,
		Category:             domain.Category(req.Category),
		OrganizerID:          organizerId,
		Criteria:             req.Criteria,
		StartAt:              time.UnixMilli(req.StartAt),
		EndAt:                time.UnixMilli(req.EndAt),
		RegistrationDeadline: time.UnixMilli(req.RegistrationDeadline),
	}
}

func newHackathon(h domain.Hackathon) Hackathon {
	return Hackathon{
		Id:                   h.ID,
		Title:                h.Title,
		Description:          h.Description,
		Rules:                h.Rules,
		Category:             h.Category.String(),
		OrganizerId:          h.OrganizerID,
		OrganizerName:        h.OrganizerName,
		Judges:               h.Judges,
		Criteria:             h.Criteria,
		Announcements:        h.Announcements,
		StartAt:              h.StartAt.UnixMilli(),
		EndAt:                h.EndAt.UnixMilli(),
		RegistrationDeadline: h.RegistrationDeadline.UnixMilli(),
		Status:               h.Status.String(),
		Utime:                h.Utime.UnixMilli(),
	}
}

func newHackathonList(hs []domain.Hackathon, total int64) HackathonList {
	return HackathonList{
		Total: total,
		Hackathons: slice.Map(hs, func(idx int, src domain.Hackathon) Hackathon {
			return newHackathon(src)
		}),
	}
}

func newTeam(t domain.Team) Team {
	return Team{
		Id:          t.ID,
		Name:        t.Name,
		HackathonId: t.HackathonID,
		LeaderId:    t.LeaderID,
		Members:     t.Members,
	}
}

func newTeamList(ts []domain.Team) TeamList {
	return TeamList{
		Teams: slice.Map(ts, func(idx int, src domain.Team) Team {
			return newTeam(src)
		}),
	}
}
