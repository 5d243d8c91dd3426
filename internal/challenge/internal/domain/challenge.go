package domain

import "time"

type Challenge struct {
	ID               int64
	Title            string
	Description      string
	Category         string
	Difficulty       Difficulty
	Requirements     []string
	LearningOutcomes []string
	Resources        []Resource
	MaxParticipants  int
	Deadline         time.Time
	Status           Status
	MentorID         int64
	MentorName       string
	Ctime            time.Time
	Utime            time.Time
}

// Resource 挑战关联的学习资料
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

func (d Difficulty) String() string {
	return string(d)
}

type Status string

const (
	StatusActive   Status = "active"
	StatusClosed   Status = "closed"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}
