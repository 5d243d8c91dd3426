package domain

import "time"

type User struct {
	ID       int64
	SN       string
	Email    string
	Password string
	Nickname string
	Role     Role
	Bio      string
	Avatar   string
	// 技能标签，学生展示用
	Skills []string
	// 擅长领域，导师展示用
	Expertise []string
	Ctime     time.Time
	Utime     time.Time
}

type Role string

const (
	RoleStudent   Role = "student"
	RoleMentor    Role = "mentor"
	RoleOrganizer Role = "organizer"
	RoleJudge     Role = "judge"
	RoleAdmin     Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleMentor, RoleOrganizer, RoleJudge, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
