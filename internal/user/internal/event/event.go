package event

const userRegistrationEvents = "user_registration_events"

type RegistrationEvent struct {
	Uid  int64  `json:"uid"`
	Role string `json:"role"`
}
