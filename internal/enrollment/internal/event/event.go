package event

// EnrollmentStatusEvents 状态变更事件的 topic，通知模块消费
const EnrollmentStatusEvents = "enrollment_status_events"

type StatusChangedEvent struct {
	EnrollmentID   int64  `json:"enrollmentId"`
	StudentID      int64  `json:"studentId"`
	StudentEmail   string `json:"studentEmail"`
	StudentName    string `json:"studentName"`
	ChallengeID    int64  `json:"challengeId"`
	ChallengeTitle string `json:"challengeTitle"`
	OldStatus      string `json:"oldStatus"`
	NewStatus      string `json:"newStatus"`
}
