package event

// 各业务模块发布的 topic，这里只做消费，结构体字段保持一致
const (
	EnrollmentStatusEvents  = "enrollment_status_events"
	CertificateIssuedEvents = "certificate_issued_events"
)

type EnrollmentStatusEvent struct {
	EnrollmentID   int64  `json:"enrollmentId"`
	StudentID      int64  `json:"studentId"`
	StudentEmail   string `json:"studentEmail"`
	StudentName    string `json:"studentName"`
	ChallengeID    int64  `json:"challengeId"`
	ChallengeTitle string `json:"challengeTitle"`
	OldStatus      string `json:"oldStatus"`
	NewStatus      string `json:"newStatus"`
}

type CertificateIssuedEvent struct {
	CertificateID  int64  `json:"certificateId"`
	Code           string `json:"code"`
	StudentID      int64  `json:"studentId"`
	StudentName    string `json:"studentName"`
	StudentEmail   string `json:"studentEmail"`
	ChallengeTitle string `json:"challengeTitle"`
	ArtifactURL    string `json:"artifactUrl"`
}
