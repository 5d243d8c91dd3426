package event

// CertificateIssuedEvents 发证事件 topic，通知模块消费
const CertificateIssuedEvents = "certificate_issued_events"

type CertificateIssuedEvent struct {
	CertificateID  int64  `json:"certificateId"`
	Code           string `json:"code"`
	StudentID      int64  `json:"studentId"`
	StudentName    string `json:"studentName"`
	StudentEmail   string `json:"studentEmail"`
	ChallengeTitle string `json:"challengeTitle"`
	ArtifactURL    string `json:"artifactUrl"`
}
