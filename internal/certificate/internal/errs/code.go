package errs

var (
	SystemError         = ErrorCode{Code: 504001, Msg: "系统错误"}
	CertificateNotFound = ErrorCode{Code: 504002, Msg: "证书不存在"}
	NotCertifiable      = ErrorCode{Code: 504003, Msg: "报名还没有通过终审"}
	PermissionDenied    = ErrorCode{Code: 504004, Msg: "无权限操作"}
	AlreadyIssued       = ErrorCode{Code: 504005, Msg: "这条报名已经发过证书"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
