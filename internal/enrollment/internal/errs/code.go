package errs

var (
	SystemError        = ErrorCode{Code: 503001, Msg: "系统错误"}
	InvalidInput       = ErrorCode{Code: 503002, Msg: "输入不合法"}
	AlreadyEnrolled    = ErrorCode{Code: 503003, Msg: "已经报名过这个挑战"}
	EnrollmentNotFound = ErrorCode{Code: 503004, Msg: "报名记录不存在"}
	InvalidTransition  = ErrorCode{Code: 503005, Msg: "当前状态不允许这个操作"}
	PermissionDenied   = ErrorCode{Code: 503006, Msg: "无权限操作"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
