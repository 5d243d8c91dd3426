package errs

var (
	SystemError       = ErrorCode{Code: 502001, Msg: "系统错误"}
	InvalidInput      = ErrorCode{Code: 502002, Msg: "输入不合法"}
	ChallengeNotFound = ErrorCode{Code: 502003, Msg: "挑战不存在"}
	PermissionDenied  = ErrorCode{Code: 502004, Msg: "无权限操作"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
