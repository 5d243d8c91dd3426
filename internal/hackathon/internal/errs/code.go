package errs

var (
	SystemError       = ErrorCode{Code: 506001, Msg: "系统错误"}
	InvalidInput      = ErrorCode{Code: 506002, Msg: "输入不合法"}
	HackathonNotFound = ErrorCode{Code: 506003, Msg: "黑客松不存在"}
	PermissionDenied  = ErrorCode{Code: 506004, Msg: "无权限操作"}
	TeamNotFound      = ErrorCode{Code: 506005, Msg: "队伍不存在"}
	AlreadyMember     = ErrorCode{Code: 506006, Msg: "已经在队伍里了"}
	RegistrationOver  = ErrorCode{Code: 506007, Msg: "报名已经截止"}
	DuplicateTeamName = ErrorCode{Code: 506008, Msg: "队名已经被用了"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
