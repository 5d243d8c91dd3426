package errs

var (
	SystemError = ErrorCode{Code: 507001, Msg: "系统错误"}
	// InvalidInput 字段缺失或者打分维度不在评分标准里
	InvalidInput       = ErrorCode{Code: 507002, Msg: "非法输入"}
	SubmissionNotFound = ErrorCode{Code: 507003, Msg: "作品不存在"}
	PermissionDenied   = ErrorCode{Code: 507004, Msg: "无权限"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
