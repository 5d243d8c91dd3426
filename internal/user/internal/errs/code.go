package errs

var (
	SystemError            = ErrorCode{Code: 501001, Msg: "系统错误"}
	InvalidInput           = ErrorCode{Code: 501002, Msg: "输入不合法"}
	DuplicateEmail         = ErrorCode{Code: 501003, Msg: "邮箱已经注册"}
	InvalidEmailOrPassword = ErrorCode{Code: 501004, Msg: "邮箱或密码错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
