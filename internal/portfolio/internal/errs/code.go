package errs

var (
	SystemError       = ErrorCode{Code: 505001, Msg: "系统错误"}
	PortfolioNotFound = ErrorCode{Code: 505002, Msg: "作品集不存在"}
	PortfolioPrivate  = ErrorCode{Code: 505003, Msg: "作品集未公开"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
