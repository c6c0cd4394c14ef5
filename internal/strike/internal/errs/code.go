package errs

var (
	SystemError     = ErrorCode{Code: 506001, Msg: "系统错误"}
	Forbidden       = ErrorCode{Code: 506002, Msg: "无权操作"}
	InvalidSeverity = ErrorCode{Code: 506003, Msg: "记过严重度不合法"}
	StrikeNotActive = ErrorCode{Code: 506004, Msg: "记过已失效"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
