package errs

var (
	SystemError = ErrorCode{Code: 508001, Msg: "系统错误"}
	Forbidden   = ErrorCode{Code: 508002, Msg: "无权操作"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
