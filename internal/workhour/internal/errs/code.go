package errs

var (
	SystemError     = ErrorCode{Code: 504001, Msg: "系统错误"}
	Forbidden       = ErrorCode{Code: 504002, Msg: "无权操作"}
	InvalidEntry    = ErrorCode{Code: 504003, Msg: "工时流水不合法"}
	AlreadyVerified = ErrorCode{Code: 504004, Msg: "工时已核验"}
	AlreadyReversed = ErrorCode{Code: 504005, Msg: "工时已冲正"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
