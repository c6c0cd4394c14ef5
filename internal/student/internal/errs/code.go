package errs

var (
	SystemError   = ErrorCode{Code: 507001, Msg: "系统错误"}
	Forbidden     = ErrorCode{Code: 507002, Msg: "无权操作"}
	InvalidStatus = ErrorCode{Code: 507003, Msg: "无效的学生状态"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
