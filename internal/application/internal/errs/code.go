package errs

var (
	SystemError          = ErrorCode{Code: 503001, Msg: "系统错误"}
	Forbidden            = ErrorCode{Code: 503002, Msg: "无权操作"}
	Ineligible           = ErrorCode{Code: 503003, Msg: "不满足报名条件"}
	DuplicateApplication = ErrorCode{Code: 503004, Msg: "已有未完结的申请"}
	InvalidTransition    = ErrorCode{Code: 503005, Msg: "申请状态流转不允许"}
	CapacityExceeded     = ErrorCode{Code: 503006, Msg: "项目名额已满"}
	UnknownStatus        = ErrorCode{Code: 503007, Msg: "未知的申请状态"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
