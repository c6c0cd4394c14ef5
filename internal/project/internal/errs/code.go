package errs

var (
	SystemError          = ErrorCode{Code: 502001, Msg: "系统错误"}
	Forbidden            = ErrorCode{Code: 502002, Msg: "无权操作"}
	ValidationFailed     = ErrorCode{Code: 502003, Msg: "字段校验失败"}
	InvalidTransition    = ErrorCode{Code: 502004, Msg: "状态流转不允许"}
	CapabilityMismatch   = ErrorCode{Code: 502005, Msg: "能力等级或工时与TRL不符"}
	UnknownStatus        = ErrorCode{Code: 502006, Msg: "未知的项目状态"}
	CapacityBelowCurrent = ErrorCode{Code: 502007, Msg: "名额不能低于当前在派人数"}
	NotActivatable       = ErrorCode{Code: 502008, Msg: "没有已接受的申请，项目不能启动"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
