package errs

var (
	SystemError         = ErrorCode{Code: 505001, Msg: "系统错误"}
	Forbidden           = ErrorCode{Code: 505002, Msg: "无权操作"}
	InvalidScore        = ErrorCode{Code: 505003, Msg: "评分不合法"}
	DuplicateEvaluation = ErrorCode{Code: 505004, Msg: "评价已存在"}
	ProjectNotFinalized = ErrorCode{Code: 505005, Msg: "项目尚未收尾"}
	AlreadyFlagged      = ErrorCode{Code: 505006, Msg: "评价已被标记"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
