package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/leanmaker/leanmaker/internal/strike/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	forbiddenResult = ginx.Result{
		Code: errs.Forbidden.Code,
		Msg:  errs.Forbidden.Msg,
	}
	invalidSeverityResult = ginx.Result{
		Code: errs.InvalidSeverity.Code,
		Msg:  errs.InvalidSeverity.Msg,
	}
	strikeNotActiveResult = ginx.Result{
		Code: errs.StrikeNotActive.Code,
		Msg:  errs.StrikeNotActive.Msg,
	}
)
