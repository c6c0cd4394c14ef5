package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/leanmaker/leanmaker/internal/application/internal/errs"
)

// 资格不满足时 Msg 带具体原因，这里只留码
var ineligibleCode = errs.Ineligible.Code

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	forbiddenResult = ginx.Result{
		Code: errs.Forbidden.Code,
		Msg:  errs.Forbidden.Msg,
	}
	duplicateResult = ginx.Result{
		Code: errs.DuplicateApplication.Code,
		Msg:  errs.DuplicateApplication.Msg,
	}
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidTransition.Code,
		Msg:  errs.InvalidTransition.Msg,
	}
	capacityExceededResult = ginx.Result{
		Code: errs.CapacityExceeded.Code,
		Msg:  errs.CapacityExceeded.Msg,
	}
	unknownStatusResult = ginx.Result{
		Code: errs.UnknownStatus.Code,
		Msg:  errs.UnknownStatus.Msg,
	}
)
