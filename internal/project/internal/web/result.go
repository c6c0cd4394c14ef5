package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/leanmaker/leanmaker/internal/project/internal/errs"
)

// 校验失败时 Msg 带具体字段，所以这里只留码
var validationFailedCode = errs.ValidationFailed.Code

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	forbiddenResult = ginx.Result{
		Code: errs.Forbidden.Code,
		Msg:  errs.Forbidden.Msg,
	}
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidTransition.Code,
		Msg:  errs.InvalidTransition.Msg,
	}
	capabilityMismatchResult = ginx.Result{
		Code: errs.CapabilityMismatch.Code,
		Msg:  errs.CapabilityMismatch.Msg,
	}
	unknownStatusResult = ginx.Result{
		Code: errs.UnknownStatus.Code,
		Msg:  errs.UnknownStatus.Msg,
	}
	capacityBelowCurrentResult = ginx.Result{
		Code: errs.CapacityBelowCurrent.Code,
		Msg:  errs.CapacityBelowCurrent.Msg,
	}
	notActivatableResult = ginx.Result{
		Code: errs.NotActivatable.Code,
		Msg:  errs.NotActivatable.Msg,
	}
)
