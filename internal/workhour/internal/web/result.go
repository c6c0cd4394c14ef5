package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/errs"
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
	invalidEntryResult = ginx.Result{
		Code: errs.InvalidEntry.Code,
		Msg:  errs.InvalidEntry.Msg,
	}
	alreadyVerifiedResult = ginx.Result{
		Code: errs.AlreadyVerified.Code,
		Msg:  errs.AlreadyVerified.Msg,
	}
	alreadyReversedResult = ginx.Result{
		Code: errs.AlreadyReversed.Code,
		Msg:  errs.AlreadyReversed.Msg,
	}
)
