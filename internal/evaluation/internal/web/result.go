package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/errs"
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
	invalidScoreResult = ginx.Result{
		Code: errs.InvalidScore.Code,
		Msg:  errs.InvalidScore.Msg,
	}
	duplicateEvaluationResult = ginx.Result{
		Code: errs.DuplicateEvaluation.Code,
		Msg:  errs.DuplicateEvaluation.Msg,
	}
	projectNotFinalizedResult = ginx.Result{
		Code: errs.ProjectNotFinalized.Code,
		Msg:  errs.ProjectNotFinalized.Msg,
	}
	alreadyFlaggedResult = ginx.Result{
		Code: errs.AlreadyFlagged.Code,
		Msg:  errs.AlreadyFlagged.Msg,
	}
)
