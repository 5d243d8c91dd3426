package web

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.ChallengeNotFound.Code,
		Msg:  errs.ChallengeNotFound.Msg,
	}
	permissionDeniedResult = ginx.Result{
		Code: errs.PermissionDenied.Code,
		Msg:  errs.PermissionDenied.Msg,
	}
)
