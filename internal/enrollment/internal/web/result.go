package web

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/enrollment/internal/errs"
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
	alreadyEnrolledResult = ginx.Result{
		Code: errs.AlreadyEnrolled.Code,
		Msg:  errs.AlreadyEnrolled.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.EnrollmentNotFound.Code,
		Msg:  errs.EnrollmentNotFound.Msg,
	}
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidTransition.Code,
		Msg:  errs.InvalidTransition.Msg,
	}
	permissionDeniedResult = ginx.Result{
		Code: errs.PermissionDenied.Code,
		Msg:  errs.PermissionDenied.Msg,
	}
)
