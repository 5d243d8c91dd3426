package web

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/user/internal/errs"
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
	duplicateEmailResult = ginx.Result{
		Code: errs.DuplicateEmail.Code,
		Msg:  errs.DuplicateEmail.Msg,
	}
	invalidEmailOrPasswordResult = ginx.Result{
		Code: errs.InvalidEmailOrPassword.Code,
		Msg:  errs.InvalidEmailOrPassword.Msg,
	}
)
