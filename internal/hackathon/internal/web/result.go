package web

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/errs"
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
		Code: errs.HackathonNotFound.Code,
		Msg:  errs.HackathonNotFound.Msg,
	}
	permissionDeniedResult = ginx.Result{
		Code: errs.PermissionDenied.Code,
		Msg:  errs.PermissionDenied.Msg,
	}
	teamNotFoundResult = ginx.Result{
		Code: errs.TeamNotFound.Code,
		Msg:  errs.TeamNotFound.Msg,
	}
	alreadyMemberResult = ginx.Result{
		Code: errs.AlreadyMember.Code,
		Msg:  errs.AlreadyMember.Msg,
	}
	registrationOverResult = ginx.Result{
		Code: errs.RegistrationOver.Code,
		Msg:  errs.RegistrationOver.Msg,
	}
	duplicateTeamNameResult = ginx.Result{
		Code: errs.DuplicateTeamName.Code,
		Msg:  errs.DuplicateTeamName.Msg,
	}
)
