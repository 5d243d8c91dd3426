package web

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.CertificateNotFound.Code,
		Msg:  errs.CertificateNotFound.Msg,
	}
	notCertifiableResult = ginx.Result{
		Code: errs.NotCertifiable.Code,
		Msg:  errs.NotCertifiable.Msg,
	}
	permissionDeniedResult = ginx.Result{
		Code: errs.PermissionDenied.Code,
		Msg:  errs.PermissionDenied.Msg,
	}
	alreadyIssuedResult = ginx.Result{
		Code: errs.AlreadyIssued.Code,
		Msg:  errs.AlreadyIssued.Msg,
	}
)
