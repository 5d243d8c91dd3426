package web

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.PortfolioNotFound.Code,
		Msg:  errs.PortfolioNotFound.Msg,
	}
	privateResult = ginx.Result{
		Code: errs.PortfolioPrivate.Code,
		Msg:  errs.PortfolioPrivate.Msg,
	}
)
