package common

import "errors"

var (
	ErrInitBucket            = errors.New("init project bucket fail")
	ErrProjectNotFound       = errors.New("project not found")
	ErrProjectAlreadyExist   = errors.New("project already exist")
	ErrDashboardNotFound     = errors.New("dashboard not found")
	ErrDashboardAlreadyExist = errors.New("dashboard already exist")
	ErrWidgetNotFound        = errors.New("widget not found")
	ErrQueryNotFound         = errors.New("widget query not found")
	ErrMonitorNotFound       = errors.New("monitor not found")
	ErrInvalidParam          = errors.New("invalid param")
	ErrNotAllowDel           = errors.New("not allow to be delete")

	ErrEmptyWidget error = errors.New("empty widget")
)
