package logic

import "errors"

var (
	// ErrReportNotFound 报表不存在或已被排除
	ErrReportNotFound = errors.New("报表不存在")
	// ErrReportForbidden 无权查看报表
	ErrReportForbidden = errors.New("没有查看该报表的权限")
	// ErrInvalidCredentials 用户名或密码错误
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	// ErrUserDisabled 用户已被禁用
	ErrUserDisabled = errors.New("用户已被禁用")
)
