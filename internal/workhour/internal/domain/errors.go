package domain

import "errors"

var (
	ErrInvalidHours = errors.New("单条工时必须在 (0, 24] 小时内")
	ErrFutureDate   = errors.New("工作日期不能在未来")
)
