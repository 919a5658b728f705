package service

import "fmt"

var (
	ErrLogNotFound     = fmt.Errorf("log not found")
	ErrCannotGetLogs   = fmt.Errorf("cannot get logs")
	ErrRankUnavailable = fmt.Errorf("rank source unavailable")
	ErrInvalidMonth    = fmt.Errorf("invalid month")
)
