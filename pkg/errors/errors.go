package errors

import "errors"

// ErrSweepFailed 生命周期巡检未能到达持久层，调用方可决定是否以过期视图继续
var ErrSweepFailed = errors.New("周期巡检失败，数据视图可能过期")
