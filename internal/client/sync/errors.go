package sync

import "errors"

// ErrPassInProgress возвращается, если проход синхронизации уже выполняется
var ErrPassInProgress = errors.New("reconciliation pass already in progress")
