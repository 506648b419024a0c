package locks

import "github.com/brickingsoft/errors"

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "locks"
)

var (
	// ErrUnacquired 未能获得锁
	ErrUnacquired = errors.Define("lock was not acquired", errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
)

// IsUnacquired
// 是否为 ErrUnacquired 错误
func IsUnacquired(err error) bool {
	return errors.Is(err, ErrUnacquired)
}
