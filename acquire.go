package locks

import (
	"context"
	"github.com/brickingsoft/errors"
	"github.com/cenkalti/backoff/v4"
)

// LockContext
// 在 context.Context 范围内轮询获取锁。
//
// 以指数退让轮询锁种的 TryLock，直至获取成功或 ctx 结束。
// ctx 结束时返回包装了 ctx 错误的 ErrUnacquired，可用 IsUnacquired 判断。
// ctx 无期限且锁一直被持有时与 Lock 一样不会返回。
//
// 注意：仅锁种实现了 RawTryLock 时可用，否则会 panic。
func (l *Lock[T]) LockContext(ctx context.Context, options ...AcquireOption) (guard *Guard[T], err error) {
	opts := AcquireOptions{
		PollInterval:    defaultPollInterval,
		MaxPollInterval: defaultMaxPollInterval,
	}
	for _, option := range options {
		if optErr := option(&opts); optErr != nil {
			err = errors.New("lock context failed", errors.WithMeta(errMetaPkgKey, errMetaPkgVal), errors.WithWrap(optErr))
			return
		}
	}
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = opts.PollInterval
	bo.MaxInterval = opts.MaxPollInterval
	bo.MaxElapsedTime = 0
	retryErr := backoff.Retry(func() error {
		if g, ok := l.TryLock(); ok {
			guard = g
			return nil
		}
		return ErrUnacquired
	}, backoff.WithContext(bo, ctx))
	if retryErr != nil {
		guard = nil
		if errors.Is(retryErr, ErrUnacquired) {
			err = errors.From(ErrUnacquired)
			return
		}
		err = errors.From(ErrUnacquired, errors.WithWrap(retryErr))
		return
	}
	return
}
