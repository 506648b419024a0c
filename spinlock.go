package locks

import (
	"github.com/brickingsoft/locks/pkg/backoff"
	"sync/atomic"
)

// NewSpinLock
// 创建自旋锁。零值亦可直接使用。
func NewSpinLock() *SpinLock {
	return new(SpinLock)
}

// SpinLock
// 自旋锁。
//
// 状态为单个原子布尔：false 未锁定，true 已锁定。无队列，不记录持有者。
// 竞争失败时按 backoff.Backoff 退让后重试，适用于极短的临界区。
// 不公平：多个自旋等待者之间不承诺任何获取顺序。
type SpinLock struct {
	flag atomic.Bool
}

// Lock
// 自旋直至把状态从未锁定换为已锁定。凭证恒为零值。
func (l *SpinLock) Lock() (token Token) {
	bo := backoff.New()
	for !l.flag.CompareAndSwap(false, true) {
		bo.Snooze()
	}
	return
}

// Unlock
// 写回未锁定。凭证无内容，忽略。
func (l *SpinLock) Unlock(_ Token) {
	l.flag.Store(false)
}

// TryLock
// 单次交换尝试，不退让不重试。
func (l *SpinLock) TryLock() (token Token, ok bool) {
	ok = l.flag.CompareAndSwap(false, true)
	return
}
