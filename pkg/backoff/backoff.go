package backoff

import "runtime"

const maxBackoff = 16

func New() *Backoff {
	return new(Backoff)
}

// Backoff
// 自旋退让策略。
//
// 每次连续的 Snooze 等待时长翻倍，直至上限。成功获取后用 Reset 归零。
type Backoff struct {
	n int
}

// Snooze
// 等待一轮。让出 n 次处理器，随后 n 翻倍（封顶 maxBackoff）。
func (b *Backoff) Snooze() {
	if b.n < 1 {
		b.n = 1
	}
	for i := 0; i < b.n; i++ {
		runtime.Gosched()
	}
	if b.n < maxBackoff {
		b.n <<= 1
	}
}

// Reset
// 归零退让进度。
func (b *Backoff) Reset() {
	b.n = 0
}
