package locks

import "time"

const (
	defaultPollInterval    = 500 * time.Nanosecond
	defaultMaxPollInterval = 100 * time.Microsecond
)

// AcquireOption
// 选项函数
type AcquireOption func(*AcquireOptions) error

// AcquireOptions
// 轮询获取选项
type AcquireOptions struct {
	// PollInterval
	// 首次轮询间隔
	PollInterval time.Duration
	// MaxPollInterval
	// 轮询间隔上限（间隔按指数增长至该值）
	MaxPollInterval time.Duration
}

// WithPollInterval
// 设置首次轮询间隔
func WithPollInterval(d time.Duration) AcquireOption {
	return func(o *AcquireOptions) error {
		if d < 1 {
			d = defaultPollInterval
		}
		o.PollInterval = d
		return nil
	}
}

// WithMaxPollInterval
// 设置轮询间隔上限
func WithMaxPollInterval(d time.Duration) AcquireOption {
	return func(o *AcquireOptions) error {
		if d < 1 {
			d = defaultMaxPollInterval
		}
		o.MaxPollInterval = d
		return nil
	}
}
