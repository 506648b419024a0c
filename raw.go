package locks

// Token
// 获取锁的凭证。
//
// 由 RawLock.Lock 产生，必须交还给与之配对的 RawLock.Unlock。
// 对于 SpinLock 恒为零值，锁状态本身即全部信息。
// 凭证携带信息的锁种（如票号锁）通过该值传递其凭据。
type Token uint64

// RawLock
// 锁的能力契约。
//
// 所有锁种都必须满足：Lock 堵塞至获得独占并返回凭证，Unlock 以该凭证释放。
// 零值必须是规范的未锁定初始状态。
//
// Go 的 sync/atomic 为顺序一致，满足 Lock 的 acquire 与 Unlock 的 release 配对：
// 上一个持有者释放前的写入对下一个获得者可见。
type RawLock interface {
	// Lock
	// 堵塞直至获得独占，返回获取凭证。无超时。
	Lock() (token Token)
	// Unlock
	// 释放独占。
	//
	// 注意：token 必须是与之配对的 Lock 所返回的凭证，且调用处仍然持有该次获取。
	// 实现不做校验，违反即未定义行为。安全路径上只有 Guard 会调用它。
	Unlock(token Token)
}

// RawTryLock
// 支持非堵塞获取的锁种。
type RawTryLock interface {
	RawLock
	// TryLock
	// 单次尝试获取，从不堵塞。竞争失败时 ok 为 false，无任何诊断信息。
	TryLock() (token Token, ok bool)
}
