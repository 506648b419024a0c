package locks

import "unsafe"

// Guard
// 一次成功获取的持有凭据。
//
// 只能由 Lock.Lock、Lock.TryLock 或 Lock.LockContext 产生。
// 存活期间独占访问受保护数据，Unlock 恰好释放一次。
// Guard 不可复制，也不可跨 goroutine 传递：释放必须可归属于
// 创建它的那个持有者。受保护数据本身是否可共享与此无关。
type Guard[T any] struct {
	lock     *Lock[T]
	token    Token
	released bool
}

// Value
// 访问受保护数据，读写均经由返回的指针。
//
// 仅在 Guard 存活期间有效，释放后访问会 panic。
func (g *Guard[T]) Value() *T {
	if g.released {
		panic("locks: guard value accessed after release")
	}
	return &g.lock.data
}

// Unlock
// 以创建时的凭证释放锁。重复释放会 panic。
func (g *Guard[T]) Unlock() {
	if g.released {
		panic("locks: unlock of released guard")
	}
	g.released = true
	g.lock.raw.Unlock(g.token)
}

// IntoRaw
// 解除 Guard 的自动释放义务，返回锁身份与待释放凭证。
//
// 用于 Guard 必须越过正常生存期追踪的场合（如跨接口边界转移）。
// 此后本 Guard 不可再使用；释放义务转由 GuardFromRaw 重建的
// Guard 或 Lock.UnsafeUnlock 履行。
func (g *Guard[T]) IntoRaw() (raw uintptr, token Token) {
	if g.released {
		panic("locks: into raw of released guard")
	}
	g.released = true
	raw = uintptr(unsafe.Pointer(g.lock))
	token = g.token
	return
}

// GuardFromRaw
// 由 IntoRaw 的结果重建 Guard。
//
// 注意：raw 必须来自同一个 Lock 的 IntoRaw，且每次 IntoRaw 至多
// 重建一次，均不校验，违反即未定义行为。
func GuardFromRaw[T any](raw uintptr, token Token) *Guard[T] {
	return &Guard[T]{
		lock:  (*Lock[T])(unsafe.Pointer(raw)),
		token: token,
	}
}
