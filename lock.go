package locks

// New
// 创建锁与数据的组合。
//
// raw 决定锁种，data 为受保护数据。data 的读写必须经由 Guard，
// Unsafe 前缀的入口除外。
func New[T any](raw RawLock, data T) *Lock[T] {
	if raw == nil {
		panic("locks: new lock failed cause raw lock is nil")
	}
	return &Lock[T]{
		raw:  raw,
		data: data,
	}
}

// Lock
// 锁与受保护数据的组合。
//
// 可在多个 goroutine 间共享。同一时刻至多存在一个存活的 Guard
//（由锁种的独占语义保证，所附带的 SpinLock 仅支持独占）。
type Lock[T any] struct {
	raw  RawLock
	data T
}

// Lock
// 获取锁，堵塞语义同锁种的 Lock。
//
// 返回的 Guard 是本次获取的证明，其 Unlock 必须恰好调用一次，
// 通常以 defer 保证所有退出路径（含 panic 展开）都会释放。
func (l *Lock[T]) Lock() (guard *Guard[T]) {
	token := l.raw.Lock()
	guard = &Guard[T]{
		lock:  l,
		token: token,
	}
	return
}

// TryLock
// 尝试获取锁，从不堵塞。竞争失败时 ok 为 false。
//
// 注意：仅锁种实现了 RawTryLock 时可用，否则会 panic。
func (l *Lock[T]) TryLock() (guard *Guard[T], ok bool) {
	raw, support := l.raw.(RawTryLock)
	if !support {
		panic("locks: raw lock does not support try lock")
	}
	token, acquired := raw.TryLock()
	if !acquired {
		return
	}
	guard = &Guard[T]{
		lock:  l,
		token: token,
	}
	ok = true
	return
}

// Do
// 在持有锁的情况下执行 fn，所有退出路径上都会释放。
func (l *Lock[T]) Do(fn func(data *T)) {
	if fn == nil {
		return
	}
	guard := l.Lock()
	defer guard.Unlock()
	fn(guard.Value())
}

// Unwrap
// 不加锁直接取出数据。
//
// 注意：仅当调用方唯一持有本 Lock、不可能存在任何 Guard 时使用，
// 唯一所有权代替了同步。
func (l *Lock[T]) Unwrap() T {
	return l.data
}

// UnsafeGet
// 不加锁直接访问数据。正确性完全由调用方保证。
func (l *Lock[T]) UnsafeGet() *T {
	return &l.data
}

// UnsafeUnlock
// 以凭证直接释放锁种，绕过 Guard。
//
// 注意：token 必须来自 Guard.IntoRaw 挂起的那次获取，校验不会进行，
// 违反即未定义行为。
func (l *Lock[T]) UnsafeUnlock(token Token) {
	l.raw.Unlock(token)
}
