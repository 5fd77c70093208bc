// Package debounce 提供尾沿触发的防抖器。
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay 列表筛选默认静默期
const DefaultDelay = 500 * time.Millisecond

// Debouncer 同一时刻最多一个待执行任务；新的触发会取消并替换旧任务，
// 静默期结束后才执行最后一次提交的函数。
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	gen     uint64 // 每次触发自增，过期的定时器据此放弃执行
	stopped bool
}

// New 创建防抖器，delay <= 0 时使用 DefaultDelay
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger 提交 fn，并重新开始计时。Stop 之后的调用被忽略。
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// Stop 未能拦截已到期的定时器时，靠 gen 与 stopped 兜底
		if d.stopped || gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		fn()
	})
}

// Cancel 取消待执行任务，防抖器仍可继续使用
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

// Stop 取消待执行任务并永久停用
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}

// Pending 是否存在待执行任务
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
