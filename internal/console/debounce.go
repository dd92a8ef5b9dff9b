package console

import (
	"sync"
	"time"
)

// DefaultDebounce 搜索框静默多久后发起查询
const DefaultDebounce = 500 * time.Millisecond

// Debouncer 每次 Trigger 都会重置计时器，静默期结束后只执行最后一次传入的函数
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	seq   uint64
}

// NewDebouncer 创建防抖器，delay<=0 时使用默认值
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Delay 静默间隔
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger 取消尚未触发的上一次调度并重新计时
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// 计时器已触发但随后又被重置
		if seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Pending 是否有尚未触发的调度
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop 丢弃尚未触发的调度
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}
