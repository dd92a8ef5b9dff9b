package console

import (
	"context"
	"sync"
)

// generation 列表请求代次；只有最新一代的响应会被应用，旧请求的 context 会被取消
type generation struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

func (g *generation) begin(parent context.Context) (context.Context, uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	g.seq++
	g.cancel = cancel
	return ctx, g.seq
}

func (g *generation) current(token uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return token == g.seq
}

// finish 释放当前代的 context
func (g *generation) finish(token uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if token == g.seq && g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

func (g *generation) stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.seq++
}
