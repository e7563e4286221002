// ABOUTME: SIGWINCH listener for Process resize events on Unix
// ABOUTME: Delivers the new size to the registered callback

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

func (p *Process) startResizeListener() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		for range sigCh {
			p.mu.Lock()
			fn := p.resizeFn
			p.mu.Unlock()
			if fn == nil {
				continue
			}
			w, h, err := p.Size()
			if err != nil {
				continue
			}
			fn(w, h)
		}
	}()
}
