// ABOUTME: Scheduler bridging component timers onto bubbletea commands
// ABOUTME: Each scheduled callback becomes a tea.Tick delivering an ID'd message

package btea

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/typeset/pkg/tui/sched"
)

// timerFiredMsg delivers an elapsed timer back to the model that owns it.
type timerFiredMsg struct {
	id uint64
}

// cmdScheduler implements sched.Scheduler on top of tea.Tick. Schedule
// registers the callback and queues a command; the model drains the queue
// after every Update and runs callbacks when their fired messages arrive.
// Stopped timers are simply forgotten, so their messages fall through.
type cmdScheduler struct {
	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]func()
	queue   []tea.Cmd
}

func newCmdScheduler() *cmdScheduler {
	return &cmdScheduler{pending: map[uint64]func(){}}
}

func (s *cmdScheduler) Schedule(d time.Duration, fn func()) sched.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.pending[id] = fn
	s.queue = append(s.queue, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return cmdHandle{s: s, id: id}
}

type cmdHandle struct {
	s  *cmdScheduler
	id uint64
}

func (h cmdHandle) Stop() bool {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if _, ok := h.s.pending[h.id]; !ok {
		return false
	}
	delete(h.s.pending, h.id)
	return true
}

// drain returns the queued commands batched, or nil when there are none.
func (s *cmdScheduler) drain() tea.Cmd {
	s.mu.Lock()
	cmds := s.queue
	s.queue = nil
	s.mu.Unlock()
	if len(cmds) == 0 {
		return nil
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// fire runs and forgets the callback for id. Cancelled or already-fired
// timers are no-ops.
func (s *cmdScheduler) fire(id uint64) {
	s.mu.Lock()
	fn := s.pending[id]
	delete(s.pending, id)
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// pendingCount reports timers that are scheduled and not yet fired.
func (s *cmdScheduler) pendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
