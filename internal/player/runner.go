package player

import (
	"context"
	"sync"
	"time"
)

type CompletionFunc func(day, poses int, minutes float64)

// Runner ticks a Machine on a wall-clock interval until closed. The
// completion callback runs at most once and never after Close returns.
type Runner struct {
	mu         sync.Mutex
	machine    *Machine
	onComplete CompletionFunc
	interval   time.Duration
	notice     string
	closed     bool
	cancel     context.CancelFunc
	done       chan struct{}
	inflight   sync.WaitGroup
}

func NewRunner(machine *Machine, interval time.Duration, onComplete CompletionFunc) *Runner {
	if interval <= 0 {
		interval = time.Second
	}
	return &Runner{
		machine:    machine,
		onComplete: onComplete,
		interval:   interval,
		done:       make(chan struct{}),
	}
}

// Start launches the ticking goroutine. Cancelling ctx has the same effect
// on the goroutine as Close, minus the reset.
func (r *Runner) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	go r.loop(ctx)
}

func (r *Runner) loop(ctx context.Context) {
	defer close(r.done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.step(func(m *Machine) Event { return m.Tick() })
		}
	}
}

func (r *Runner) step(f func(m *Machine) Event) Snapshot {
	r.mu.Lock()
	if r.closed {
		snap := r.machine.Snapshot()
		r.mu.Unlock()
		return snap
	}
	ev := f(r.machine)
	snap := r.machine.Snapshot()
	if ev != Finished || r.onComplete == nil {
		r.mu.Unlock()
		return snap
	}
	day, poses, minutes := r.machine.Completion()
	r.inflight.Add(1)
	r.mu.Unlock()
	defer r.inflight.Done()
	r.onComplete(day, poses, minutes)
	return snap
}

func (r *Runner) Play() Snapshot {
	return r.step(func(m *Machine) Event {
		m.Play()
		return None
	})
}

func (r *Runner) Pause() Snapshot {
	return r.step(func(m *Machine) Event {
		m.Pause()
		return None
	})
}

func (r *Runner) Skip() Snapshot {
	return r.step(func(m *Machine) Event { return m.Skip() })
}

func (r *Runner) Snapshot() (Snapshot, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.machine.Snapshot(), r.notice
}

// SetNotice attaches a user facing message, e.g. a failed save.
func (r *Runner) SetNotice(notice string) {
	r.mu.Lock()
	r.notice = notice
	r.mu.Unlock()
}

// Close stops the ticker goroutine, waits for it and for a completion
// callback already running on any goroutine, then leaves the machine idle.
// Safe to call more than once. Must not be called from the callback.
func (r *Runner) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.machine.Reset()
	r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		<-r.done
	}
	r.inflight.Wait()
}
