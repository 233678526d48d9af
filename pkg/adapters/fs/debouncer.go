package fs

import (
	"sync"
	"time"

	"github.com/aretw0/capstone/pkg/core"
)

// debouncer coalesces bursts of events per file and emits the last one after a quiet period.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	wg      sync.WaitGroup
	timers  map[string]*time.Timer
	pending map[string]core.Event
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:   delay,
		timers:  make(map[string]*time.Timer),
		pending: make(map[string]core.Event),
	}
}

// add schedules fire for the event, replacing any pending event for the same file.
func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending[e.File] = e
	if t, ok := d.timers[e.File]; ok && t.Stop() {
		d.wg.Done()
	}

	var t *time.Timer
	d.wg.Add(1)
	t = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		ev, ok := d.pending[e.File]
		delete(d.pending, e.File)
		if d.timers[e.File] == t {
			delete(d.timers, e.File)
		}
		stopped := d.stopped
		d.mu.Unlock()

		if ok && !stopped {
			fire(ev)
		}
	})
	d.timers[e.File] = t
}

// stopAndWait drops pending events and waits up to timeout for in-flight callbacks.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for file, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, file)
	}
	clear(d.pending)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
