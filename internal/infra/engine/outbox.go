package engine

import (
	"sync"

	"github.com/osa030/gramaria/internal/app/playback"
)

const (
	notificationBuffer = 64
	maxQueued          = 1024
)

// outbox queues notifications produced while an engine holds its own lock
// and delivers them from a single goroutine, so engine methods never block
// on a slow consumer.
type outbox struct {
	mu     sync.Mutex
	queue  []playback.Notification
	closed bool

	wake    chan struct{}
	out     chan playback.Notification
	done    chan struct{}
	stopped chan struct{}
}

func newOutbox() *outbox {
	o := &outbox{
		wake:    make(chan struct{}, 1),
		out:     make(chan playback.Notification, notificationBuffer),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go o.run()
	return o
}

// push queues notifications. It reports false once the outbox is closed.
func (o *outbox) push(ns ...playback.Notification) bool {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return false
	}
	for _, n := range ns {
		if len(o.queue) >= maxQueued && n.Kind == playback.NotifyProgress {
			// Progress is superseded by the next tick anyway.
			continue
		}
		o.queue = append(o.queue, n)
	}
	o.mu.Unlock()

	select {
	case o.wake <- struct{}{}:
	default:
	}
	return true
}

func (o *outbox) C() <-chan playback.Notification {
	return o.out
}

// close stops delivery and closes the output channel. Queued notifications
// that were not yet delivered are discarded.
func (o *outbox) close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.queue = nil
	o.mu.Unlock()

	close(o.done)
	<-o.stopped
	close(o.out)
}

func (o *outbox) run() {
	defer close(o.stopped)
	for {
		select {
		case <-o.done:
			return
		case <-o.wake:
		}

		for {
			o.mu.Lock()
			if len(o.queue) == 0 {
				o.mu.Unlock()
				break
			}
			n := o.queue[0]
			o.queue = o.queue[1:]
			o.mu.Unlock()

			select {
			case o.out <- n:
			case <-o.done:
				return
			}
		}
	}
}
