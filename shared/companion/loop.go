package companion

import (
	"context"
	"sync"
	"time"
)

// Ticker is the frame source of a mounted session. Stop must release it.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Options configures Mount.
type Options struct {
	Tuning   Tuning
	Clock    Clock                // defaults to SystemClock
	Viewport func() Viewport      // read on every event and tick
	Anchors  AnchorSource         // may be nil: every anchor click misses
	Ticker   func() Ticker        // defaults to a ticker at Tuning.FrameReference
	OnFrame  func(Snapshot)       // called after every tick, on the loop goroutine
	OnEvent  func(Event, Outcome) // called after every handled event
	Buffer   int                  // event queue length, default 64
}

// Session is a mounted pet. All state lives on one goroutine; Send and
// Unmount may be called from anywhere.
type Session struct {
	events chan Event
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Mount creates a pet and starts its loop. The loop ends when Unmount is
// called or parent is cancelled, whichever comes first; the ticker is
// stopped on every exit path.
func Mount(parent context.Context, opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Viewport == nil {
		opts.Viewport = func() Viewport { return Viewport{} }
	}
	if opts.Ticker == nil {
		ref := opts.Tuning.FrameReference
		if ref <= 0 {
			ref = time.Second / 60
		}
		opts.Ticker = func() Ticker { return NewTimeTicker(ref) }
	}
	if opts.Buffer <= 0 {
		opts.Buffer = 64
	}

	ctx, cancel := context.WithCancel(parent)
	s := &Session{
		events: make(chan Event, opts.Buffer),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	pet := New(opts.Viewport(), opts.Clock.Now(), opts.Tuning)
	ticker := opts.Ticker()

	go func() {
		defer close(s.done)
		defer ticker.Stop()
		run(ctx, pet, s.events, ticker.C(), opts)
	}()
	return s
}

func run(ctx context.Context, pet *Companion, events <-chan Event, ticks <-chan time.Time, opts Options) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			out := pet.Handle(ev, opts.Clock.Now(), opts.Viewport(), opts.Anchors)
			if opts.OnEvent != nil {
				opts.OnEvent(ev, out)
			}
		case <-ticks:
			pet.Tick(opts.Clock.Now())
			if opts.OnFrame != nil {
				opts.OnFrame(pet.Snapshot())
			}
		}
	}
}

// Send queues an event. It returns false once the session is unmounted.
func (s *Session) Send(ev Event) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.events <- ev:
		return true
	case <-s.done:
		return false
	}
}

// Unmount stops the loop and waits for it to exit. Safe to call repeatedly.
func (s *Session) Unmount() {
	s.once.Do(s.cancel)
	<-s.done
}

// Done is closed once the loop has exited.
func (s *Session) Done() <-chan struct{} {
	return s.done
}
