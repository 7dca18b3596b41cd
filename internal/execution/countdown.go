package execution

import (
	"context"
	"sync"
	"time"
)

// Ticker is the part of time.Ticker the countdown needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	*time.Ticker
}

func (t timeTicker) C() <-chan time.Time {
	return t.Ticker.C
}

func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

// Countdown ticks a resting machine once per second on its own goroutine. It
// ends when the rest is over, the context is done, or Stop is called.
type Countdown struct {
	mu      sync.Mutex
	machine *Machine
	onTick  func(remaining int)

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// StartCountdown starts ticking m. onTick, when set, gets the remaining rest
// seconds after every tick and runs on the countdown goroutine.
func StartCountdown(ctx context.Context, m *Machine, newTicker func(time.Duration) Ticker, onTick func(remaining int)) *Countdown {
	if newTicker == nil {
		newTicker = NewTimeTicker
	}
	c := &Countdown{
		machine: m,
		onTick:  onTick,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go c.run(ctx, newTicker(time.Second))
	return c
}

func (c *Countdown) run(ctx context.Context, ticker Ticker) {
	defer close(c.done)
	defer ticker.Stop()

	for {
		if !c.resting() {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-c.stop:
			return
		case <-ticker.C():
			c.mu.Lock()
			_, _ = c.machine.Tick()
			remaining := c.machine.RestRemaining
			c.mu.Unlock()
			if c.onTick != nil {
				c.onTick(remaining)
			}
		}
	}
}

func (c *Countdown) resting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.State == StateResting
}

// Do runs fn with exclusive access to the machine.
func (c *Countdown) Do(fn func(m *Machine)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.machine)
}

func (c *Countdown) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
	<-c.done
}

func (c *Countdown) Done() <-chan struct{} {
	return c.done
}
