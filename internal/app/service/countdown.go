package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jose-valero/nick-rotator-bot/internal/common/clock"
)

const defaultCountdownPeriod = time.Second

// RenderFunc recibe el tiempo restante una vez por período mientras el countdown corre.
type RenderFunc func(remaining time.Duration)

// Countdown es el reporter cosmético del próximo cambio. Nunca hay más de un loop activo:
// Start reemplaza al anterior.
type Countdown struct {
	clock  clock.Clock
	render RenderFunc
	period time.Duration

	mu       sync.Mutex
	gen      uint64
	running  bool
	stop     chan struct{}
	deadline time.Time

	loops atomic.Int32 // goroutines vivas, para tests
}

type CountdownOption func(*Countdown)

func WithCountdownClock(c clock.Clock) CountdownOption {
	return func(cd *Countdown) { cd.clock = c }
}

func WithCountdownPeriod(d time.Duration) CountdownOption {
	return func(cd *Countdown) { cd.period = d }
}

func NewCountdown(render RenderFunc, opts ...CountdownOption) *Countdown {
	cd := &Countdown{
		clock:  clock.System{},
		render: render,
		period: defaultCountdownPeriod,
	}
	for _, o := range opts {
		o(cd)
	}
	if cd.render == nil {
		cd.render = func(time.Duration) {}
	}
	if cd.period <= 0 {
		cd.period = defaultCountdownPeriod
	}
	return cd
}

// Start (re)arma el countdown para dentro de d.
func (c *Countdown) Start(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.gen++
	c.deadline = c.clock.Now().Add(d)
	c.running = true
	c.stop = make(chan struct{})

	c.loops.Add(1)
	go c.run(c.gen, c.stop)
	return c.deadline
}

// Stop cancela el countdown sin esperar a la goroutine.
func (c *Countdown) Stop() {
	c.mu.Lock()
	c.stopLocked()
	c.mu.Unlock()
}

func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// NextChange devuelve el deadline del último Start.
func (c *Countdown) NextChange() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deadline, !c.deadline.IsZero()
}

func (c *Countdown) stopLocked() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	c.running = false
}

func (c *Countdown) run(gen uint64, stop <-chan struct{}) {
	defer c.loops.Add(-1)

	t := time.NewTicker(c.period)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			if !c.tick(gen) {
				return
			}
		}
	}
}

// tick calcula lo que falta y renderiza; false cuando el loop tiene que terminar.
func (c *Countdown) tick(gen uint64) bool {
	c.mu.Lock()
	if gen != c.gen || !c.running {
		c.mu.Unlock()
		return false
	}
	remaining := c.deadline.Sub(c.clock.Now())
	if remaining <= 0 {
		c.stopLocked()
		c.mu.Unlock()
		return false
	}
	render := c.render
	c.mu.Unlock()

	render(remaining)
	return true
}
