package app

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Ticker fires handler once per period, passing the actual wall-clock
// time elapsed since the previous fire rather than the nominal
// period - so a handler that runs long, or a process that was
// paused, still advances the simulation by how much time really
// passed. A panic inside handler is recovered, logged, and the ticker
// keeps running.
type Ticker struct {
	period  time.Duration
	handler func(delta time.Duration)
	log     *logrus.Logger

	stop chan struct{}
	done chan struct{}
}

func NewTicker(period time.Duration, handler func(delta time.Duration), log *logrus.Logger) *Ticker {
	return &Ticker{
		period:  period,
		handler: handler,
		log:     log,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start begins firing handler every period until Stop is called. It
// runs on its own goroutine.
func (t *Ticker) Start() {
	go t.run()
}

func (t *Ticker) run() {
	defer close(t.done)

	timer := time.NewTimer(t.period)
	defer timer.Stop()
	last := time.Now()

	for {
		select {
		case <-t.stop:
			return
		case now := <-timer.C:
			delta := now.Sub(last)
			last = now
			t.fire(delta)
			timer.Reset(t.period)
		}
	}
}

func (t *Ticker) fire(delta time.Duration) {
	defer func() {
		if r := recover(); r != nil {
			t.log.WithField("panic", r).Error("ticker handler panicked")
		}
	}()
	t.handler(delta)
}

// Stop halts the ticker and waits for its goroutine to exit.
func (t *Ticker) Stop() {
	close(t.stop)
	<-t.done
}
