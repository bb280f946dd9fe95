package game

import "time"

// Ticker is the part of *time.Ticker the match clock uses.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFunc func(d time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }

func (r realTicker) Stop() { r.t.Stop() }

// NewRealTicker wraps time.NewTicker.
func NewRealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// Clock is the countdown ticker of one match. It is started at match start
// and stopped on reset; the zero value is a stopped clock whose channel is nil.
type Clock struct {
	newTicker TickerFunc
	ticker    Ticker
}

func (c *Clock) Start() {
	c.Stop()
	c.ticker = c.newTicker(TickInterval)
}

func (c *Clock) Stop() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	c.ticker = nil
}

func (c *Clock) Running() bool {
	return c.ticker != nil
}

// C returns the tick channel, or nil while stopped so a select on it blocks.
func (c *Clock) C() <-chan time.Time {
	if c.ticker == nil {
		return nil
	}
	return c.ticker.C()
}
