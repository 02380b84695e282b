package main

import "time"

// pacer caps the frame rate by sleeping until the next frame deadline.
type pacer struct {
	interval float64 // seconds; 0 disables the cap
	now      func() float64
	sleep    func(time.Duration)

	started bool
	next    float64
}

func newPacer(fps int, now func() float64) *pacer {
	p := &pacer{now: now, sleep: time.Sleep}
	if fps > 0 {
		p.interval = 1 / float64(fps)
	}
	return p
}

func (p *pacer) Wait() {
	if p.interval == 0 {
		return
	}
	now := p.now()
	// Don't try to catch up after a stall
	if !p.started || now-p.next > p.interval {
		p.next = now
		p.started = true
	}
	p.next += p.interval
	if d := p.next - now; d > 0 {
		p.sleep(time.Duration(d * float64(time.Second)))
	}
}
