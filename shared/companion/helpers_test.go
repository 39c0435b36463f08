package companion

import "time"

var epoch = time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)

var hubViewport = Viewport{Width: 1280, Height: 800}

func durationOf(ns float64) time.Duration {
	return time.Duration(ns)
}

func newTestPet() (*Companion, *ManualClock) {
	clock := NewManualClock(epoch)
	return New(hubViewport, clock.Now(), DefaultTuning()), clock
}

// station mirrors the hub's cat station docked at the bottom right.
var station = StaticAnchors{
	RestAnchor: {X: 900, Y: 700, W: 160, H: 64},
	FeedAnchor: {X: 1080, Y: 700, W: 160, H: 64},
}
