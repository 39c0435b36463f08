package companion

// Anchor identifiers the router knows about.
const (
	RestAnchor = "rest"
	FeedAnchor = "feed"
)

// AnchorSource resolves an anchor id to its current rectangle. It is queried
// on every use because layout may move anchors at any time; ok is false when
// the anchor does not exist.
type AnchorSource interface {
	Anchor(id string) (Rect, bool)
}

// AnchorFunc adapts a function to AnchorSource.
type AnchorFunc func(id string) (Rect, bool)

func (f AnchorFunc) Anchor(id string) (Rect, bool) {
	return f(id)
}

// StaticAnchors is a fixed AnchorSource.
type StaticAnchors map[string]Rect

func (s StaticAnchors) Anchor(id string) (Rect, bool) {
	r, ok := s[id]
	return r, ok
}

// Event is one normalized input. The set is closed: PointerMove, TouchMove,
// TouchEnd and Click.
type Event interface {
	event()
}

// PointerMove is a mouse motion to At.
type PointerMove struct {
	At Vec
}

// TouchMove carries every active touch; only the first one is used.
type TouchMove struct {
	Touches []Vec
}

// TouchEnd carries the touches still down after a finger lifted.
type TouchEnd struct {
	Remaining []Vec
}

// Click is a genuine click or tap at At.
type Click struct {
	At Vec
}

func (PointerMove) event() {}
func (TouchMove) event()   {}
func (TouchEnd) event()    {}
func (Click) event()       {}

// Hit is the result of click classification.
type Hit int

const (
	HitMiss Hit = iota
	HitPet
	HitRest
	HitFeed
)

func (h Hit) String() string {
	switch h {
	case HitPet:
		return "pet"
	case HitRest:
		return "rest"
	case HitFeed:
		return "feed"
	}
	return "miss"
}

// Classify checks at against the pet bounds, then the rest anchor, then the
// feed anchor. Missing anchors are skipped.
func Classify(at Vec, pet Rect, anchors AnchorSource) Hit {
	if pet.Contains(at) {
		return HitPet
	}
	if anchors == nil {
		return HitMiss
	}
	if r, ok := anchors.Anchor(RestAnchor); ok && r.Contains(at) {
		return HitRest
	}
	if r, ok := anchors.Anchor(FeedAnchor); ok && r.Contains(at) {
		return HitFeed
	}
	return HitMiss
}

// Outcome tells the caller what an event did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeRetarget
	OutcomePlay
	OutcomeAnchor
	OutcomeFollow
	OutcomeFeed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRetarget:
		return "retarget"
	case OutcomePlay:
		return "play"
	case OutcomeAnchor:
		return "anchor"
	case OutcomeFollow:
		return "follow"
	case OutcomeFeed:
		return "feed"
	}
	return "none"
}
