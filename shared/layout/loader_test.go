package layout

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/pethub/shared/companion"
)

const hubTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="80" height="50" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="3">
 <objectgroup id="1" name="Anchors">
  <object id="1" name="rest" x="900" y="700" width="160" height="64">
   <properties>
    <property name="dock" value="bottom-right"/>
    <property name="label" value="Cat house"/>
   </properties>
  </object>
  <object id="2" name="feed" x="1080" y="700" width="160" height="64">
   <properties>
    <property name="dock" value="bottom-right"/>
    <property name="label" value="Feeding place"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func loadTestHub(t *testing.T) *Hub {
	t.Helper()
	fsys := fstest.MapFS{"hub/hub.tmx": &fstest.MapFile{Data: []byte(hubTMX)}}
	hub, err := Load(fsys, "hub/hub.tmx")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return hub
}

func TestLoadReadsRegions(t *testing.T) {
	hub := loadTestHub(t)

	if hub.Width != 1280 || hub.Height != 800 {
		t.Fatalf("size = %dx%d, want 1280x800", hub.Width, hub.Height)
	}
	if len(hub.Regions) != 2 {
		t.Fatalf("regions = %d, want 2", len(hub.Regions))
	}

	rest, ok := hub.Region(companion.RestAnchor)
	if !ok {
		t.Fatal("rest region missing")
	}
	if rest.Label != "Cat house" {
		t.Fatalf("label = %q", rest.Label)
	}
	if rest.MarginX != 220 || rest.MarginY != 36 {
		t.Fatalf("margins = %v,%v, want 220,36", rest.MarginX, rest.MarginY)
	}
	if rest.Dock != (Dock{Horizontal: "right", Vertical: "bottom"}) {
		t.Fatalf("dock = %+v", rest.Dock)
	}
}

func TestRegionsFollowViewport(t *testing.T) {
	hub := loadTestHub(t)
	vp := companion.Viewport{Width: 1280, Height: 800}
	anchors := hub.Anchors(func() companion.Viewport { return vp })

	tests := []struct {
		name string
		vp   companion.Viewport
		id   string
		want companion.Rect
	}{
		{"rest at design size", companion.Viewport{Width: 1280, Height: 800}, companion.RestAnchor, companion.Rect{X: 900, Y: 700, W: 160, H: 64}},
		{"feed at design size", companion.Viewport{Width: 1280, Height: 800}, companion.FeedAnchor, companion.Rect{X: 1080, Y: 700, W: 160, H: 64}},
		{"rest after grow", companion.Viewport{Width: 1600, Height: 900}, companion.RestAnchor, companion.Rect{X: 1220, Y: 800, W: 160, H: 64}},
		{"feed after shrink", companion.Viewport{Width: 640, Height: 480}, companion.FeedAnchor, companion.Rect{X: 440, Y: 380, W: 160, H: 64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp = tt.vp
			got, ok := anchors.Anchor(tt.id)
			if !ok {
				t.Fatalf("anchor %q missing", tt.id)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}

	if _, ok := anchors.Anchor("garden"); ok {
		t.Fatal("unknown anchor resolved")
	}
}

func TestResolveDocks(t *testing.T) {
	vp := companion.Viewport{Width: 1000, Height: 600}
	tests := []struct {
		dock string
		want companion.Rect
	}{
		{"", companion.Rect{X: 10, Y: 570, W: 100, H: 20}},
		{"top-left", companion.Rect{X: 10, Y: 10, W: 100, H: 20}},
		{"bottom-right", companion.Rect{X: 890, Y: 570, W: 100, H: 20}},
		{"center-middle", companion.Rect{X: 460, Y: 300, W: 100, H: 20}},
	}
	for _, tt := range tests {
		d, err := ParseDock(tt.dock)
		if err != nil {
			t.Fatalf("ParseDock(%q): %v", tt.dock, err)
		}
		r := Region{W: 100, H: 20, Dock: d, MarginX: 10, MarginY: 10}
		if got := r.Resolve(vp); got != tt.want {
			t.Errorf("dock %q: got %+v, want %+v", tt.dock, got, tt.want)
		}
	}
}

func TestParseDockRejectsUnknown(t *testing.T) {
	if _, err := ParseDock("bottom-sideways"); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadErrors(t *testing.T) {
	empty := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Decor"/>
</map>
`
	fsys := fstest.MapFS{"empty.tmx": &fstest.MapFile{Data: []byte(empty)}}

	if _, err := Load(fsys, "empty.tmx"); err == nil {
		t.Fatal("expected error for a map without anchors")
	}
	if _, err := Load(fsys, "missing.tmx"); err == nil {
		t.Fatal("expected error for a missing file")
	}
}
