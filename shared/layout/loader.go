package layout

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// AnchorLayer is the object group holding anchor regions.
const AnchorLayer = "Anchors"

// Load parses a TMX file and returns its anchor regions. It takes an fs.FS
// so callers can pass the embedded assets or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Hub, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	hub := &Hub{
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}
	mapW, mapH := float64(hub.Width), float64(hub.Height)

	for _, og := range m.ObjectGroups {
		if og.Name != AnchorLayer {
			continue
		}
		for _, o := range og.Objects {
			id := o.Properties.GetString("anchor")
			if id == "" {
				id = o.Name
			}
			if id == "" {
				return nil, fmt.Errorf("%s: object %d has no anchor id", tmxPath, o.ID)
			}
			dock, err := ParseDock(o.Properties.GetString("dock"))
			if err != nil {
				return nil, fmt.Errorf("%s: anchor %q: %w", tmxPath, id, err)
			}

			r := Region{
				ID:    id,
				Label: o.Properties.GetString("label"),
				Hint:  o.Properties.GetString("hint"),
				W:     o.Width,
				H:     o.Height,
				Dock:  dock,
			}
			r.MarginX, r.MarginY = margins(dock, o.X, o.Y, o.Width, o.Height, mapW, mapH)
			hub.Regions = append(hub.Regions, r)
		}
	}

	if len(hub.Regions) == 0 {
		return nil, fmt.Errorf("%s: no objects in %q layer", tmxPath, AnchorLayer)
	}

	// Stable order for drawing and for tests
	sort.SliceStable(hub.Regions, func(i, j int) bool {
		return hub.Regions[i].ID < hub.Regions[j].ID
	})
	return hub, nil
}

// margins measures the object's distance from the edges it is docked to,
// in the map's design coordinates.
func margins(d Dock, x, y, w, h, mapW, mapH float64) (mx, my float64) {
	switch d.Horizontal {
	case "right":
		mx = mapW - x - w
	case "center":
		mx = x - (mapW-w)/2
	default:
		mx = x
	}
	switch d.Vertical {
	case "top":
		my = y
	case "middle":
		my = y - (mapH-h)/2
	default:
		my = mapH - y - h
	}
	return mx, my
}

// ParseDock reads values like "bottom-right", "top", "center".
func ParseDock(s string) (Dock, error) {
	d := Dock{Horizontal: "left", Vertical: "bottom"}
	if s == "" {
		return d, nil
	}
	for _, part := range strings.Split(strings.ToLower(s), "-") {
		switch part {
		case "left", "right", "center":
			d.Horizontal = part
		case "top", "bottom", "middle":
			d.Vertical = part
		default:
			return Dock{}, fmt.Errorf("unknown dock %q", s)
		}
	}
	return d, nil
}
