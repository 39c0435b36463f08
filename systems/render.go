package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/pethub/components"
	cfg "github.com/automoto/pethub/config"
	"github.com/automoto/pethub/fonts"
	"github.com/automoto/pethub/shared/companion"
	"github.com/automoto/pethub/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The pet is drawn into its own canvas so it can be mirrored as a whole.
// Ears poke above the 120x80 body box, hence the padding.
const (
	canvasPadTop = 20
	discRadius   = 32
)

var (
	petCanvas  *ebiten.Image
	discImage  *ebiten.Image
	whitePixel *ebiten.Image
)

func renderImages() {
	if discImage != nil {
		return
	}
	size := cfg.Pet.Tuning.Size
	petCanvas = ebiten.NewImage(int(size.X), int(size.Y)+canvasPadTop)

	discImage = ebiten.NewImage(discRadius*2, discRadius*2)
	vector.FillCircle(discImage, discRadius, discRadius, discRadius, color.White, true)

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	whitePixel = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// DrawBackground clears the hub, or leaves it see-through in overlay mode.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	if cfg.Overlay.Enabled {
		screen.Clear()
		return
	}
	screen.Fill(cfg.Hub.Background)
}

// DrawAnchors draws the cat station buttons.
func DrawAnchors(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Anchor.Each(ecs.World, func(e *donburi.Entry) {
		anchor := components.Anchor.Get(e)
		r := components.Object.Get(e).Rect()
		x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)

		fill := cfg.Hub.ButtonColor
		if anchor.Hovered {
			fill = cfg.Hub.ButtonHover
		}
		vector.FillRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x, y, w, h, 2, cfg.Hub.ButtonBorder, false)

		label := anchor.Region.Label
		if label == "" {
			label = anchor.Region.ID
		}
		drawCentered(screen, label, fonts.Bold, r.X+r.W/2, r.Y+r.H/2-4, cfg.Hub.LabelColor)
		if anchor.Region.Hint != "" {
			drawCentered(screen, anchor.Region.Hint, fonts.Small, r.X+r.W/2, r.Y+r.H/2+14, cfg.Hub.HintColor)
		}
	})
}

// DrawPet draws every mounted pet from its snapshot and pose.
func DrawPet(ecs *ecs.ECS, screen *ebiten.Image) {
	renderImages()

	tags.Pet.Each(ecs.World, func(e *donburi.Entry) {
		pet := components.Pet.Get(e)
		anim := components.Animation.Get(e)
		snap := pet.Snapshot()

		frame := 0
		if anim.CurrentAnimation != nil {
			frame = anim.CurrentAnimation.Frame()
		}

		petCanvas.Clear()
		switch pet.Species {
		case companion.Cat:
			drawCat(petCanvas, snap.State, frame)
		default:
			drawBunny(petCanvas, snap.State, frame)
		}
		if snap.State == companion.Eating {
			drawBowl(petCanvas)
		}

		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterLinear
		if snap.Facing == companion.Left {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(float64(petCanvas.Bounds().Dx()), 0)
		}
		op.GeoM.Translate(snap.Position.X, snap.Position.Y-canvasPadTop+pet.Offset)
		screen.DrawImage(petCanvas, op)

		if snap.State == companion.Sleeping {
			drawSleepBubble(screen, snap, frame)
		}
	})
}

// legSwing is the horizontal leg offset for a walk cycle frame.
func legSwing(state companion.BehaviorState, frame int) float32 {
	switch state {
	case companion.Walking, companion.Running:
		return [4]float32{-3, 0, 3, 0}[frame%4]
	case companion.Playing:
		return [2]float32{-2, 2}[frame%2]
	}
	return 0
}

func drawBunny(dst *ebiten.Image, state companion.BehaviorState, frame int) {
	const ox, oy = 10, 10 + canvasPadTop
	swing := legSwing(state, frame)
	headY := float32(0)
	if state == companion.Eating && frame%2 == 1 {
		headY = 3
	}

	// legs behind the body
	drawLeg(dst, ox+18+swing, oy+38, cfg.BunnyFur)
	drawLeg(dst, ox+34-swing, oy+38, cfg.BunnyFur)

	fillEllipse(dst, ox+40, oy+30, 30, 18, cfg.BunnyFur)
	fillEllipse(dst, ox+8, oy+36, 6, 6, color.White)

	hx, hy := float32(ox+62), float32(oy-2)+headY
	fillEllipse(dst, hx+6, hy-6, 6, 14, cfg.BunnyFur)
	fillEllipse(dst, hx+22, hy-6, 6, 14, cfg.BunnyFur)
	fillEllipse(dst, hx+6, hy-5, 3, 10, cfg.BunnyInner)
	fillEllipse(dst, hx+22, hy-5, 3, 10, cfg.BunnyInner)
	fillEllipse(dst, hx+14, hy+18, 14, 14, cfg.BunnyFur)
	drawEyes(dst, hx, hy, state)
	fillEllipse(dst, hx+14, hy+22, 2.2, 1.6, cfg.Nose)
}

func drawCat(dst *ebiten.Image, state companion.BehaviorState, frame int) {
	const ox, oy = 10, 6 + canvasPadTop
	swing := legSwing(state, frame)
	headY := float32(0)
	if state == companion.Eating && frame%2 == 1 {
		headY = 3
	}

	drawTail(dst, ox+6, oy+10, state == companion.Idle && frame == 1)
	drawLeg(dst, ox+22+swing, oy+42, cfg.CatFur)
	drawLeg(dst, ox+40-swing, oy+42, cfg.CatFur)

	fillEllipse(dst, ox+42, oy+34, 28, 16, cfg.CatFur)

	hx, hy := float32(ox+62), float32(oy-2)+headY
	fillTriangle(dst, hx+6, hy-6, hx+12, hy-18, hx+16, hy-6, cfg.CatFur)
	fillTriangle(dst, hx+22, hy-6, hx+26, hy-18, hx+30, hy-6, cfg.CatFur)
	fillEllipse(dst, hx+14, hy+18, 12, 12, cfg.CatFur)
	drawEyes(dst, hx, hy, state)
	fillEllipse(dst, hx+14, hy+22, 2, 1.4, cfg.Nose)

	for _, w := range [][4]float32{
		{0, 22, -10, 20},
		{0, 26, -10, 26},
		{28, 22, 38, 20},
		{28, 26, 38, 26},
	} {
		vector.StrokeLine(dst, hx+w[0], hy+w[1], hx+w[2], hy+w[3], 1, cfg.Ink, true)
	}
}

// drawTail strokes the cat's cubic tail curve; flick lifts its tip.
func drawTail(dst *ebiten.Image, ox, oy float32, flick bool) {
	p0x, p0y := float32(48), float32(24)
	c1x, c1y := float32(54), float32(14)
	c2x, c2y := float32(70), float32(10)
	p3x, p3y := float32(78), float32(22)
	if flick {
		p3y -= 4
	}

	const segments = 12
	px, py := ox+p0x, oy+p0y
	for i := 1; i <= segments; i++ {
		t := float32(i) / segments
		u := 1 - t
		x := u*u*u*p0x + 3*u*u*t*c1x + 3*u*t*t*c2x + t*t*t*p3x
		y := u*u*u*p0y + 3*u*u*t*c1y + 3*u*t*t*c2y + t*t*t*p3y
		vector.StrokeLine(dst, px, py, ox+x, oy+y, 4, cfg.CatTail, true)
		px, py = ox+x, oy+y
	}
}

func drawEyes(dst *ebiten.Image, hx, hy float32, state companion.BehaviorState) {
	if state == companion.Sleeping {
		vector.StrokeLine(dst, hx+8, hy+16, hx+12, hy+16, 1.2, cfg.Ink, true)
		vector.StrokeLine(dst, hx+16, hy+16, hx+20, hy+16, 1.2, cfg.Ink, true)
		return
	}
	vector.FillCircle(dst, hx+10, hy+16, 2.2, cfg.Ink, true)
	vector.FillCircle(dst, hx+18, hy+16, 2.2, cfg.Ink, true)
}

func drawLeg(dst *ebiten.Image, x, y float32, clr color.Color) {
	vector.FillRect(dst, x, y+3, 8, 7, clr, false)
	vector.FillCircle(dst, x+4, y+3, 4, clr, true)
}

func drawBowl(dst *ebiten.Image) {
	const cx, cy = 96, 72 + canvasPadTop
	fillEllipse(dst, cx, cy-4, 10, 3, cfg.Kibble)
	fillEllipse(dst, cx, cy, 16, 6, cfg.Bowl)
}

func drawSleepBubble(screen *ebiten.Image, snap companion.Snapshot, frame int) {
	bx := snap.Position.X + 100
	if snap.Facing == companion.Left {
		bx = snap.Position.X + 20
	}
	by := snap.Position.Y - cfg.Pet.BubbleOffset

	vector.FillCircle(screen, float32(bx), float32(by), 14, cfg.Bubble, true)
	label := "z"
	if frame%2 == 1 {
		label = "zz"
	}
	drawCentered(screen, label, fonts.Bubble, bx, by+5, cfg.Ink)
}

// fillEllipse stretches the shared disc image; vector has no ellipse.
func fillEllipse(dst *ebiten.Image, cx, cy, rx, ry float32, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-discRadius, -discRadius)
	op.GeoM.Scale(float64(rx)/discRadius, float64(ry)/discRadius)
	op.GeoM.Translate(float64(cx), float64(cy))
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(discImage, op)
}

func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, clr color.Color) {
	r, g, b, a := clr.RGBA()
	cr, cg, cb, ca := float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff
	vs := []ebiten.Vertex{
		{DstX: x0, DstY: y0, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, whitePixel, op)
}

func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, cx, baseline float64, clr color.Color) {
	face := name.Get()
	bounds := text.BoundString(face, s)
	x := int(math.Round(cx)) - bounds.Dx()/2 - bounds.Min.X
	text.Draw(screen, s, face, x, int(math.Round(baseline)), clr)
}
