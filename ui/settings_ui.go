package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/pethub/components"
	"github.com/automoto/pethub/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsUI is the ebitenui panel for the pet settings
type SettingsUI struct {
	UI       *ebitenui.UI
	Settings *components.SettingsData

	// Widget references for updates
	panel         *widget.Container
	enabledButton *widget.Button
	speciesLabel  *widget.Label
	debugButton   *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewSettingsUI creates the settings panel bound to settings
func NewSettingsUI(settings *components.SettingsData) *SettingsUI {
	sui := &SettingsUI{Settings: settings}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	sui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	sui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (sui *SettingsUI) buildUI() {
	// Transparent root so the hub stays visible around the panel
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(16)),
		)),
	)

	padding := widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}
	sui.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 34, 30, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	sui.panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Settings", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	// Pet on/off
	sui.enabledButton = sui.newButton("", func() {
		systems.SetPetEnabled(sui.Settings, !sui.Settings.PetEnabled)
		sui.UpdateUI()
	})
	sui.panel.AddChild(sui.row("Show pet", sui.enabledButton))

	// Species selector
	sui.speciesLabel = widget.NewLabel(
		widget.LabelOpts.Text(sui.Settings.Species.String(), &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 230, 160, 255},
		}),
	)
	changeButton := sui.newButton("Change", func() {
		systems.CycleSpecies(sui.Settings)
		sui.UpdateUI()
	})
	sui.panel.AddChild(sui.row("Pet type", sui.speciesLabel, changeButton))

	// Debug overlay
	sui.debugButton = sui.newButton("", func() {
		sui.Settings.Debug = !sui.Settings.Debug
		sui.Settings.Dirty = true
		sui.UpdateUI()
	})
	sui.panel.AddChild(sui.row("Debug overlay", sui.debugButton))

	sui.panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Tab closes this panel", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 170, 160, 255},
		}),
	))

	rootContainer.AddChild(sui.panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SettingsUI) row(title string, widgets ...widget.PreferredSizeLocateableWidget) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	for _, w := range widgets {
		row.AddChild(w)
	}
	return row
}

func (sui *SettingsUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 22)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{90, 74, 62, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{120, 98, 80, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{70, 58, 48, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{50, 50, 50, 255}),
	}
}

// UpdateUI refreshes the widgets from the settings
func (sui *SettingsUI) UpdateUI() {
	if sui.enabledButton != nil {
		if t := sui.enabledButton.Text(); t != nil {
			t.Label = onOff(sui.Settings.PetEnabled)
		}
	}
	if sui.speciesLabel != nil {
		sui.speciesLabel.Label = sui.Settings.Species.String()
	}
	if sui.debugButton != nil {
		if t := sui.debugButton.Text(); t != nil {
			t.Label = onOff(sui.Settings.Debug)
		}
	}
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

// Update runs the UI and publishes the panel's screen area so clicks on it
// are not routed to the pet.
func (sui *SettingsUI) Update() {
	sui.UI.Update()
	// Keyboard shortcuts may have changed settings behind our back
	sui.UpdateUI()
	sui.Settings.PanelRect = sui.panel.GetWidget().Rect
}
