package ui

import (
	"bytes"
	"image/color"
	"log"

	cfg "github.com/automoto/skyswing/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI is the pair of mouse buttons shown under the game over text
type GameOverUI struct {
	UI *ebitenui.UI

	OnRestart func()
	OnQuit    func()

	buttonFace text.Face
}

func NewGameOverUI(onRestart, onQuit func()) *GameOverUI {
	ui := &GameOverUI{
		OnRestart: onRestart,
		OnQuit:    onQuit,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *GameOverUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.buttonFace = &text.GoTextFace{Source: fontSource, Size: 20}
}

func (ui *GameOverUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	// Keeps the buttons below the title and hint drawn by the game
	spacer := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(1, int(2*cfg.GameOver.ButtonsOffsetY))),
	)
	contentContainer.AddChild(spacer)
	contentContainer.AddChild(ui.buildButtons())

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *GameOverUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(20),
		)),
	)

	container.AddChild(ui.newButton("Restart", color.RGBA{40, 100, 40, 255}, color.RGBA{60, 140, 60, 255}, func() {
		if ui.OnRestart != nil {
			ui.OnRestart()
		}
	}))
	container.AddChild(ui.newButton("Quit", color.RGBA{100, 40, 40, 255}, color.RGBA{140, 60, 60, 255}, func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	return container
}

func (ui *GameOverUI) newButton(label string, idle, hover color.RGBA, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 36)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(idle),
			Hover:   image.NewNineSliceColor(hover),
			Pressed: image.NewNineSliceColor(idle),
		}),
		widget.ButtonOpts.Text(label, &ui.buttonFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *GameOverUI) Update() {
	ui.UI.Update()
}

func (ui *GameOverUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
