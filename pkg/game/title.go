package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TitleScreen is the front door: circuit name, start prompt.
type TitleScreen struct {
	circuitName    string
	startTime      time.Time
	onStartPressed func()
}

// NewTitleScreen creates a new title screen.
func NewTitleScreen(circuitName string, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		circuitName:    circuitName,
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen.
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen.
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	face := text.NewGoXFace(bitmapfont.Face)
	centerX := float64(width) / 2

	// Title with a pulsing brightness.
	titleText := "HOTLAP"
	titleScale := 8.0
	titleWidth := text.Advance(titleText, face) * titleScale
	brightness := 0.8 + 0.2*math.Sin(elapsed*1.5)
	titleOp := &text.DrawOptions{}
	titleOp.GeoM.Scale(titleScale, titleScale)
	titleOp.GeoM.Translate(centerX-titleWidth/2, float64(height)/3-24)
	titleOp.ColorScale.ScaleWithColor(color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	})
	text.Draw(screen, titleText, face, titleOp)

	subtitle := "One lap of " + ts.circuitName
	subScale := 2.0
	subWidth := text.Advance(subtitle, face) * subScale
	subOp := &text.DrawOptions{}
	subOp.GeoM.Scale(subScale, subScale)
	subOp.GeoM.Translate(centerX-subWidth/2, float64(height)/3+64)
	subOp.ColorScale.ScaleWithColor(color.RGBA{180, 180, 200, 255})
	text.Draw(screen, subtitle, face, subOp)

	// Blinking start prompt.
	if int(elapsed*2)%2 == 0 {
		prompt := "Press ENTER to ride - P toggles autopilot - ESC exits"
		promptScale := 1.5
		promptWidth := text.Advance(prompt, face) * promptScale
		promptOp := &text.DrawOptions{}
		promptOp.GeoM.Scale(promptScale, promptScale)
		promptOp.GeoM.Translate(centerX-promptWidth/2, float64(height)-90)
		promptOp.ColorScale.ScaleWithColor(color.RGBA{150, 200, 255, 255})
		text.Draw(screen, prompt, face, promptOp)
	}
}
