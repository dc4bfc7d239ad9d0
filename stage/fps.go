package stage

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// fpsRefresh is how often the overlay text is rebuilt.
const fpsRefresh = 500 * time.Millisecond

// fpsOverlay shows the current FPS and TPS in the top-left corner.
type fpsOverlay struct {
	since time.Duration
	text  string
}

func (o *fpsOverlay) update(dt time.Duration) {
	o.since += dt
	if o.text != "" && o.since < fpsRefresh {
		return
	}
	o.since = 0
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.text == "" {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, 100, 32, color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrintAt(screen, o.text, 4, 0)
}
