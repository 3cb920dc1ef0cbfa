package spec

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/zurustar/ebispec/pkg/scene"
)

var (
	backgroundColor = color.RGBA{0x20, 0x20, 0x28, 0xFF}
	tallyColor      = color.White
	failColor       = color.RGBA{0xFF, 0x50, 0x50, 0xFF}
	defaultFace     = text.NewGoXFace(basicfont.Face7x13)
)

const (
	screenWidth  = 640
	screenHeight = 480
)

// Game adapts the harness to the Ebitengine game loop. Update feeds frame
// time to the driver and stops the loop when the run completes; Draw renders
// the scene tree the specs build plus a small progress line.
type Game struct {
	sched  *Scheduler
	driver *Driver
	root   *scene.Node

	timeout   time.Duration
	startTime time.Time
	lastFrame time.Time
	started   bool
}

// NewGame creates the game-loop adapter. A timeout of 0 means no timeout;
// a positive timeout stops a wedged run (a spec that requests replays
// forever) after that much wall-clock time.
func NewGame(sched *Scheduler, root *scene.Node, timeout time.Duration) *Game {
	return &Game{
		sched:   sched,
		driver:  NewDriver(sched),
		root:    root,
		timeout: timeout,
	}
}

// Update advances the harness by one frame.
func (g *Game) Update() error {
	now := time.Now()

	// Run setup happens on the first Update so Ebitengine is fully
	// initialized before any spec touches the scene.
	if !g.started {
		g.started = true
		g.startTime = now
		g.lastFrame = now
		g.sched.Start()
		return nil
	}

	if g.timeout > 0 && now.Sub(g.startTime) >= g.timeout {
		return ebiten.Termination
	}

	delta := now.Sub(g.lastFrame).Seconds()
	g.lastFrame = now

	g.driver.OnFrame(delta)

	if g.sched.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the scene tree and the progress line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.root.Draw(screen)

	sum := g.sched.Summary()
	status := fmt.Sprintf("%d passed, %d failed", sum.Passes, sum.Failures)
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, float64(screenHeight)-24)
	if sum.Failures > 0 {
		op.ColorScale.ScaleWithColor(failColor)
	} else {
		op.ColorScale.ScaleWithColor(tallyColor)
	}
	text.Draw(screen, status, defaultFace, op)
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Run executes the suite in a window and returns once the run completes or
// the window is closed.
func Run(sched *Scheduler, root *scene.Node, timeout time.Duration) error {
	game := NewGame(sched, root, timeout)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("ebispec")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
