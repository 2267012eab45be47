// Package render is an ebiten front-end for the game core: it maps key
// presses to core actions, drives auto-drop from the snapshot's drop
// interval, and draws the board, the falling piece, the on-deck preview
// and the HUD. The core stays pure; this package owns all side effects.
package render

import (
	"image/color"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"

	"github.com/plus3/blockfall/core"
)

const (
	CellSize = 24
	boardX   = 16
	boardY   = 16

	ScreenWidth  = boardX*2 + core.BoardWidth*CellSize + 140
	ScreenHeight = boardY*2 + core.BoardHeight*CellSize
)

// repeat delays in ticks for held movement keys.
const (
	repeatDelay    = 10
	repeatInterval = 3
)

// Game implements ebiten.Game around a core session. It owns the session
// value and the piece source; all transitions go through apply so the
// auto-drop accumulator always sees the current drop interval.
type Game struct {
	session core.Session
	src     core.Source

	elapsed time.Duration
	flash   *gween.Tween
	flashA  float32

	inspector *Inspector
	backend   *ImguiBackend
}

// NewGame returns a front-end around a fresh session.
func NewGame(src core.Source) *Game {
	return &Game{
		session: core.NewSession(),
		src:     src,
	}
}

// WithInspector attaches the imgui session inspector. The backend must
// already have a window (see cmd/fall-play).
func (g *Game) WithInspector(backend *ImguiBackend, inspector *Inspector) *Game {
	g.backend = backend
	g.inspector = inspector
	return g
}

// Snapshot exposes the current read model, mainly for the inspector.
func (g *Game) Snapshot() core.Snapshot {
	return g.session.Snapshot()
}

func (g *Game) apply(a core.Action) {
	var events []core.Event
	g.session, events = core.Apply(g.session, a, g.src)

	for _, ev := range events {
		switch ev.Kind {
		case core.EventLineCleared, core.EventTetrisCleared:
			g.flash = gween.New(0.8, 0, 0.35, ease.Linear)
		case core.EventStarted:
			g.elapsed = 0
			g.flash = nil
			g.flashA = 0
		}
	}
	if g.inspector != nil {
		g.inspector.Record(events)
	}
}

func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// Update runs one fixed 60 TPS step: input, then the auto-drop clock.
func (g *Game) Update() error {
	if g.backend != nil {
		g.backend.BeginFrame()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.apply(core.Action{Op: core.OpStart})
	}
	if repeating(ebiten.KeyArrowLeft) {
		g.apply(core.Action{Op: core.OpMoveLeft})
	}
	if repeating(ebiten.KeyArrowRight) {
		g.apply(core.Action{Op: core.OpMoveRight})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.apply(core.Action{Op: core.OpRotate})
	}
	if repeating(ebiten.KeyArrowDown) {
		g.apply(core.Action{Op: core.OpSoftDrop})
		g.elapsed = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.apply(core.Action{Op: core.OpHardDrop})
		g.elapsed = 0
	}

	dt := time.Second / 60

	// The core never schedules anything: the front-end re-reads the drop
	// interval every step and ticks when it elapses.
	if interval := g.session.Interval; interval > 0 {
		g.elapsed += dt
		if g.elapsed >= interval {
			g.elapsed = 0
			g.apply(core.Tick(interval))
		}
	}

	if g.flash != nil {
		v, done := g.flash.Update(float32(dt.Seconds()))
		g.flashA = v
		if done {
			g.flash = nil
			g.flashA = 0
		}
	}

	if g.inspector != nil {
		g.inspector.Render(g.session.Snapshot(), float32(dt.Seconds()))
	}
	if g.backend != nil {
		g.backend.EndFrame()
	}
	return nil
}

func cellColor(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func drawCell(screen *ebiten.Image, x, y int, clr color.Color) {
	px := float32(boardX + x*CellSize)
	py := float32(boardY + y*CellSize)
	vector.DrawFilledRect(screen, px+1, py+1, CellSize-2, CellSize-2, clr, false)
}

// Draw renders the snapshot. Mask cells above the visible board are
// skipped, matching the core's collision rule.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()

	vector.DrawFilledRect(screen,
		float32(boardX), float32(boardY),
		float32(core.BoardWidth*CellSize), float32(core.BoardHeight*CellSize),
		color.RGBA{20, 20, 28, 255}, false)

	for y := range core.BoardHeight {
		for x := range core.BoardWidth {
			if snap.Board[y][x].Occupied {
				drawCell(screen, x, y, cellColor(snap.Board[y][x].Color))
			}
		}
	}

	if snap.Started && !snap.Over {
		m := snap.Active.Mask()
		clr := cellColor(snap.Active.Kind.Color())
		for i := range 4 {
			for j := range 4 {
				if !m[i][j] {
					continue
				}
				y := snap.Active.Y + i
				if y < 0 {
					continue
				}
				drawCell(screen, snap.Active.X+j, y, clr)
			}
		}
	}

	if g.flashA > 0 {
		vector.DrawFilledRect(screen,
			float32(boardX), float32(boardY),
			float32(core.BoardWidth*CellSize), float32(core.BoardHeight*CellSize),
			color.RGBA{255, 255, 255, uint8(g.flashA * 255)}, false)
	}

	g.drawSidebar(screen, snap)

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) drawSidebar(screen *ebiten.Image, snap core.Snapshot) {
	face := basicfont.Face7x13
	sideX := boardX + core.BoardWidth*CellSize + 20
	white := color.White

	text.Draw(screen, "SCORE", face, sideX, boardY+16, white)
	text.Draw(screen, strconv.Itoa(snap.Score), face, sideX, boardY+32, white)
	text.Draw(screen, "LEVEL", face, sideX, boardY+64, white)
	text.Draw(screen, strconv.Itoa(snap.Level), face, sideX, boardY+80, white)
	text.Draw(screen, "ROWS", face, sideX, boardY+112, white)
	text.Draw(screen, strconv.Itoa(snap.Rows), face, sideX, boardY+128, white)

	text.Draw(screen, "NEXT", face, sideX, boardY+160, white)
	if snap.Started {
		m := snap.Next.RotationMask(0)
		clr := cellColor(snap.Next.Color())
		for i := range 4 {
			for j := range 4 {
				if !m[i][j] {
					continue
				}
				px := float32(sideX + j*12)
				py := float32(boardY + 170 + i*12)
				vector.DrawFilledRect(screen, px, py, 10, 10, clr, false)
			}
		}
	}

	switch {
	case snap.Over:
		text.Draw(screen, "GAME OVER", face, sideX, boardY+260, color.RGBA{255, 80, 80, 255})
		text.Draw(screen, "ENTER: restart", face, sideX, boardY+276, white)
	case !snap.Started:
		text.Draw(screen, "ENTER: start", face, sideX, boardY+260, white)
	}
}

// Layout fixes the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return ScreenWidth, ScreenHeight
}
