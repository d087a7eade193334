package cardboard

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ClearColor Color
	// ShowFPS prints FPS and TPS in the top-left corner.
	ShowFPS bool
}

// boardGame adapts a Board to ebiten.Game.
type boardGame struct {
	board *Board
	cfg   RunConfig
}

func (g *boardGame) Update() error {
	g.board.Update()
	if g.board.updateFunc != nil {
		return g.board.updateFunc()
	}
	return nil
}

func (g *boardGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.toRGBA())
	g.board.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *boardGame) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives the board until the window closes or the
// update func returns an error. When the board has no camera, one covering the
// whole window and centered on world (0, 0) is created.
func Run(board *Board, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("cardboard: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if len(board.cameras) == 0 {
		board.NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)})
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&boardGame{board: board, cfg: cfg})
}
