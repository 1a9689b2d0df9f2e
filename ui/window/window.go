package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/pkg/errors"
	"github.com/they4kman/minesweep/game"
	"github.com/they4kman/minesweep/ui"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	title            = "minesweep"
	textScale        = 2
	bannerScale      = 4
	directorInterval = 250 * time.Millisecond
)

// Run opens the game window and plays until it is closed. It must be called
// from within pixelgl.Run. When director is non-nil it makes the moves,
// otherwise the mouse does: left button reveals, right button flags. Enter
// starts a new game once the current one has ended.
func Run(config game.Config, director game.Director) error {
	session, err := game.NewSession(config)
	if err != nil {
		return err
	}
	layout := ui.NewLayout(config.Size)

	win, err := pixelgl.NewWindow(pixelgl.WindowConfig{
		Title:  title,
		Bounds: layout.Bounds(),
		VSync:  true,
	})
	if err != nil {
		return errors.Wrap(err, "creating window")
	}
	defer win.Destroy()

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	directorTick := time.NewTicker(directorInterval)
	defer directorTick.Stop()

	for !win.Closed() {
		if session.Outcome().IsTerminal() {
			if win.JustPressed(pixelgl.KeyEnter) {
				config.Seed = session.Board().Rand().Int63()
				if session, err = game.NewSession(config); err != nil {
					return err
				}
			}
		} else if director != nil {
			select {
			case <-directorTick.C:
				director.Act(session)
			default:
			}
		} else {
			handleMouse(win, layout, session)
		}

		win.Clear(colornames.Gainsboro)
		drawBoard(win, layout, atlas, session.Board())
		drawHeader(win, layout, atlas, session)
		win.Update()
	}
	return nil
}

func handleMouse(win *pixelgl.Window, layout ui.Layout, session *game.Session) {
	row, col, ok := layout.CellAt(win.MousePosition())
	if !ok {
		return
	}

	var err error
	switch {
	case win.JustPressed(pixelgl.MouseButtonLeft):
		err = session.HandleReveal(row, col)
	case win.JustPressed(pixelgl.MouseButtonRight):
		err = session.HandleFlag(row, col)
	}
	if err != nil {
		game.Log.WithError(err).Warn("ignoring click")
	}
}

func drawBoard(win *pixelgl.Window, layout ui.Layout, atlas *text.Atlas, board *game.Board) {
	imd := imdraw.New(nil)

	for _, cell := range board.Cells() {
		state := cell.State()
		rect := layout.CellRect(cell.Row(), cell.Col())
		center := rect.Center()
		width := layout.CellWidth

		imd.Color = ui.CellFill(state)
		imd.Push(rect.Min, rect.Max)
		imd.Rectangle(0)

		switch {
		case state == game.Mine || state == game.MineLosing:
			imd.Color = colornames.Black
			imd.Push(center)
			imd.Circle(width/2-5, 0)
		case state == game.Flag || state == game.FlagWrong:
			imd.Color = colornames.Red
			imd.Push(
				pixel.V(center.X, rect.Max.Y-width/4),
				pixel.V(rect.Min.X+width/4, rect.Min.Y+width/4),
				pixel.V(rect.Max.X-width/4, rect.Min.Y+width/4),
			)
			imd.Polygon(0)
			if state == game.FlagWrong {
				imd.Color = colornames.Black
				imd.Push(rect.Min.Add(pixel.V(5, 5)), rect.Max.Sub(pixel.V(5, 5)))
				imd.Line(2)
			}
		}

		imd.Color = colornames.Black
		imd.Push(rect.Min, rect.Max)
		imd.Rectangle(1)
	}

	imd.Draw(win)

	for _, label := range ui.CellLabels(layout, board) {
		orig := label.Center.Sub(pixel.V(
			atlas.Glyph('0').Advance*textScale/2,
			atlas.LineHeight()*textScale/4,
		))
		drawText(win, atlas, orig, textScale, colornames.Black, label.Text)
	}
}

func drawHeader(win *pixelgl.Window, layout ui.Layout, atlas *text.Atlas, session *game.Session) {
	bounds := layout.Bounds()
	timer := fmt.Sprintf("Time: %ds", session.ElapsedSeconds())
	left, right := layout.HeaderAnchors(atlas.Glyph('0').Advance * float64(len(timer)) * textScale)

	drawText(win, atlas, left, textScale, colornames.Red, fmt.Sprintf("%d", session.RemainingMines()))
	drawText(win, atlas, right, textScale, colornames.Red, timer)

	if banner, bannerColor, ok := ui.OutcomeBanner(session.Outcome()); ok {
		width := atlas.Glyph('W').Advance * float64(len(banner)) * bannerScale
		drawText(win, atlas, bounds.Center().Sub(pixel.V(width/2, 0)), bannerScale, bannerColor, banner)
	}
}

func drawText(win *pixelgl.Window, atlas *text.Atlas, orig pixel.Vec, scale float64, col color.Color, s string) {
	txt := text.New(orig, atlas)
	txt.Color = col
	fmt.Fprint(txt, s)
	txt.Draw(win, pixel.IM.Scaled(orig, scale))
}
