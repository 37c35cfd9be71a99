package tui

import (
	"fmt"
	"strings"

	"github.com/tuigames/fruitcatch/internal/config"
	"github.com/tuigames/fruitcatch/internal/core"
	"github.com/tuigames/fruitcatch/internal/game"
)

// Visual characters for rendering
const (
	FruitChar   = '●'
	HeartChar   = '♥'
	BombChar    = '◉'
	GroundChar  = '═'
	DividerChar = '·'
)

// itemSprite is the stage-side record for one falling item visual.
type itemSprite struct {
	kind game.Kind
	lane game.Lane
	y    float64
}

// stage implements the engine's presentation collaborators over a cell
// buffer. The engine only ever sees opaque handles; the stage owns the
// handle-to-sprite mapping (and nothing else about the simulation).
type stage struct {
	field config.PlayfieldConfig

	next    game.Handle
	sprites map[game.Handle]*itemSprite

	basket  game.Lane
	score   int
	seconds int
	lives   int
	message string
}

func newStage(field config.PlayfieldConfig) *stage {
	return &stage{
		field:   field,
		sprites: make(map[game.Handle]*itemSprite),
	}
}

// Create implements game.ItemPresenter.
func (st *stage) Create(kind game.Kind, lane game.Lane, y float64) game.Handle {
	st.next++
	st.sprites[st.next] = &itemSprite{kind: kind, lane: lane, y: y}
	return st.next
}

// Reposition implements game.ItemPresenter. Unknown handles are ignored.
func (st *stage) Reposition(h game.Handle, y float64) {
	if sp, ok := st.sprites[h]; ok {
		sp.y = y
	}
}

// Destroy implements game.ItemPresenter.
func (st *stage) Destroy(h game.Handle) {
	delete(st.sprites, h)
}

// Clear implements game.ItemPresenter.
func (st *stage) Clear() {
	st.sprites = make(map[game.Handle]*itemSprite)
}

// RenderScore implements game.HUDPresenter.
func (st *stage) RenderScore(score int) { st.score = score }

// RenderTime implements game.HUDPresenter.
func (st *stage) RenderTime(seconds int) { st.seconds = seconds }

// RenderLife implements game.HUDPresenter.
func (st *stage) RenderLife(count int) { st.lives = count }

// ShowMessage implements game.HUDPresenter.
func (st *stage) ShowMessage(text string) { st.message = text }

// HideMessage implements game.HUDPresenter.
func (st *stage) HideMessage() { st.message = "" }

// MoveTo implements game.BasketPositioner.
func (st *stage) MoveTo(lane game.Lane) { st.basket = lane }

// laneX returns the center column for a lane on a screen of width w.
func laneX(lane game.Lane, w int) int {
	return (2*int(lane) + 1) * w / (2 * game.LaneCount)
}

// spriteCell maps an item kind to its glyph and color.
func spriteCell(kind game.Kind) core.Cell {
	switch kind {
	case game.KindApple:
		return core.Cell{Rune: FruitChar, Color: core.ColorRed}
	case game.KindOrange:
		return core.Cell{Rune: FruitChar, Color: core.ColorOrange}
	case game.KindGrape:
		return core.Cell{Rune: FruitChar, Color: core.ColorMagenta}
	case game.KindHeart:
		return core.Cell{Rune: HeartChar, Color: core.ColorBrightRed}
	case game.KindBomb:
		return core.Cell{Rune: BombChar, Color: core.ColorGray}
	default:
		return core.Cell{Rune: '?', Color: core.ColorDefault}
	}
}

// Draw renders the HUD, playfield, basket and items into the buffer.
func (st *stage) Draw(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	playRows := h - 1 // Row 0 is the HUD line
	if playRows < 2 {
		return
	}

	// Playfield pixel to screen row. Rows above the top edge (spawn
	// offset) simply fall outside the visible band.
	rowFor := func(y float64) int {
		return 1 + int(y/st.field.Height*float64(playRows-1))
	}

	st.drawHUD(dst, w)

	// Lane dividers.
	for y := 1; y < h; y++ {
		dst.SetCell(w/3, y, core.Cell{Rune: DividerChar, Color: core.ColorGray})
		dst.SetCell(2*w/3, y, core.Cell{Rune: DividerChar, Color: core.ColorGray})
	}

	// Ground line at the bottom of the playfield.
	dst.DrawHLine(0, h-1, w, GroundChar, core.ColorGray)

	// Basket sits at the middle of the catch zone band.
	basketRow := rowFor((st.field.CatchZoneTop + st.field.CatchZoneBottom) / 2)
	bx := laneX(st.basket, w)
	dst.SetCell(bx-1, basketRow, core.Cell{Rune: '\\', Color: core.ColorYellow})
	dst.SetCell(bx, basketRow, core.Cell{Rune: '_', Color: core.ColorYellow})
	dst.SetCell(bx+1, basketRow, core.Cell{Rune: '/', Color: core.ColorYellow})

	// Falling items.
	for _, sp := range st.sprites {
		row := rowFor(sp.y)
		if row < 1 || row >= h {
			continue
		}
		dst.SetCell(laneX(sp.lane, w), row, spriteCell(sp.kind))
	}

	if st.message != "" {
		drawCenteredMessage(dst, st.message, "Press R to restart, Q to quit")
	}
}

func (st *stage) drawHUD(dst *core.Screen, w int) {
	left := fmt.Sprintf(" Score: %d   Time: %ds", st.score, st.seconds)
	dst.DrawText(0, 0, left)

	hearts := strings.Repeat(string(HeartChar), st.lives)
	dst.DrawTextColored(w-st.lives-2, 0, hearts, core.ColorBrightRed)
}

// drawCenteredMessage draws a boxed two-line message in the middle of
// the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
