package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)

	boardW    = BoardSize*cellWidth + 1  // +1 for right border
	boardH    = BoardSize*cellHeight + 1 // +1 for bottom border
	hudHeight = 3

	// Board + HUD + share line
	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 3
)

// TileColor returns the display color tier for a tile value.
func TileColor(value int) core.Color {
	switch {
	case value == 0:
		return core.ColorGray
	case value <= 4:
		return core.ColorWhite
	case value <= 8:
		return core.ColorYellow
	case value <= 16:
		return core.ColorOrange
	case value < WinTile:
		return core.ColorRed
	default:
		return core.ColorMagenta
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	// Center the board horizontally
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and best score.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "2048"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorCyan)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.session.Score))

	bestStr := fmt.Sprintf("Best: %d", core.Max(g.best, g.session.Score))
	dst.DrawTextColor(core.Max(boardX, boardX+boardW-len(bestStr)), 1, bestStr, core.ColorGreen)

	if g.session.Won && !g.session.GameOver {
		msg := "You won! Keep going"
		dst.DrawTextColor(boardX+(boardW-len(msg))/2, 2, msg, core.ColorBrightGreen)
	}
}

// renderBoard draws the grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for r := range BoardSize {
		for c := range BoardSize {
			val := g.session.Board.Cell(r, c)
			cellX := boardX + c*cellWidth + 1
			cellY := boardY + r*cellHeight + 1

			if val == 0 {
				dst.SetColor(cellX+(cellWidth-1)/2, cellY, '·', TileColor(0))
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := core.Max(0, (cellWidth-1-len(valStr))/2)
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, TileColor(val))
		}
	}
}

// renderOverlays draws the game over box and the share line.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	if !g.session.GameOver {
		return
	}

	centerX, centerY := core.NewRect(boardX, boardY, boardW, boardH).Center()

	headline := "GAME OVER"
	if g.session.Won {
		headline = "You won!"
	}
	g.drawOverlay(dst, centerX, centerY,
		headline,
		fmt.Sprintf("Score: %d", g.session.Score),
		"Press R to restart",
	)

	dst.DrawTextCentered(boardY+boardH+1, g.ShareText())
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightRed
			if g.session.Won {
				color = core.ColorBrightGreen
			}
		}
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, color)
	}
}
