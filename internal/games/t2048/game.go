package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Game hosts a Session for an interactive frontend. It owns the random
// source and the screen geometry; the rules live in Session.
type Game struct {
	rng      *rand.Rand
	session  Session
	best     int // Best score from previous games, for display
	shareURL string

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a new 2048 game. Call Reset before the first Step.
func New() *Game {
	return &Game{}
}

// Reset starts a fresh session seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = NewSession(g.rng)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// SetBest sets the best previous score shown in the HUD.
func (g *Game) SetBest(score int) {
	g.best = score
}

// SetShareURL sets the link appended to the share text.
func (g *Game) SetShareURL(url string) {
	g.shareURL = url
}

// ShareText returns the text offered for sharing once the game is over.
func (g *Game) ShareText() string {
	return ShareText(g.session.Score, g.shareURL)
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// DirectionFrom maps an input frame to a move direction.
// Returns false when the frame carries no directional action.
func DirectionFrom(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// Step applies one input frame. Frames are processed strictly in the order
// they are delivered; non-directional actions are left to the platform.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	dir, ok := DirectionFrom(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	next, moved := g.session.Apply(dir, g.rng)
	g.session = next

	return core.StepResult{State: g.State(), Moved: moved}
}

// Session returns a copy of the current session.
func (g *Game) Session() Session {
	return g.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		GameOver: g.session.GameOver,
		Won:      g.session.Won,
	}
}

// Restore places an in-memory position into the running game. Hosts use it
// to set up specific boards; the random source is kept.
func (g *Game) Restore(s Session) {
	g.session = s
}
