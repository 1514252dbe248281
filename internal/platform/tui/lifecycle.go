package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/looplab/fsm"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Lifecycle states and events.
const (
	StatePlaying = "playing"
	StateOver    = "over"

	eventFinish  = "finish"
	eventRestart = "restart"
)

// Host drives one player's games: it feeds input to the game, records each
// finished game once, and starts new games on request.
// It is shared by pointer so the lifecycle callbacks see the live state.
type Host struct {
	game     *t2048.Game
	store    *storage.Store
	logger   *log.Logger
	player   string
	config   core.RuntimeConfig
	fsm      *fsm.FSM
	lastSave uuid.UUID
	best     int
	nextSeed func() int64
}

// HostOptions configures a Host.
type HostOptions struct {
	Store    *storage.Store // Optional; nil disables recording
	Logger   *log.Logger    // Optional; defaults to the package logger
	Player   string         // Recorded with each game, "local" when empty
	ShareURL string
}

// NewHost creates a host and starts the first game.
// A zero seed in cfg is replaced with a time-based one.
func NewHost(cfg core.RuntimeConfig, opts HostOptions) *Host {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	h := &Host{
		game:   t2048.New(),
		store:  opts.Store,
		logger: logger,
		player: opts.Player,
		config: cfg,
		nextSeed: func() int64 {
			return time.Now().UnixNano()
		},
	}
	h.game.SetShareURL(opts.ShareURL)

	h.fsm = fsm.NewFSM(
		StatePlaying,
		fsm.Events{
			{Name: eventFinish, Src: []string{StatePlaying}, Dst: StateOver},
			{Name: eventRestart, Src: []string{StatePlaying, StateOver}, Dst: StatePlaying},
		},
		fsm.Callbacks{
			"enter_" + StateOver: func(_ context.Context, _ *fsm.Event) {
				h.record()
			},
			// after_ fires for playing -> playing too, where enter_ does not
			"after_" + eventRestart: func(_ context.Context, _ *fsm.Event) {
				h.config.Seed = h.nextSeed()
				h.start()
			},
		},
	)

	h.loadBest()
	h.start()
	return h
}

// start resets the game with the current seed.
func (h *Host) start() {
	h.game.Reset(h.config)
	h.game.SetBest(h.best)
	h.lastSave = uuid.Nil
}

// loadBest reads the best recorded score.
func (h *Host) loadBest() {
	if h.store == nil {
		return
	}
	best, err := h.store.HighScore()
	if err != nil {
		h.logger.Warn("could not load best score", "error", err)
		return
	}
	h.best = best
}

// record saves the finished game.
func (h *Host) record() {
	snap := h.game.Snapshot()
	h.best = max(h.best, snap.Score)
	h.game.SetBest(h.best)

	if h.store == nil {
		return
	}
	id, err := h.store.SaveGame(storage.GameRecord{
		Player:  h.player,
		Score:   snap.Score,
		MaxTile: snap.MaxTile,
		Moves:   snap.Moves,
		Won:     h.game.Session().Won,
	})
	if err != nil {
		h.logger.Warn("could not save game", "player", h.player, "error", err)
		return
	}
	h.lastSave = id
	h.logger.Debug("game recorded", "id", id, "player", h.player, "score", snap.Score)
}

// Handle applies one input frame. Restart starts a new game at any time;
// directional actions go to the game.
func (h *Host) Handle(ctx context.Context, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		h.fire(ctx, eventRestart)
		return core.StepResult{State: h.game.State()}
	}

	result := h.game.Step(in)
	if result.State.GameOver && h.fsm.Is(StatePlaying) {
		h.fire(ctx, eventFinish)
	}
	return result
}

func (h *Host) fire(ctx context.Context, event string) {
	err := h.fsm.Event(ctx, event)
	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		h.logger.Error("lifecycle event failed", "event", event, "state", h.fsm.Current(), "error", err)
	}
}

// Resize updates the playing area without restarting the game.
func (h *Host) Resize(width, height int) {
	h.config.ScreenW = width
	h.config.ScreenH = height
	h.game.Resize(width, height)
}

// Render draws the game onto the screen.
func (h *Host) Render(screen *core.Screen) {
	h.game.Render(screen)
}

// State returns the current lifecycle state.
func (h *Host) State() string {
	return h.fsm.Current()
}

// Game returns the hosted game.
func (h *Host) Game() *t2048.Game {
	return h.game
}

// LastSaved returns the ID of the record saved for the current game,
// or uuid.Nil if it has not been recorded.
func (h *Host) LastSaved() uuid.UUID {
	return h.lastSave
}

// Best returns the best score known to the host.
func (h *Host) Best() int {
	return h.best
}
