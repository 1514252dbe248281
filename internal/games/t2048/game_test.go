package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    seed,
	}
}

func TestDeterministicSpawn(t *testing.T) {
	// Same seed produces the same initial board
	g1 := New()
	g1.Reset(testConfig(12345))

	g2 := New()
	g2.Reset(testConfig(12345))

	if g1.Session().Board != g2.Session().Board {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v", g1.Session().Board, g2.Session().Board)
	}

	// And the same replay
	moves := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	for i := range 40 {
		in := core.FrameOf(moves[i%len(moves)])
		g1.Step(in)
		g2.Step(in)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Same seed and inputs should produce the same snapshot:\n%+v\nvs\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestDirectionFrom(t *testing.T) {
	tests := []struct {
		action core.Action
		dir    Direction
		ok     bool
	}{
		{core.ActionUp, DirUp, true},
		{core.ActionDown, DirDown, true},
		{core.ActionLeft, DirLeft, true},
		{core.ActionRight, DirRight, true},
		{core.ActionRestart, 0, false},
		{core.ActionNone, 0, false},
	}

	for _, tt := range tests {
		dir, ok := DirectionFrom(core.FrameOf(tt.action))
		if ok != tt.ok || (ok && dir != tt.dir) {
			t.Errorf("DirectionFrom(%s) = (%s, %v), want (%s, %v)", tt.action, dir, ok, tt.dir, tt.ok)
		}
	}
}

func TestStepAppliesMove(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	g.session = Session{Board: Board{{2, 2, 0, 0}}}

	result := g.Step(core.FrameOf(core.ActionLeft))
	if !result.Moved {
		t.Error("Step should report the move")
	}
	if result.State.Score != 4 {
		t.Errorf("Score = %d, want 4", result.State.Score)
	}
	if g.Session().Board.Cell(0, 0) != 4 {
		t.Errorf("Merged tile missing, board:\n%v", g.Session().Board)
	}

	// Non-directional frames do nothing
	before := g.Session()
	result = g.Step(core.FrameOf(core.ActionHelp))
	if result.Moved || g.Session() != before {
		t.Error("Non-directional input should not change the session")
	}
}

func TestStepIgnoredWhenTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})
	g.session = Session{Board: Board{{2, 2, 0, 0}}}

	if result := g.Step(core.FrameOf(core.ActionLeft)); result.Moved {
		t.Error("Moves should be ignored while the window is too small")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("Expected too-small message, got:\n%s", screen.String())
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	g.SetBest(5000)
	g.session = Session{Board: Board{{2048, 2, 0, 0}}, Score: 3000, Won: true}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"2048", "Score: 3000", "Best: 5000", "You won! Keep going"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "GAME OVER") {
		t.Error("Render should not show game over while playing")
	}
}

func TestRenderHUDColors(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	g.SetBest(5000)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	tests := []struct {
		row   int
		text  string
		color core.Color
	}{
		{0, "2048", core.ColorCyan},
		{1, "Best: 5000", core.ColorGreen},
		{1, "Score: 0", core.ColorDefault},
	}

	for _, tc := range tests {
		x := strings.Index(screen.Row(tc.row), tc.text)
		if x < 0 {
			t.Fatalf("Row %d missing %q", tc.row, tc.text)
		}
		if got := screen.GetCell(x, tc.row).Color; got != tc.color {
			t.Errorf("%q color = %d, expected %d", tc.text, got, tc.color)
		}
	}
}

func TestRenderGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	g.SetShareURL("https://example.com/2048")
	g.session = Session{
		Board: Board{
			{2, 4, 2, 4},
			{4, 2, 4, 2},
			{2, 4, 2, 4},
			{4, 2, 4, 2},
		},
		Score:    1234,
		GameOver: true,
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"GAME OVER", "Press R to restart", "I scored 1234 in 2048! https://example.com/2048"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q:\n%s", want, out)
		}
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		value int
		color core.Color
	}{
		{0, core.ColorGray},
		{2, core.ColorWhite},
		{4, core.ColorWhite},
		{8, core.ColorYellow},
		{16, core.ColorOrange},
		{1024, core.ColorRed},
		{2048, core.ColorMagenta},
	}

	for _, tt := range tests {
		if got := TileColor(tt.value); got != tt.color {
			t.Errorf("TileColor(%d) = %d, want %d", tt.value, got, tt.color)
		}
	}
}

func TestShareText(t *testing.T) {
	if got := ShareText(512, ""); got != "I scored 512 in 2048!" {
		t.Errorf("ShareText without url = %q", got)
	}
	if got := ShareText(512, "https://x.y"); got != "I scored 512 in 2048! https://x.y" {
		t.Errorf("ShareText with url = %q", got)
	}
}

func TestSnapshot(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	snap := g.Snapshot()
	if snap.State != StatusPlaying {
		t.Errorf("Snapshot State = %s, want playing", snap.State)
	}
	if snap.Score != 0 || snap.Moves != 0 {
		t.Errorf("Snapshot should start at zero, got %+v", snap)
	}
	if snap.MaxTile != 2 && snap.MaxTile != 4 {
		t.Errorf("Snapshot MaxTile = %d, want 2 or 4", snap.MaxTile)
	}
}

func TestRestore(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	s := Session{Board: Board{{2, 2, 0, 0}}, Score: 64, Moves: 9}
	g.Restore(s)

	if g.Session() != s {
		t.Errorf("Restore: got %+v, want %+v", g.Session(), s)
	}
	if result := g.Step(core.FrameOf(core.ActionLeft)); !result.Moved || result.State.Score != 68 {
		t.Errorf("Step after Restore = %+v, want a move scoring 68", result)
	}
}
