package ui

import (
	"strings"
	"testing"

	"github.com/Mshel/toroboros/internal/game"
)

func TestRenderBoardShape(t *testing.T) {
	snap := game.Snapshot{
		Snake:           []game.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		Food:            game.Point{X: 10, Y: 10},
		ActiveDirection: game.Right,
		State:           game.Running,
	}

	board := renderBoard(snap)

	if rows := strings.Count(board, "\n") + 1; rows != game.GridRowCount {
		t.Errorf("board has %d rows, want %d", rows, game.GridRowCount)
	}
	if !strings.Contains(board, headRunes[game.Right]) {
		t.Error("board does not show the head rune")
	}
	if strings.Count(board, snakeBodyRune) != len(snap.Snake)-1 {
		t.Errorf("board shows %d body segments, want %d", strings.Count(board, snakeBodyRune), len(snap.Snake)-1)
	}
	if !strings.Contains(board, foodRune) {
		t.Error("board does not show the food rune")
	}
}

func TestGameOverScreenShowsFinalStats(t *testing.T) {
	overlay := GameOverState{
		PlayerName: "alice",
		FinalScore: 12,
		Best:       12,
	}

	view := overlay.RenderGameOverScreen()
	if !strings.Contains(view, "alice") {
		t.Error("game over screen does not show the player name")
	}
	if !strings.Contains(view, "12") {
		t.Error("game over screen does not show the final score")
	}
}

func TestLeaderboardScreenListsRuns(t *testing.T) {
	overlay := GameOverState{}
	runs := []game.RunScore{
		{PlayerName: "bob", Score: 9},
		{PlayerName: "alice", Score: 4},
	}

	view := overlay.RenderLeaderboardScreen(runs)
	if !strings.Contains(view, "bob") || !strings.Contains(view, "alice") {
		t.Error("leaderboard does not list the recorded runs")
	}

	empty := overlay.RenderLeaderboardScreen(nil)
	if !strings.Contains(empty, "No finished runs yet.") {
		t.Error("empty leaderboard does not show the placeholder row")
	}
}
