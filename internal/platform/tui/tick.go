// Package tui drives the game with Bubble Tea. It is the frame scheduler
// (timestamped frame messages, cancelled on game over), maps key presses
// to lane signals, and implements the engine's presentation collaborators
// on top of a cell buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg carries the timestamp of a scheduled frame. The model derives
// the simulation delta from consecutive timestamps.
type FrameMsg time.Time

// frameCmd schedules the next frame at the given rate. The model simply
// does not re-issue this command once the engine stops, which cancels
// the frame chain instead of ticking a dead game.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
