package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// connectResultMsg is sent when the dial finished
type connectResultMsg struct {
	err error
}

// frameMsg asks the model to run one loop frame
type frameMsg time.Time

// connectCmd attempts to connect to the server
func connectCmd(conn Connector) tea.Cmd {
	return func() tea.Msg {
		return connectResultMsg{err: conn.Connect(context.Background())}
	}
}

// frameCmd schedules the next frame
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
